// Package matcher walks a compiled pattern (as produced by package compiler)
// against an input string.
//
// Matching is a recursive tree walk, not an automaton simulation: each node
// type implements its own consume-or-fail rule, with Go's call stack
// standing in for the state machine described in SPEC_FULL.md §4.2.
package matcher

import (
	"reflect"

	"github.com/nelup20/grex/ast"
)

// Matches reports whether input contains a match of nodes anywhere (or, if
// nodes begins with ast.StartOfString, at position 0).
func Matches(nodes []ast.Node, numGroups int, input string) bool {
	matched, _ := FindCaptures(nodes, numGroups, input)
	return matched
}

// FindCaptures behaves like Matches but also returns the capture table of
// the first successful attempt, indexed 1..numGroups (index 0 is unused).
// Unset slots are the empty string.
func FindCaptures(nodes []ast.Node, numGroups int, input string) (bool, []string) {
	runes := []rune(input)
	for _, start := range CandidateStarts(nodes, runes) {
		if ok, captures := MatchAt(nodes, numGroups, runes, start); ok {
			return true, captures
		}
	}
	return false, nil
}

// CandidateStarts computes the set of start positions (rune offsets) tried
// for a top-level sequence, in order: only 0 when the sequence is anchored
// with ast.StartOfString, otherwise every rune offset 0..len(runes)-1 — one
// candidate per character-index of input, per SPEC_FULL.md §4.2.
func CandidateStarts(nodes []ast.Node, runes []rune) []int {
	if len(nodes) > 0 {
		if _, ok := nodes[0].(ast.StartOfString); ok {
			return []int{0}
		}
	}
	starts := make([]int, len(runes))
	for i := range starts {
		starts[i] = i
	}
	return starts
}

// MatchAt attempts a full match of nodes starting exactly at rune offset
// start. It owns its own capture table; no state survives a failed
// attempt.
func MatchAt(nodes []ast.Node, numGroups int, runes []rune, start int) (bool, []string) {
	captures := make([]string, numGroups+1)
	set := make([]bool, numGroups+1)
	ok, _ := matchSequence(nodes, start, runes, captures, set, nil)
	if !ok {
		return false, nil
	}
	return true, captures
}

// matchSequence walks nodes left to right starting at pos. cont is the
// node that follows this whole sequence in the enclosing context (nil at
// the outermost level); it becomes the "next pattern" lookahead for the
// sequence's own last node, per the Group rule in SPEC_FULL.md §4.2.
func matchSequence(nodes []ast.Node, pos int, runes []rune, captures []string, set []bool, cont ast.Node) (bool, int) {
	for i, n := range nodes {
		var next ast.Node
		if i+1 < len(nodes) {
			next = nodes[i+1]
		} else {
			next = cont
		}
		ok, newPos := matchNode(n, pos, runes, captures, set, next)
		if !ok {
			return false, pos
		}
		pos = newPos
	}
	return true, pos
}

// matchNode matches a single node at pos, given the node that would be
// tried immediately afterward (next), used only by OneOrMoreQuantifier's
// lookahead handoff.
func matchNode(n ast.Node, pos int, runes []rune, captures []string, set []bool, next ast.Node) (bool, int) {
	switch v := n.(type) {
	case ast.CharLiteral:
		if pos < len(runes) && runes[pos] == v.Value {
			return true, pos + 1
		}
		return false, pos

	case ast.DigitClass:
		if pos < len(runes) && isDigit(runes[pos]) {
			return true, pos + 1
		}
		return false, pos

	case ast.AlphanumericClass:
		if pos < len(runes) && isAlphanumeric(runes[pos]) {
			return true, pos + 1
		}
		return false, pos

	case ast.Wildcard:
		if pos < len(runes) {
			return true, pos + 1
		}
		return false, pos

	case ast.PositiveCharGroup:
		if pos < len(runes) && containsRune(v.Chars, runes[pos]) {
			return true, pos + 1
		}
		return false, pos

	case ast.NegativeCharGroup:
		if pos < len(runes) && !containsRune(v.Chars, runes[pos]) {
			return true, pos + 1
		}
		return false, pos

	case ast.StartOfString:
		return matchNode(v.Inner, pos, runes, captures, set, next)

	case ast.EndOfString:
		ok, newPos := matchNode(v.Inner, pos, runes, captures, set, nil)
		if !ok || newPos != len(runes) {
			return false, pos
		}
		return true, newPos

	case ast.OptionalQuantifier:
		ok, newPos := matchNode(v.Inner, pos, runes, captures, set, nil)
		if ok {
			return true, newPos
		}
		return true, pos

	case ast.OneOrMoreQuantifier:
		return matchOneOrMore(v, pos, runes, captures, set, next)

	case ast.Group:
		ok, newPos := matchSequence(v.Sequence, pos, runes, captures, set, next)
		if !ok {
			return false, pos
		}
		captures[v.Slot] = string(runes[pos:newPos])
		set[v.Slot] = true
		return true, newPos

	case ast.Alternation:
		return matchAlternation(v, pos, runes, captures, set, next)

	case ast.Backreference:
		return matchBackreference(v, pos, runes, captures, set)

	default:
		return false, pos
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func containsRune(chars []rune, r rune) bool {
	for _, c := range chars {
		if c == r {
			return true
		}
	}
	return false
}

// sameNode reports whether a and b are the same AST variant with the same
// contents, the equality test behind the OneOrMoreQuantifier lookahead
// handoff's "inner == next_pattern" branch in SPEC_FULL.md §4.2.
func sameNode(a, b ast.Node) bool {
	if b == nil {
		return false
	}
	return reflect.DeepEqual(a, b)
}
