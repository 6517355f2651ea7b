package matcher

import "github.com/nelup20/grex/ast"

// matchOneOrMore implements the greedy one-token-lookahead handoff from
// SPEC_FULL.md §4.2:
//
//  1. an initial match of inner is required;
//  2. with no next node, inner is consumed for as long as it keeps matching;
//  3. otherwise, when inner and next are the same variant with the same
//     contents, inner is consumed greedily and then backed off by exactly
//     one occurrence so next (being identical) can consume the last one;
//     when they differ, inner is consumed only while next does not yet
//     match, so next gets first refusal at every step.
//
// This is a local heuristic, not general backtracking: it is correct for
// every pattern in this engine's supported dialect (single-width atoms,
// literal alternatives) but not for an arbitrary regex grammar.
func matchOneOrMore(q ast.OneOrMoreQuantifier, pos int, runes []rune, captures []string, set []bool, next ast.Node) (bool, int) {
	ok, newPos := matchNode(q.Inner, pos, runes, captures, set, nil)
	if !ok {
		return false, pos
	}
	pos = newPos

	if next == nil {
		for {
			ok, newPos := matchNode(q.Inner, pos, runes, captures, set, nil)
			if !ok {
				break
			}
			pos = newPos
		}
		return true, pos
	}

	if sameNode(q.Inner, next) {
		return true, matchOneOrMoreSameShape(q.Inner, pos, runes, captures, set)
	}
	return true, matchOneOrMoreUntilNext(q.Inner, next, pos, runes, captures, set)
}

// matchOneOrMoreSameShape counts how many further times inner matches on a
// scratch copy of the capture table, then replays k-1 of those matches for
// real, leaving exactly one occurrence of input for the (identical) next
// node to consume.
func matchOneOrMoreSameShape(inner ast.Node, pos int, runes []rune, captures []string, set []bool) int {
	scratchCaptures := append([]string(nil), captures...)
	scratchSet := append([]bool(nil), set...)

	probePos := pos
	k := 0
	for {
		ok, newPos := matchNode(inner, probePos, runes, scratchCaptures, scratchSet, nil)
		if !ok {
			break
		}
		probePos = newPos
		k++
	}

	for i := 0; i < k-1; i++ {
		_, newPos := matchNode(inner, pos, runes, captures, set, nil)
		pos = newPos
	}
	return pos
}

// matchOneOrMoreUntilNext consumes inner while it matches and next does not
// yet match at the current position, giving next first refusal at each step.
func matchOneOrMoreUntilNext(inner, next ast.Node, pos int, runes []rune, captures []string, set []bool) int {
	for {
		peekCaptures := append([]string(nil), captures...)
		peekSet := append([]bool(nil), set...)
		if ok, _ := matchNode(next, pos, runes, peekCaptures, peekSet, nil); ok {
			break
		}

		ok, newPos := matchNode(inner, pos, runes, captures, set, nil)
		if !ok {
			break
		}
		pos = newPos
	}
	return pos
}
