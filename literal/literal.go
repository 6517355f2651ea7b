// Package literal pulls a required literal prefix (or a small set of
// alternative literal prefixes) out of a compiled pattern, when the
// pattern's shape permits it. Package prefilter uses the result to narrow
// candidate match positions before package matcher verifies them with a
// full tree walk; nothing downstream ever trusts an extracted literal on
// its own.
package literal

import (
	"strings"

	"github.com/nelup20/grex/ast"
	"github.com/nelup20/grex/internal/conv"
)

// Prefix is one or more literal strings, any one of which must occur at a
// match's start position. A single entry means the pattern opens with a
// run of plain characters; multiple entries mean it opens with a group
// whose every alternative is itself a run of plain characters, e.g.
// "(cat|dog|bird)".
type Prefix struct {
	Literals []string
}

// MinLen returns the byte length of the shortest literal in the prefix, or
// 0 if empty. Kept narrow (uint16) since a single-line pattern source is
// never long enough to overflow it. Extract applies its minLen threshold
// with len() on each entry and does not call MinLen.
func (p Prefix) MinLen() uint16 {
	if len(p.Literals) == 0 {
		return 0
	}
	min := len(p.Literals[0])
	for _, s := range p.Literals[1:] {
		if len(s) < min {
			min = len(s)
		}
	}
	return conv.IntToUint16(min)
}

// Extract inspects the first node of a compiled pattern (stripping a
// leading ast.StartOfString wrapper, since anchoring doesn't change what
// the literal looks like, only how it's used) and reports the literal
// prefix it opens with, if any. minLen discards a candidate prefix — or,
// for an alternation, the whole candidate — shorter than it, since a
// one-character literal rarely narrows anything worth the extra lookup.
func Extract(nodes []ast.Node, minLen int) (Prefix, bool) {
	if len(nodes) == 0 {
		return Prefix{}, false
	}

	first := nodes[0]
	if anchor, ok := first.(ast.StartOfString); ok {
		first = anchor.Inner
	}

	if lit, ok := literalRun(first, nodes[1:]); ok {
		if len(lit) < minLen {
			return Prefix{}, false
		}
		return Prefix{Literals: []string{lit}}, true
	}

	if variants, ok := alternationLiterals(first); ok {
		for _, s := range variants {
			if len(s) < minLen {
				return Prefix{}, false
			}
		}
		return Prefix{Literals: variants}, true
	}

	return Prefix{}, false
}

// literalRun reports the string formed by first (if it's a CharLiteral)
// followed by as many leading CharLiterals of rest as there are before the
// first non-literal node.
func literalRun(first ast.Node, rest []ast.Node) (string, bool) {
	lit, ok := first.(ast.CharLiteral)
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteRune(lit.Value)
	for _, n := range rest {
		cl, ok := n.(ast.CharLiteral)
		if !ok {
			break
		}
		b.WriteRune(cl.Value)
	}
	return b.String(), true
}

// alternationLiterals reports the concatenated literal text of every
// branch of an alternation, provided every branch is composed entirely of
// CharLiteral nodes. The alternation may appear bare or as the sole
// element of a capturing group's sequence; the compiler always produces
// the group-wrapped shape for "(a|b|c)".
func alternationLiterals(first ast.Node) ([]string, bool) {
	var alt ast.Alternation
	switch v := first.(type) {
	case ast.Alternation:
		alt = v
	case ast.Group:
		if len(v.Sequence) != 1 {
			return nil, false
		}
		a, ok := v.Sequence[0].(ast.Alternation)
		if !ok {
			return nil, false
		}
		alt = a
	default:
		return nil, false
	}

	out := make([]string, 0, len(alt.Variants))
	for _, variant := range alt.Variants {
		var b strings.Builder
		for _, n := range variant {
			cl, ok := n.(ast.CharLiteral)
			if !ok {
				return nil, false
			}
			b.WriteRune(cl.Value)
		}
		out = append(out, b.String())
	}
	return out, true
}
