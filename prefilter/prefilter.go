// Package prefilter narrows the set of rune offsets the matcher needs to
// try, using the literal prefix package literal extracts from a compiled
// pattern. A prefilter never decides a match on its own: every position it
// reports is still handed to matcher.MatchAt for full verification, so a
// false positive here only costs a wasted tree walk, never a wrong answer.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/nelup20/grex/literal"
	"github.com/nelup20/grex/simd"
)

// Prefilter reports the next candidate rune offset at or after start where
// a match could begin, or -1 once no more candidates remain.
type Prefilter interface {
	Next(runes []rune, start int) int
}

// Build selects a Prefilter implementation for p, or reports false when p
// carries no literal to filter on or its multi-literal automaton cannot be
// built (the caller falls back to trying every offset via
// matcher.CandidateStarts).
func Build(p literal.Prefix) (Prefilter, bool) {
	switch len(p.Literals) {
	case 0:
		return nil, false
	case 1:
		return newSingleLiteral(p.Literals[0]), true
	default:
		pf, err := newMultiLiteral(p.Literals)
		if err != nil {
			// No prefilter: scanning for any single alternative would skip
			// positions where only another alternative occurs.
			return nil, false
		}
		return pf, true
	}
}

// singleLiteral finds occurrences of one required literal. When the
// haystack is pure ASCII, byte offsets and rune offsets coincide, so it
// uses simd.IndexByte on the literal's leading byte to skip ahead quickly
// and only falls through to a rune-by-rune scan for non-ASCII input.
type singleLiteral struct {
	literal string
}

func newSingleLiteral(s string) *singleLiteral {
	return &singleLiteral{literal: s}
}

func (p *singleLiteral) Next(runes []rune, start int) int {
	if p.literal == "" {
		return start
	}
	needleRunes := []rune(p.literal)

	if pos, ok := p.asciiNext(runes, start, needleRunes); ok {
		return pos
	}

	for i := start; i+len(needleRunes) <= len(runes); i++ {
		if runesEqual(runes[i:i+len(needleRunes)], needleRunes) {
			return i
		}
	}
	return -1
}

// asciiNext attempts the byte-oriented fast path. It reports ok=false when
// the haystack contains any non-ASCII rune, leaving the caller to fall
// back to the rune scan.
func (p *singleLiteral) asciiNext(runes []rune, start int, needleRunes []rune) (int, bool) {
	haystack := make([]byte, len(runes))
	for i, r := range runes {
		if r > 0x7f {
			return 0, false
		}
		haystack[i] = byte(r)
	}
	if !simd.IsASCII(haystack) {
		return 0, false
	}

	needle := make([]byte, len(needleRunes))
	for i, r := range needleRunes {
		if r > 0x7f {
			return 0, false
		}
		needle[i] = byte(r)
	}

	pos := start
	for {
		i := simd.IndexByte(haystack, needle[0], pos)
		if i < 0 || i+len(needle) > len(haystack) {
			return -1, true
		}
		if bytesEqual(haystack[i:i+len(needle)], needle) {
			return i, true
		}
		pos = i + 1
	}
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// multiLiteral finds the earliest occurrence of any of several literal
// alternatives using an Aho-Corasick automaton, the approach the teacher
// engine reaches for once an alternation outgrows what a handful of
// sequential literal scans can do efficiently.
type multiLiteral struct {
	automaton *ahocorasick.Automaton
}

func newMultiLiteral(literals []string) (*multiLiteral, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &multiLiteral{automaton: auto}, nil
}

// Next hands the automaton a byte copy of the haystack, since the
// automaton, like simd, operates on bytes. It does so only when the
// haystack is pure ASCII, where byte and rune offsets coincide; on
// non-ASCII input it applies no filtering (see fallback).
func (p *multiLiteral) Next(runes []rune, start int) int {
	haystack := make([]byte, len(runes))
	for i, r := range runes {
		if r > 0x7f {
			return p.fallback(runes, start)
		}
		haystack[i] = byte(r)
	}

	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// fallback degrades to "no filtering": a prefilter only needs to avoid
// ruling out a real match, and the caller still verifies every candidate
// with a full tree walk, so refusing to filter non-ASCII input is safe,
// just less selective.
func (p *multiLiteral) fallback(runes []rune, start int) int {
	if start > len(runes) {
		return -1
	}
	return start
}
