// Package ast defines the pattern tree produced by the compiler and walked
// by the matcher.
//
// Every recognised regex construct is a distinct Node implementation.
// Nodes are built once by the compiler and never mutated afterwards; a
// compiled pattern is an ordered []Node, not a single root, since a
// top-level pattern (or the body of a group) is itself a sequence.
package ast

// Node is a single pattern tree element. The unexported method pins the
// set of implementations to this package, the way a sealed/tagged union
// would in a language that has one.
type Node interface {
	node()
}

// CharLiteral matches exactly one rune equal to Value.
type CharLiteral struct {
	Value rune
}

func (CharLiteral) node() {}

// DigitClass matches exactly one rune in '0'..'9'.
type DigitClass struct{}

func (DigitClass) node() {}

// AlphanumericClass matches exactly one rune in '0'..'9', 'A'..'Z', 'a'..'z'.
type AlphanumericClass struct{}

func (AlphanumericClass) node() {}

// Wildcard matches any single rune, including '\n'.
type Wildcard struct{}

func (Wildcard) node() {}

// PositiveCharGroup matches exactly one rune present in Chars.
type PositiveCharGroup struct {
	Chars []rune
}

func (PositiveCharGroup) node() {}

// NegativeCharGroup matches exactly one rune not present in Chars.
type NegativeCharGroup struct {
	Chars []rune
}

func (NegativeCharGroup) node() {}

// StartOfString requires the match of Inner to begin at input position 0.
// The anchoring itself is enforced by candidate-start selection in the
// matcher; StartOfString just delegates to Inner.
type StartOfString struct {
	Inner Node
}

func (StartOfString) node() {}

// EndOfString requires Inner to match and then requires the input cursor
// to be exhausted.
type EndOfString struct {
	Inner Node
}

func (EndOfString) node() {}

// OneOrMoreQuantifier matches Inner one or more times, greedily.
type OneOrMoreQuantifier struct {
	Inner Node
}

func (OneOrMoreQuantifier) node() {}

// OptionalQuantifier matches Inner zero or one time; it never fails.
type OptionalQuantifier struct {
	Inner Node
}

func (OptionalQuantifier) node() {}

// Group is an ordered sequence of nodes treated as one unit and a capture
// slot. Slot numbering is assigned by the compiler in document order of
// the opening '(' and stored on the node so the matcher writes to a fixed
// slot instead of counting completions at match time.
type Group struct {
	Sequence []Node
	Slot     int // 1-based capture slot index
}

func (Group) node() {}

// Alternation tries each Variants entry in order; the first whose full
// sequence matches wins.
type Alternation struct {
	Variants [][]Node
}

func (Alternation) node() {}

// Backreference requires the input to contain, at the current position,
// the same text previously captured by group number N (1-based).
type Backreference struct {
	N int
}

func (Backreference) node() {}
