package compiler

import (
	"github.com/nelup20/grex/ast"
	"github.com/nelup20/grex/internal/conv"
)

// Regex is the result of a successful Compile: an ordered sequence of AST
// nodes plus the number of capture groups encountered, so callers can
// preallocate a capture table without a separate walk.
type Regex struct {
	Nodes     []ast.Node
	NumGroups int
}

// Compile parses pattern into a Regex or returns a *ParseError.
//
// Parsing is a single left-to-right scan over the pattern's runes; '('
// recurses into the same scan to build a Group's sequence (and, when the
// group contains '|', an Alternation of branch sequences). No partial
// Regex is ever returned alongside an error.
func Compile(pattern string) (Regex, error) {
	if pattern == "" {
		return Regex{}, &ParseError{Pattern: pattern, Pos: 0, Err: ErrEmptyPattern}
	}

	runes := []rune(pattern)
	p := &parser{pattern: pattern, runes: runes, nextSlot: 1}

	startsWith := false
	if runes[0] == '^' {
		if len(runes) == 1 {
			return Regex{}, p.errorAt(0, ErrInvalidAnchorStart)
		}
		startsWith = true
		p.pos = 1
	}

	nodes, err := p.parseSequence(false)
	if err != nil {
		return Regex{}, err
	}

	if startsWith {
		nodes[0] = ast.StartOfString{Inner: nodes[0]}
	}

	return Regex{Nodes: nodes, NumGroups: p.nextSlot - 1}, nil
}

// parser holds the mutable scan position. Only '(' / ')' recurse; '|' is
// only meaningful inside a group, so the top-level pattern is parsed as a
// single sequence (in the supported grammar, alternation is a property of
// `group`, not of `pattern`).
type parser struct {
	pattern  string
	runes    []rune
	pos      int
	nextSlot int // next capture-group slot to assign, 1-based
}

func (p *parser) isEOF() bool {
	return p.pos >= len(p.runes)
}

func (p *parser) peek() rune {
	if p.isEOF() {
		return 0
	}
	return p.runes[p.pos]
}

func (p *parser) advance() rune {
	c := p.runes[p.pos]
	p.pos++
	return c
}

func (p *parser) errorAt(pos int, err error) *ParseError {
	return &ParseError{Pattern: p.pattern, Pos: pos, Err: err}
}

// parseSequence reads atoms until EOF, or (when inGroup) until an
// unescaped '|' or ')' is reached. Those two runes are left unconsumed so
// the caller (parseGroup) can inspect which one stopped the scan.
func (p *parser) parseSequence(inGroup bool) ([]ast.Node, error) {
	var nodes []ast.Node

	for !p.isEOF() {
		if inGroup {
			if c := p.peek(); c == '|' || c == ')' {
				break
			}
		}

		startPos := p.pos
		c := p.advance()

		switch c {
		case '$':
			if len(nodes) == 0 {
				return nil, p.errorAt(startPos, ErrInvalidAnchorEnd)
			}
			nodes[len(nodes)-1] = ast.EndOfString{Inner: nodes[len(nodes)-1]}

		case '.':
			nodes = append(nodes, ast.Wildcard{})

		case '\\':
			node, err := p.parseEscape(startPos)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)

		case '?':
			if len(nodes) == 0 {
				return nil, p.errorAt(startPos, ErrInvalidOptional)
			}
			nodes[len(nodes)-1] = ast.OptionalQuantifier{Inner: nodes[len(nodes)-1]}

		case '+':
			if len(nodes) == 0 {
				return nil, p.errorAt(startPos, ErrInvalidOneOrMore)
			}
			nodes[len(nodes)-1] = ast.OneOrMoreQuantifier{Inner: nodes[len(nodes)-1]}

		case '[':
			node, err := p.parseCharClass(startPos)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)

		case '(':
			node, err := p.parseGroup(startPos)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)

		default:
			// Covers a literal '^' anywhere other than the very first rune
			// of the pattern (see Compile), a literal ')' or '|' outside
			// any group, and every ordinary character.
			nodes = append(nodes, ast.CharLiteral{Value: c})
		}
	}

	return nodes, nil
}

// parseEscape reads the rune following a '\' already consumed by the caller.
func (p *parser) parseEscape(backslashPos int) (ast.Node, error) {
	if p.isEOF() {
		return nil, p.errorAt(backslashPos, ErrInvalidEscape)
	}
	c := p.advance()

	switch {
	case c == 'd':
		return ast.DigitClass{}, nil
	case c == 'w':
		return ast.AlphanumericClass{}, nil
	case c == '\\':
		return ast.CharLiteral{Value: '\\'}, nil
	case c >= '0' && c <= '9':
		// Narrowed through conv, even though a single decimal digit can
		// never threaten a uint32.
		return ast.Backreference{N: int(conv.IntToUint32(int(c - '0')))}, nil
	default:
		return nil, p.errorAt(backslashPos, ErrInvalidEscape)
	}
}

// parseCharClass reads a '[...]' already past its opening bracket.
// No escape processing happens inside a class; ']' always terminates it.
func (p *parser) parseCharClass(openPos int) (ast.Node, error) {
	negated := false
	if p.peek() == '^' {
		p.advance()
		negated = true
	}

	var chars []rune
	for {
		if p.isEOF() {
			return nil, p.errorAt(openPos, ErrUnterminatedClass)
		}
		c := p.advance()
		if c == ']' {
			break
		}
		chars = append(chars, c)
	}

	if negated {
		return ast.NegativeCharGroup{Chars: chars}, nil
	}
	return ast.PositiveCharGroup{Chars: chars}, nil
}

// parseGroup reads a '(...)' already past its opening parenthesis,
// assigning it the next capture slot and recursing for its body. A body
// containing one or more '|' collapses to a single ast.Alternation node
// inside the group's Sequence.
func (p *parser) parseGroup(openPos int) (ast.Node, error) {
	slot := p.nextSlot
	p.nextSlot++

	var branches [][]ast.Node

	first, err := p.parseSequence(true)
	if err != nil {
		return nil, err
	}
	branches = append(branches, first)

	for !p.isEOF() && p.peek() == '|' {
		p.advance()
		branch, err := p.parseSequence(true)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	if p.isEOF() || p.peek() != ')' {
		return nil, p.errorAt(openPos, ErrUnterminatedGroup)
	}
	p.advance() // consume ')'

	if len(branches) == 1 {
		return ast.Group{Sequence: branches[0], Slot: slot}, nil
	}
	return ast.Group{Sequence: []ast.Node{ast.Alternation{Variants: branches}}, Slot: slot}, nil
}
