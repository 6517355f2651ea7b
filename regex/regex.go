// Package regex is the public entry point: it wires package compiler,
// package matcher, package literal, and package prefilter into a single
// Regex value that compiles a pattern once and matches it against many
// inputs.
package regex

import (
	"fmt"

	"github.com/nelup20/grex/ast"
	"github.com/nelup20/grex/compiler"
	"github.com/nelup20/grex/literal"
	"github.com/nelup20/grex/matcher"
	"github.com/nelup20/grex/prefilter"
)

// Regex is a compiled pattern ready to match against input strings. A
// Regex is safe for concurrent use by multiple goroutines: Compile and
// MatchString never mutate shared state, since every match walk allocates
// its own capture table.
type Regex struct {
	nodes     []ast.Node
	numGroups int
	anchored  bool
	pf        prefilter.Prefilter
}

// Compile parses pattern and returns a Regex using DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern fails to compile. It
// exists for package-level pattern variables initialized at startup, where
// a bad literal pattern is a programmer error, not a runtime condition.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("regex: MustCompile(%q): %v", pattern, err))
	}
	return re
}

// CompileWithConfig is Compile with explicit control over optional
// optimizations.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	compiled, err := compiler.Compile(pattern)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		nodes:     compiled.Nodes,
		numGroups: compiled.NumGroups,
		anchored:  isAnchored(compiled.Nodes),
	}

	if cfg.EnablePrefilter && !re.anchored {
		if prefix, ok := literal.Extract(compiled.Nodes, cfg.MinLiteralLen); ok {
			if pf, ok := prefilter.Build(prefix); ok {
				re.pf = pf
			}
		}
	}

	return re, nil
}

func isAnchored(nodes []ast.Node) bool {
	if len(nodes) == 0 {
		return false
	}
	_, ok := nodes[0].(ast.StartOfString)
	return ok
}

// MatchString reports whether input contains a match anywhere (or, for an
// anchored pattern, at its start).
func (r *Regex) MatchString(input string) bool {
	ok, _ := r.FindStringSubmatch(input)
	return ok
}

// FindStringSubmatch reports whether input matches, and if so the capture
// table of the first successful attempt, indexed 1..NumGroups (index 0 is
// unused; an unset slot is the empty string).
func (r *Regex) FindStringSubmatch(input string) (bool, []string) {
	runes := []rune(input)

	if r.anchored || r.pf == nil {
		for _, start := range matcher.CandidateStarts(r.nodes, runes) {
			if ok, captures := matcher.MatchAt(r.nodes, r.numGroups, runes, start); ok {
				return true, captures
			}
		}
		return false, nil
	}

	for start := 0; start <= len(runes); {
		next := r.pf.Next(runes, start)
		if next < 0 || next > len(runes) {
			return false, nil
		}
		if ok, captures := matcher.MatchAt(r.nodes, r.numGroups, runes, next); ok {
			return true, captures
		}
		start = next + 1
	}
	return false, nil
}

// NumGroups returns the number of capturing groups in the compiled
// pattern.
func (r *Regex) NumGroups() int {
	return r.numGroups
}
