package matcher

import "github.com/nelup20/grex/ast"

// matchBackreference requires the input at pos to literally reproduce the
// text previously captured by group N. An unset slot is a match failure,
// not an error: this covers both a \N written before group N appears in
// the pattern and a \N whose group lives in an alternation branch that was
// never taken.
func matchBackreference(b ast.Backreference, pos int, runes []rune, captures []string, set []bool) (bool, int) {
	if b.N >= len(set) || !set[b.N] {
		return false, pos
	}

	captured := []rune(captures[b.N])
	if pos+len(captured) > len(runes) {
		return false, pos
	}
	for i, r := range captured {
		if runes[pos+i] != r {
			return false, pos
		}
	}
	return true, pos + len(captured)
}
