package matcher

import "github.com/nelup20/grex/ast"

// matchAlternation tries each variant in order against a snapshot of the
// capture table, committing the first one whose full sequence matches.
//
// The real cursor advances by however far the winning variant's sequence
// actually consumed, not by its node count — variants containing groups,
// quantifiers, or backreferences can consume a different number of runes
// than they have nodes, and measuring by node count would desync the
// cursor.
func matchAlternation(a ast.Alternation, pos int, runes []rune, captures []string, set []bool, next ast.Node) (bool, int) {
	for _, variant := range a.Variants {
		tryCaptures := append([]string(nil), captures...)
		trySet := append([]bool(nil), set...)

		ok, newPos := matchSequence(variant, pos, runes, tryCaptures, trySet, next)
		if ok {
			copy(captures, tryCaptures)
			copy(set, trySet)
			return true, newPos
		}
	}
	return false, pos
}
