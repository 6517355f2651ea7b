package regex

// Config controls optional optimizations layered on top of the mandatory
// compile-then-tree-walk pipeline. None of them change what a pattern
// matches, only how quickly a non-match is rejected.
type Config struct {
	// EnablePrefilter builds a literal prefilter (package prefilter) from
	// the pattern's leading literal content, when it has any, and uses it
	// to skip positions that cannot possibly start a match.
	EnablePrefilter bool

	// MinLiteralLen is the shortest extracted literal worth building a
	// prefilter for. Below this length a literal rarely narrows the search
	// enough to pay for the extra bookkeeping.
	MinLiteralLen int
}

// DefaultConfig returns the Config used by Compile and MustCompile.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinLiteralLen:   1,
	}
}
