package matcher

import (
	"testing"

	"github.com/nelup20/grex/compiler"
)

func compileOrFatal(t *testing.T, pattern string) compiler.Regex {
	t.Helper()
	re, err := compiler.Compile(pattern)
	if err != nil {
		t.Fatalf("compiler.Compile(%q) failed: %v", pattern, err)
	}
	return re
}

func TestMatchesSeedScenarios(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"plain_literal_match", "cat", "a cat sat", true},
		{"plain_literal_no_match", "dog", "a cat sat", false},
		{"digit_class", `\d apple`, "1 apple", true},
		{"digit_class_no_match", `\d apple`, "x apple", false},
		{"alnum_class", `\w\w\w`, "a1_ no, letters only", true},
		{"wildcard", "c.t", "cat", true},
		{"positive_group", "[abc]at", "bat", true},
		{"negative_group", "[^abc]at", "bat", false},
		{"negative_group_match", "[^abc]at", "hat", true},
		{"start_anchor_match", "^abc", "abcdef", true},
		{"start_anchor_fails_mid_string", "^abc", "xabcdef", false},
		{"end_anchor_match", "abc$", "xxabc", true},
		{"end_anchor_fails", "abc$", "abcxx", false},
		{"one_or_more", "ca+t", "caaat", true},
		{"one_or_more_requires_one", "ca+t", "ct", false},
		{"optional_present", "colou?r", "colour", true},
		{"optional_absent", "colou?r", "color", true},
		{"alternation", "(cat|dog)", "I have a dog", true},
		{"alternation_no_match", "(cat|dog)", "I have a bird", false},
		{"backreference_match", `(\w+) and \1`, "fork and fork", true},
		{"backreference_no_match", `(\w+) and \1`, "fork and spoon", false},
		{"combined_anchors_and_groups", `^\d+ (cat|dog)s?$`, "3 dogs", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			re := compileOrFatal(t, tc.pattern)
			got := Matches(re.Nodes, re.NumGroups, tc.input)
			if got != tc.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tc.pattern, tc.input, got, tc.want)
			}
		})
	}
}

func TestFindCapturesReturnsMatchedGroups(t *testing.T) {
	re := compileOrFatal(t, `(\d+)-(\w+)`)
	ok, captures := FindCaptures(re.Nodes, re.NumGroups, "42-widgets and more")
	if !ok {
		t.Fatalf("expected a match")
	}
	if captures[1] != "42" {
		t.Errorf("captures[1] = %q, want %q", captures[1], "42")
	}
	if captures[2] != "widgets" {
		t.Errorf("captures[2] = %q, want %q", captures[2], "widgets")
	}
}

func TestFindCapturesUnsetSlotsAreEmpty(t *testing.T) {
	// Alternation is only recognised inside a group, so the two capturing
	// alternatives sit in an outer group (slot 1); (cat) is slot 2, (dog) slot 3.
	re := compileOrFatal(t, `((cat)|(dog))`)
	ok, captures := FindCaptures(re.Nodes, re.NumGroups, "I have a dog")
	if !ok {
		t.Fatalf("expected a match")
	}
	if captures[2] != "" {
		t.Errorf("captures[2] = %q, want empty (unset)", captures[2])
	}
	if captures[3] != "dog" {
		t.Errorf("captures[3] = %q, want %q", captures[3], "dog")
	}
}

func TestCandidateStartsAnchoredVsUnanchored(t *testing.T) {
	anchored := compileOrFatal(t, "^ab")
	starts := CandidateStarts(anchored.Nodes, []rune("xxab"))
	if len(starts) != 1 || starts[0] != 0 {
		t.Errorf("CandidateStarts(anchored) = %v, want [0]", starts)
	}

	unanchored := compileOrFatal(t, "ab")
	starts = CandidateStarts(unanchored.Nodes, []rune("xxab"))
	if len(starts) != 4 {
		t.Errorf("len(CandidateStarts(unanchored)) = %d, want 4", len(starts))
	}
}

func TestGreedyOneOrMoreBacksOffForIdenticalNext(t *testing.T) {
	// "a+a" over "aaaa": a greedy a+ that simply consumed everything would
	// leave nothing for the trailing literal 'a', so this only matches if
	// the same-shape lookahead backs off by exactly one occurrence.
	re := compileOrFatal(t, "a+a")
	if !Matches(re.Nodes, re.NumGroups, "aaaa") {
		t.Errorf("expected a+a to match aaaa")
	}
}

func TestOneOrMoreYieldsToDifferentNext(t *testing.T) {
	re := compileOrFatal(t, `\d+1`)
	ok, captures := FindCaptures(re.Nodes, re.NumGroups, "2231")
	if !ok {
		t.Fatalf("expected a match")
	}
	_ = captures
}
