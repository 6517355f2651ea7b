package compiler

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nelup20/grex/ast"
)

func TestCompileLiteralsAndClasses(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []ast.Node
	}{
		{"plain_literal", "abc", []ast.Node{
			ast.CharLiteral{Value: 'a'}, ast.CharLiteral{Value: 'b'}, ast.CharLiteral{Value: 'c'},
		}},
		{"digit_class", `\d`, []ast.Node{ast.DigitClass{}}},
		{"alnum_class", `\w`, []ast.Node{ast.AlphanumericClass{}}},
		{"wildcard", ".", []ast.Node{ast.Wildcard{}}},
		{"positive_group", "[abc]", []ast.Node{ast.PositiveCharGroup{Chars: []rune("abc")}}},
		{"negative_group", "[^abc]", []ast.Node{ast.NegativeCharGroup{Chars: []rune("abc")}}},
		{"escaped_backslash", `\\`, []ast.Node{ast.CharLiteral{Value: '\\'}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compile(tc.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tc.pattern, err)
			}
			if !reflect.DeepEqual(got.Nodes, tc.want) {
				t.Errorf("Compile(%q).Nodes = %#v, want %#v", tc.pattern, got.Nodes, tc.want)
			}
		})
	}
}

func TestCompileAnchors(t *testing.T) {
	got, err := Compile("^ab$")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	want := []ast.Node{
		ast.StartOfString{Inner: ast.CharLiteral{Value: 'a'}},
		ast.EndOfString{Inner: ast.CharLiteral{Value: 'b'}},
	}
	if !reflect.DeepEqual(got.Nodes, want) {
		t.Errorf("Compile(\"^ab$\").Nodes = %#v, want %#v", got.Nodes, want)
	}
}

func TestCompileNonLeadingCaretIsLiteral(t *testing.T) {
	got, err := Compile("a^b")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	want := []ast.Node{ast.CharLiteral{Value: 'a'}, ast.CharLiteral{Value: '^'}, ast.CharLiteral{Value: 'b'}}
	if !reflect.DeepEqual(got.Nodes, want) {
		t.Errorf("Compile(\"a^b\").Nodes = %#v, want %#v", got.Nodes, want)
	}
}

func TestCompileQuantifiers(t *testing.T) {
	got, err := Compile("a+b?")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	want := []ast.Node{
		ast.OneOrMoreQuantifier{Inner: ast.CharLiteral{Value: 'a'}},
		ast.OptionalQuantifier{Inner: ast.CharLiteral{Value: 'b'}},
	}
	if !reflect.DeepEqual(got.Nodes, want) {
		t.Errorf("Compile(\"a+b?\").Nodes = %#v, want %#v", got.Nodes, want)
	}
}

func TestCompileGroupsAssignSlotsInDocumentOrder(t *testing.T) {
	got, err := Compile("(a(b)c)")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if got.NumGroups != 2 {
		t.Fatalf("NumGroups = %d, want 2", got.NumGroups)
	}
	outer, ok := got.Nodes[0].(ast.Group)
	if !ok {
		t.Fatalf("Nodes[0] = %#v, want ast.Group", got.Nodes[0])
	}
	if outer.Slot != 1 {
		t.Errorf("outer.Slot = %d, want 1", outer.Slot)
	}
	inner, ok := outer.Sequence[1].(ast.Group)
	if !ok {
		t.Fatalf("outer.Sequence[1] = %#v, want ast.Group", outer.Sequence[1])
	}
	if inner.Slot != 2 {
		t.Errorf("inner.Slot = %d, want 2", inner.Slot)
	}
}

func TestCompileAlternationInsideGroup(t *testing.T) {
	got, err := Compile("(cat|dog)")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	group, ok := got.Nodes[0].(ast.Group)
	if !ok {
		t.Fatalf("Nodes[0] = %#v, want ast.Group", got.Nodes[0])
	}
	alt, ok := group.Sequence[0].(ast.Alternation)
	if !ok {
		t.Fatalf("group.Sequence[0] = %#v, want ast.Alternation", group.Sequence[0])
	}
	if len(alt.Variants) != 2 {
		t.Fatalf("len(alt.Variants) = %d, want 2", len(alt.Variants))
	}
}

func TestCompileBackreference(t *testing.T) {
	got, err := Compile(`(a)\1`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	ref, ok := got.Nodes[1].(ast.Backreference)
	if !ok {
		t.Fatalf("Nodes[1] = %#v, want ast.Backreference", got.Nodes[1])
	}
	if ref.N != 1 {
		t.Errorf("ref.N = %d, want 1", ref.N)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"empty", "", ErrEmptyPattern},
		{"bare_caret", "^", ErrInvalidAnchorStart},
		{"dangling_dollar", "$", ErrInvalidAnchorEnd},
		{"dangling_question", "?", ErrInvalidOptional},
		{"dangling_plus", "+", ErrInvalidOneOrMore},
		{"trailing_backslash", `\`, ErrInvalidEscape},
		{"unknown_escape", `\q`, ErrInvalidEscape},
		{"unterminated_class", "[abc", ErrUnterminatedClass},
		{"unterminated_group", "(abc", ErrUnterminatedGroup},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error %v", tc.pattern, tc.want)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Compile(%q) error type = %T, want *ParseError", tc.pattern, err)
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Compile(%q) error = %v, want wrapping %v", tc.pattern, err, tc.want)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Compile(`\q`)
	if err == nil {
		t.Fatal("expected error")
	}
	want := `compiler: "\\q" at position 0: compiler: invalid escape sequence`
	if err.Error() != want {
		t.Errorf("err.Error() = %q, want %q", err.Error(), want)
	}
}
