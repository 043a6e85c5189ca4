package syntax

import (
	"errors"
	"testing"
)

func TestParseLiterals(t *testing.T) {
	prog, err := Parse("abc")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if prog.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", prog.Len())
	}
	for i, want := range []byte("abc") {
		u := prog.At(i)
		if u.Token.Kind() != TokenClass || u.Token.Class().Kind() != ClassExact || u.Token.Class().Byte() != want {
			t.Errorf("unit %d = %+v, want exact %q", i, u, want)
		}
	}
}

func TestParseClasses(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    ClassKind
	}{
		{"digit", `\d`, ClassDigit},
		{"non-digit", `\D`, ClassNonDigit},
		{"word", `\w`, ClassAlnum},
		{"non-word", `\W`, ClassNonAlnum},
		{"space", `\s`, ClassSpace},
		{"non-space", `\S`, ClassNonSpace},
		{"wildcard", `.`, ClassWildcard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.pattern, err)
			}
			if prog.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", prog.Len())
			}
			if got := prog.At(0).Token.Class().Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestWordAndSpacePredicatesExcludeUnderscoreAndVTab pins \w/\s to the
// Rust original's is_ascii_alphanumeric/is_ascii_whitespace semantics
// rather than Go's broader "word byte" or 6-byte whitespace conventions.
func TestWordAndSpacePredicatesExcludeUnderscoreAndVTab(t *testing.T) {
	word, err := Parse(`\w`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	wordCls := word.At(0).Token.Class()
	if wordCls.Match('_') {
		t.Errorf("\\w should not match '_'")
	}
	if !wordCls.Match('a') || !wordCls.Match('9') {
		t.Errorf("\\w should match ASCII letters and digits")
	}

	space, err := Parse(`\s`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	spaceCls := space.At(0).Token.Class()
	if spaceCls.Match('\v') {
		t.Errorf("\\s should not match '\\v'")
	}
	if !spaceCls.Match(' ') || !spaceCls.Match('\t') {
		t.Errorf("\\s should match space and tab")
	}
}

func TestParseBracketClasses(t *testing.T) {
	prog, err := Parse(`[abc]`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	cls := prog.At(0).Token.Class()
	if cls.Kind() != ClassSet {
		t.Fatalf("Kind() = %v, want ClassSet", cls.Kind())
	}
	if !cls.Match('b') || cls.Match('x') {
		t.Errorf("Set match behaved unexpectedly: %+v", cls)
	}

	neg, err := Parse(`[^abc]`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	negCls := neg.At(0).Token.Class()
	if negCls.Kind() != ClassNegSet {
		t.Fatalf("Kind() = %v, want ClassNegSet", negCls.Kind())
	}
	if negCls.Match('a') || !negCls.Match('x') {
		t.Errorf("NegSet match behaved unexpectedly: %+v", negCls)
	}
}

func TestParseAnchors(t *testing.T) {
	prog, err := Parse(`^abc$`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if prog.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", prog.Len())
	}
	if prog.At(0).Token.Class().Kind() != ClassStartAnchor {
		t.Errorf("first unit not a start anchor")
	}
	if prog.At(4).Token.Class().Kind() != ClassEndAnchor {
		t.Errorf("last unit not an end anchor")
	}
}

func TestParseModifiers(t *testing.T) {
	prog, err := Parse(`a?b+`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	a := prog.At(0)
	if !a.Optional || a.HasRepeat() {
		t.Errorf("unit 'a' = %+v, want Optional, not HasRepeat", a)
	}
	b := prog.At(1)
	if !b.HasRepeat() || b.Min != 1 || b.Max != nil {
		t.Errorf("unit 'b' = %+v, want one-or-more", b)
	}
}

func TestParseQuantifierBrace(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		min     int
		max     *int
	}{
		{"exact", "a{3}", 3, intPtr(3)},
		{"at least", "a{2,}", 2, nil},
		{"between", "a{2,5}", 2, intPtr(5)},
		{"zero minimum", "a{0,2}", 0, intPtr(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.pattern, err)
			}
			u := prog.At(0)
			if u.Min != tt.min {
				t.Errorf("Min = %d, want %d", u.Min, tt.min)
			}
			if (u.Max == nil) != (tt.max == nil) {
				t.Fatalf("Max = %v, want %v", u.Max, tt.max)
			}
			if u.Max != nil && *u.Max != *tt.max {
				t.Errorf("Max = %d, want %d", *u.Max, *tt.max)
			}
		})
	}
}

func TestParseStarDotShortcut(t *testing.T) {
	prog, err := Parse(`a*.txt`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if prog.Len() != 6 {
		t.Fatalf("Len() = %d, want 6 (a, wildcard+, literal '.', t, x, t)", prog.Len())
	}
	star := prog.At(1)
	if star.Token.Class().Kind() != ClassWildcard || !star.HasRepeat() || star.Max != nil {
		t.Errorf("unit 1 = %+v, want wildcard one-or-more", star)
	}
	dot := prog.At(2)
	if dot.Token.Class().Kind() != ClassExact || dot.Token.Class().Byte() != '.' || dot.HasRepeat() {
		t.Errorf("unit 2 = %+v, want plain literal '.'", dot)
	}
}

func TestParseAlternation(t *testing.T) {
	prog, err := Parse(`(dog|cat|bird)`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if prog.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", prog.Len())
	}
	alt := prog.At(0).Token.Alt()
	if len(alt.Branches) != 3 {
		t.Fatalf("len(Branches) = %d, want 3", len(alt.Branches))
	}
	if alt.Literals == nil {
		t.Errorf("pure-literal alternation should carry a Literals prefilter")
	}
}

func TestParseAlternationNonLiteral(t *testing.T) {
	prog, err := Parse(`(\d+|cat)`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	alt := prog.At(0).Token.Alt()
	if alt.Literals != nil {
		t.Errorf("non-literal alternation should not carry a Literals prefilter")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"dangling escape", `abc\`, ErrDanglingEscape},
		{"modifier without token", `?abc`, ErrModifierWithoutToken},
		{"unterminated group", `(abc`, ErrUnterminatedGroup},
		{"unterminated bracket", `[abc`, ErrUnterminatedGroup},
		{"empty group", `()`, ErrEmptyGroup},
		{"empty bracket", `[]`, ErrEmptyGroup},
		{"bad quantifier", `a{x}`, ErrBadQuantifier},
		{"quantifier min exceeds max", `a{5,2}`, ErrBadQuantifier},
		{"quantifier without token", `{3}`, ErrModifierWithoutToken},
		{"quantifier too large", `a{999999999}`, ErrQuantifierTooLarge},
		{"non-utf8 quantifier", "a{\xff}", ErrNonUTF8Quantifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.pattern)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want wrapping %v", tt.pattern, err, tt.want)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error is not a *ParseError: %v", err)
			}
		})
	}
}

func intPtr(i int) *int { return &i }
