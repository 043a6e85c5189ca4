// Package syntax implements the token model and parser for the line-matcher
// pattern dialect: a small grep -E-like grammar of literals, character
// classes, anchors, alternation, and quantifiers.
package syntax

import (
	"fmt"

	"github.com/coregx/linematch/prefilter"
)

// ClassKind identifies the predicate a CharClass applies to a single byte,
// or marks it as one of the two zero-width position anchors.
type ClassKind uint8

const (
	// ClassExact matches one specific byte.
	ClassExact ClassKind = iota
	// ClassWildcard matches any byte.
	ClassWildcard
	// ClassSet matches any byte in an explicit set.
	ClassSet
	// ClassNegSet matches any byte NOT in an explicit set.
	ClassNegSet
	// ClassDigit matches ASCII digits.
	ClassDigit
	// ClassNonDigit matches non-digit bytes.
	ClassNonDigit
	// ClassAlnum matches ASCII letters and digits (no underscore).
	ClassAlnum
	// ClassNonAlnum matches bytes that are not ASCII letters or digits.
	ClassNonAlnum
	// ClassSpace matches ASCII whitespace.
	ClassSpace
	// ClassNonSpace matches non-whitespace bytes.
	ClassNonSpace
	// ClassStartAnchor is the zero-width start-of-line position.
	ClassStartAnchor
	// ClassEndAnchor is the zero-width end-of-line position.
	ClassEndAnchor
)

// String returns a human-readable name for the class kind.
func (k ClassKind) String() string {
	switch k {
	case ClassExact:
		return "Exact"
	case ClassWildcard:
		return "Wildcard"
	case ClassSet:
		return "Set"
	case ClassNegSet:
		return "NegSet"
	case ClassDigit:
		return "Digit"
	case ClassNonDigit:
		return "NonDigit"
	case ClassAlnum:
		return "Alnum"
	case ClassNonAlnum:
		return "NonAlnum"
	case ClassSpace:
		return "Space"
	case ClassNonSpace:
		return "NonSpace"
	case ClassStartAnchor:
		return "StartAnchor"
	case ClassEndAnchor:
		return "EndAnchor"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// IsAnchor reports whether the class is one of the zero-width position
// anchors, as opposed to a byte-consuming predicate.
func (k ClassKind) IsAnchor() bool {
	return k == ClassStartAnchor || k == ClassEndAnchor
}

// CharClass is a predicate over a single byte (or a zero-width anchor).
// Only the fields relevant to Kind are populated: byteVal for ClassExact,
// set for ClassSet/ClassNegSet.
type CharClass struct {
	kind    ClassKind
	byteVal byte
	set     []byte
}

// NewExact returns a CharClass matching exactly b.
func NewExact(b byte) CharClass {
	return CharClass{kind: ClassExact, byteVal: b}
}

// NewWildcard returns a CharClass matching any byte.
func NewWildcard() CharClass {
	return CharClass{kind: ClassWildcard}
}

// NewSet returns a CharClass matching any byte in set.
func NewSet(set []byte) CharClass {
	return CharClass{kind: ClassSet, set: set}
}

// NewNegSet returns a CharClass matching any byte not in set.
func NewNegSet(set []byte) CharClass {
	return CharClass{kind: ClassNegSet, set: set}
}

// NewKind returns a CharClass for one of the \d \D \w \W \s \S predicates.
func NewKind(kind ClassKind) CharClass {
	return CharClass{kind: kind}
}

// NewStartAnchor returns the ^ zero-width anchor class.
func NewStartAnchor() CharClass {
	return CharClass{kind: ClassStartAnchor}
}

// NewEndAnchor returns the $ zero-width anchor class.
func NewEndAnchor() CharClass {
	return CharClass{kind: ClassEndAnchor}
}

// Kind returns the class's kind.
func (c CharClass) Kind() ClassKind {
	return c.kind
}

// Byte returns the exact byte for a ClassExact class.
func (c CharClass) Byte() byte {
	return c.byteVal
}

// Set returns the member bytes for a ClassSet/ClassNegSet class.
func (c CharClass) Set() []byte {
	return c.set
}

// Match reports whether b satisfies the class predicate. Anchor kinds
// always return false here; position handling for anchors is structural,
// not byte-predicate-based (see the backtrack package).
func (c CharClass) Match(b byte) bool {
	switch c.kind {
	case ClassExact:
		return b == c.byteVal
	case ClassWildcard:
		return true
	case ClassSet:
		return contains(c.set, b)
	case ClassNegSet:
		return !contains(c.set, b)
	case ClassDigit:
		return b >= '0' && b <= '9'
	case ClassNonDigit:
		return !(b >= '0' && b <= '9')
	case ClassAlnum:
		return isAlnum(b)
	case ClassNonAlnum:
		return !isAlnum(b)
	case ClassSpace:
		return isSpace(b)
	case ClassNonSpace:
		return !isSpace(b)
	default:
		return false
	}
}

func contains(set []byte, b byte) bool {
	for _, c := range set {
		if c == b {
			return true
		}
	}
	return false
}

// isAlnum matches Rust's is_ascii_alphanumeric: letters and digits only, no
// underscore (despite \w's usual "word byte" connotation elsewhere).
func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// isSpace matches Rust's is_ascii_whitespace: space, tab, LF, FF, CR. Notably
// excludes '\v' (vertical tab), per the WHATWG Infra ASCII-whitespace set.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

// TokenKind distinguishes a single-byte-predicate token from an
// alternation group.
type TokenKind uint8

const (
	// TokenClass is a CharClass token.
	TokenClass TokenKind = iota
	// TokenAlt is an Alt (alternation) token.
	TokenAlt
)

// Token is one matching unit's payload: either a CharClass or an Alt.
type Token struct {
	kind  TokenKind
	class CharClass
	alt   *Alt
}

// NewClassToken wraps a CharClass as a Token.
func NewClassToken(c CharClass) Token {
	return Token{kind: TokenClass, class: c}
}

// NewAltToken wraps an Alt as a Token.
func NewAltToken(a *Alt) Token {
	return Token{kind: TokenAlt, alt: a}
}

// Kind returns the token's kind.
func (t Token) Kind() TokenKind {
	return t.kind
}

// Class returns the wrapped CharClass. Only valid when Kind() == TokenClass.
func (t Token) Class() CharClass {
	return t.class
}

// Alt returns the wrapped Alt. Only valid when Kind() == TokenAlt.
func (t Token) Alt() *Alt {
	return t.alt
}

// Alt is an ordered list of alternation branches, each a full sub-pattern.
// Branches are tried in order and the first to match wins (see the
// backtrack package for the matching procedure).
type Alt struct {
	Branches []*Program

	// Literals is a fast-reject prefilter attached when every branch is a
	// flat literal byte run (no classes, anchors, or quantifiers). Nil when
	// the alternation isn't pure-literal or prefiltering was disabled.
	Literals *prefilter.Literals
}
