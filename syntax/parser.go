package syntax

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/coregx/linematch/prefilter"
)

// Limits bounds what the parser will accept, so a hostile or accidental
// pattern can't make compilation allocate or loop unreasonably.
type Limits struct {
	// MaxQuantifier caps the n/m values accepted inside {n}/{n,m} braces.
	MaxQuantifier int

	// EnablePrefilter controls whether pure-literal alternations get an
	// attached prefilter.Literals fast-reject (see the prefilter package).
	EnablePrefilter bool
}

// DefaultLimits returns permissive defaults suitable for ad hoc use and
// tests; production callers should go through linematch.Config instead.
func DefaultLimits() Limits {
	return Limits{
		MaxQuantifier:   10_000,
		EnablePrefilter: true,
	}
}

// Parse compiles pattern using DefaultLimits.
func Parse(pattern string) (*Program, error) {
	return ParseWithLimits(pattern, DefaultLimits())
}

// ParseWithLimits compiles pattern into a Program, dispatching byte-by-byte
// with one byte of lookahead (see SPEC_FULL.md §4.2).
func ParseWithLimits(pattern string, limits Limits) (*Program, error) {
	p := &parser{src: []byte(pattern), pattern: pattern, limits: limits}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &Program{units: p.units, src: pattern}, nil
}

type parser struct {
	src     []byte
	pattern string
	i       int
	limits  Limits
	units   []Unit
}

func (p *parser) errAt(pos int, kind error) error {
	return &ParseError{Pattern: p.pattern, Pos: pos, Err: kind}
}

func (p *parser) push(u Unit) {
	p.units = append(p.units, u)
}

func (p *parser) last() *Unit {
	if len(p.units) == 0 {
		return nil
	}
	return &p.units[len(p.units)-1]
}

func (p *parser) run() error {
	length := len(p.src)

	for p.i < length {
		c := p.src[p.i]
		pos := p.i

		switch {
		case c == '?':
			u := p.last()
			if u == nil {
				return p.errAt(pos, ErrModifierWithoutToken)
			}
			u.Optional = true
			p.i++

		case c == '+':
			u := p.last()
			if u == nil {
				return p.errAt(pos, ErrModifierWithoutToken)
			}
			u.Quantified = true
			u.Min = 1
			u.Max = nil
			p.i++

		case c == '{':
			if err := p.parseQuantifierBrace(); err != nil {
				return err
			}

		case c == '^' && pos == 0:
			p.push(newUnit(NewClassToken(NewStartAnchor())))
			p.i++

		case c == '$' && pos == length-1:
			p.push(newUnit(NewClassToken(NewEndAnchor())))
			p.i++

		case c == '.':
			p.push(newUnit(NewClassToken(NewWildcard())))
			p.i++

		case c == '*':
			u := newUnit(NewClassToken(NewWildcard()))
			u.Quantified = true
			u.Min = 1
			u.Max = nil
			p.push(u)
			p.i++
			if p.i < length && p.src[p.i] == '.' {
				p.push(newUnit(NewClassToken(NewExact('.'))))
				p.i++
			}

		case c == '\\':
			if err := p.parseEscape(); err != nil {
				return err
			}

		case c == '(':
			if err := p.parseAlt(); err != nil {
				return err
			}

		case c == '[':
			if err := p.parseBracketClass(); err != nil {
				return err
			}

		default:
			p.push(newUnit(NewClassToken(NewExact(c))))
			p.i++
		}
	}

	return nil
}

// parseEscape handles '\' followed by one of the class shorthands, or any
// other byte taken as a literal.
func (p *parser) parseEscape() error {
	pos := p.i
	if p.i+1 >= len(p.src) {
		return p.errAt(pos, ErrDanglingEscape)
	}
	next := p.src[p.i+1]

	var u Unit
	switch next {
	case 'd':
		u = newUnit(NewClassToken(NewKind(ClassDigit)))
	case 'D':
		u = newUnit(NewClassToken(NewKind(ClassNonDigit)))
	case 'w':
		u = newUnit(NewClassToken(NewKind(ClassAlnum)))
	case 'W':
		u = newUnit(NewClassToken(NewKind(ClassNonAlnum)))
	case 's':
		u = newUnit(NewClassToken(NewKind(ClassSpace)))
	case 'S':
		u = newUnit(NewClassToken(NewKind(ClassNonSpace)))
	default:
		u = newUnit(NewClassToken(NewExact(next)))
	}
	p.push(u)
	p.i += 2
	return nil
}

// parseGroup reads bytes from just after the opening delimiter (p.i must
// point at it) up to the first occurrence of close, with no awareness of
// nested delimiters. It advances p.i past close and rejects empty groups.
func (p *parser) parseGroup(close byte) ([]byte, error) {
	openPos := p.i
	p.i++ // consume the opening delimiter
	start := p.i
	for p.i < len(p.src) && p.src[p.i] != close {
		p.i++
	}
	if p.i >= len(p.src) {
		return nil, p.errAt(openPos, ErrUnterminatedGroup)
	}
	group := p.src[start:p.i]
	p.i++ // consume the closing delimiter
	if len(group) == 0 {
		return nil, p.errAt(openPos, ErrEmptyGroup)
	}
	return group, nil
}

// parseBracketClass handles '[...]': Set, or NegSet when the first byte
// inside is '^'.
func (p *parser) parseBracketClass() error {
	group, err := p.parseGroup(']')
	if err != nil {
		return err
	}
	if group[0] == '^' {
		p.push(newUnit(NewClassToken(NewNegSet(append([]byte(nil), group[1:]...)))))
	} else {
		p.push(newUnit(NewClassToken(NewSet(append([]byte(nil), group...)))))
	}
	return nil
}

// parseAlt handles '(...)': split the group on top-level '|' bytes and
// recursively parse each branch as its own Program.
func (p *parser) parseAlt() error {
	openPos := p.i
	group, err := p.parseGroup(')')
	if err != nil {
		return err
	}

	branchBytes := bytes.Split(group, []byte{'|'})
	branches := make([]*Program, 0, len(branchBytes))
	literals := make([][]byte, 0, len(branchBytes))
	pureLiteral := true

	for _, bb := range branchBytes {
		branch, err := ParseWithLimits(string(bb), p.limits)
		if err != nil {
			return p.errAt(openPos, err)
		}
		branches = append(branches, branch)

		if lit, ok := literalBytes(branch); ok {
			literals = append(literals, lit)
		} else {
			pureLiteral = false
		}
	}

	alt := &Alt{Branches: branches}
	if pureLiteral && p.limits.EnablePrefilter {
		alt.Literals = prefilter.New(literals)
	}
	p.push(newUnit(NewAltToken(alt)))
	return nil
}

// literalBytes returns the flattened literal byte string for prog if every
// unit is a plain, unquantified, non-optional exact-byte match.
func literalBytes(prog *Program) ([]byte, bool) {
	if prog.Len() == 0 {
		return nil, false
	}
	out := make([]byte, 0, prog.Len())
	for i := 0; i < prog.Len(); i++ {
		u := prog.At(i)
		if u.Optional || u.Quantified || u.Token.Kind() != TokenClass {
			return nil, false
		}
		cls := u.Token.Class()
		if cls.Kind() != ClassExact {
			return nil, false
		}
		out = append(out, cls.Byte())
	}
	return out, true
}

// parseQuantifierBrace handles '{n}', '{n,}', and '{n,m}'.
func (p *parser) parseQuantifierBrace() error {
	openPos := p.i
	group, err := p.parseGroup('}')
	if err != nil {
		return err
	}
	if !utf8.Valid(group) {
		return p.errAt(openPos, ErrNonUTF8Quantifier)
	}

	u := p.last()
	if u == nil {
		return p.errAt(openPos, ErrModifierWithoutToken)
	}

	spec := string(group)
	var min, max int
	var hasMax bool

	if comma := bytes.IndexByte(group, ','); comma >= 0 {
		left := spec[:comma]
		right := spec[comma+1:]

		min, err = strconv.Atoi(left)
		if err != nil {
			return p.errAt(openPos, ErrBadQuantifier)
		}
		if right != "" {
			max, err = strconv.Atoi(right)
			if err != nil {
				return p.errAt(openPos, ErrBadQuantifier)
			}
			hasMax = true
		}
	} else {
		min, err = strconv.Atoi(spec)
		if err != nil {
			return p.errAt(openPos, ErrBadQuantifier)
		}
		max = min
		hasMax = true
	}

	if hasMax && min > max {
		return p.errAt(openPos, ErrBadQuantifier)
	}

	if min > p.limits.MaxQuantifier || (hasMax && max > p.limits.MaxQuantifier) {
		return p.errAt(openPos, ErrQuantifierTooLarge)
	}

	u.Quantified = true
	u.Min = min
	if hasMax {
		m := max
		u.Max = &m
	} else {
		u.Max = nil
	}
	return nil
}
