// Package backtrack implements the recursive backtracking procedure that
// decides whether a compiled syntax.Program matches somewhere in a line.
// There is no NFA/DFA compilation step: matching walks the Program directly,
// trying alternation branches and repetition counts in order and
// backtracking on failure, the way the original pattern-matching dialect
// this package implements is defined.
package backtrack

import (
	"math"

	"github.com/coregx/linematch/syntax"
)

// Limits bounds how much work the matcher will do on a single line.
type Limits struct {
	// MaxRecursionDepth caps matchHere's recursion depth.
	MaxRecursionDepth int
}

// DefaultLimits returns permissive defaults suitable for ad hoc use and
// tests; production callers should go through linematch.Config instead.
func DefaultLimits() Limits {
	return Limits{MaxRecursionDepth: 10_000}
}

// MatchLine reports whether prog matches anywhere in line, using
// DefaultLimits.
func MatchLine(prog *syntax.Program, line []byte) (bool, error) {
	return MatchLineWithLimits(prog, line, DefaultLimits())
}

// MatchLineWithLimits reports whether prog matches anywhere in line. It
// tries every start offset in turn; a leading ^ in prog only ever succeeds
// at offset 0, since matchHere checks the anchor against the true line
// position rather than granting it special status.
func MatchLineWithLimits(prog *syntax.Program, line []byte, limits Limits) (bool, error) {
	for start := 0; start <= len(line); start++ {
		_, ok, err := matchHere(prog, 0, line, start, 0, limits)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// matchHere attempts to match prog starting at unit index uidx, at line
// position pos, through to the end of prog's unit chain. On success it
// returns the total number of bytes consumed from pos through the end of
// the chain.
func matchHere(prog *syntax.Program, uidx int, line []byte, pos int, depth int, limits Limits) (int, bool, error) {
	if depth > limits.MaxRecursionDepth {
		return 0, false, &MatchError{Err: ErrTooComplex}
	}
	if uidx >= prog.Len() {
		return 0, true, nil
	}

	unit := prog.At(uidx)

	if unit.Token.Kind() == syntax.TokenClass && unit.Token.Class().Kind().IsAnchor() {
		return matchAnchor(prog, uidx, unit, line, pos, depth, limits)
	}
	return matchRepeat(prog, uidx, unit, line, pos, depth, limits)
}

// matchAnchor handles the zero-width ^ and $ position checks. Per the
// dialect's rules an anchor has no special status beyond this positional
// check wherever it appears, including inside an alternation branch: it
// checks the true, absolute line position, not a position relative to the
// branch's own start.
func matchAnchor(prog *syntax.Program, uidx int, unit syntax.Unit, line []byte, pos, depth int, limits Limits) (int, bool, error) {
	var ok bool
	switch unit.Token.Class().Kind() {
	case syntax.ClassStartAnchor:
		ok = pos == 0
	case syntax.ClassEndAnchor:
		ok = pos == len(line)
	}
	if !ok {
		return 0, false, nil
	}

	rest, ok, err := matchHere(prog, uidx+1, line, pos, depth+1, limits)
	if err != nil || !ok {
		return 0, false, err
	}
	return rest, true, nil
}

// tryToken attempts a single match of token at line position pos, reporting
// how many bytes it consumed on success. It dispatches on the token kind so
// that matchRepeat can apply the same optional/repetition handling to a
// CharClass or an Alt uniformly, instead of hard-coding a single-byte
// CharClass predicate as the only repeatable unit.
func tryToken(token syntax.Token, line []byte, pos, depth int, limits Limits) (int, bool, error) {
	if token.Kind() == syntax.TokenAlt {
		return tryAlt(token.Alt(), line, pos, depth, limits)
	}
	class := token.Class()
	if pos >= len(line) || !class.Match(line[pos]) {
		return 0, false, nil
	}
	return 1, true, nil
}

// tryAlt tries each branch of an alternation in order at line position pos,
// reporting the winning branch's consumed length. If the alternation
// carries a literals prefilter and it reports no branch literal could occur
// in the remaining input, every branch is rejected without trying any of
// them individually.
func tryAlt(alt *syntax.Alt, line []byte, pos, depth int, limits Limits) (int, bool, error) {
	if alt.Literals != nil && !alt.Literals.CouldMatch(line[pos:]) {
		return 0, false, nil
	}

	for _, branch := range alt.Branches {
		consumed, ok, err := matchHere(branch, 0, line, pos, depth+1, limits)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return consumed, true, nil
		}
	}
	return 0, false, nil
}

// matchRepeat matches unit's token between EffectiveMin and its repetition
// cap, greedily extending one match at a time but checking after every
// match (starting from the minimum) whether the rest of the chain could now
// take over. This hands control to the next unit as soon as it can succeed,
// rather than always consuming the maximum possible count first and
// backtracking down from there. unit's token may be a CharClass (one byte
// per repetition) or an Alt (a variable-length branch per repetition) —
// tryToken abstracts over that difference, so a quantified or optional
// alternation such as `(dog|cat)+` or `(dog|cat)?` is matched exactly like
// a quantified or optional CharClass.
func matchRepeat(prog *syntax.Program, uidx int, unit syntax.Unit, line []byte, pos, depth int, limits Limits) (int, bool, error) {
	min := unit.EffectiveMin()
	maxReps := repeatCap(unit)

	cur := pos
	count := 0
	for count < min {
		consumed, ok, err := tryToken(unit.Token, line, cur, depth, limits)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		cur += consumed
		count++
	}

	for {
		restConsumed, ok, err := matchHere(prog, uidx+1, line, cur, depth+1, limits)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return (cur - pos) + restConsumed, true, nil
		}
		if count >= maxReps {
			return 0, false, nil
		}
		consumed, ok, err := tryToken(unit.Token, line, cur, depth, limits)
		if err != nil {
			return 0, false, err
		}
		if !ok || consumed == 0 {
			// A zero-width repetition (e.g. an Alt branch that matched
			// nothing, such as `a?` inside `(a?|b)+`) would retry the
			// identical rest-of-program check at the same cur forever;
			// the rest check above already failed for this cur, so stop.
			return 0, false, nil
		}
		cur += consumed
		count++
	}
}

// repeatCap returns the maximum number of repetitions unit may consume.
func repeatCap(unit syntax.Unit) int {
	if unit.Max != nil {
		return *unit.Max
	}
	if unit.Quantified {
		return math.MaxInt
	}
	return 1
}
