// Package prefilter implements a fast-reject check for pure-literal
// alternations (e.g. (dog|cat|bird)), backed by an Aho-Corasick automaton.
//
// It mirrors how the coregex meta-engine uses github.com/coregx/ahocorasick
// for large literal alternations, scaled down to a single concern: deciding
// whether any branch literal could possibly occur in the remaining input
// before the backtracker spends time trying every branch in order.
package prefilter

import "github.com/coregx/ahocorasick"

// Literals is a compiled set of literal byte strings that can be
// fast-rejected against a haystack in one pass.
type Literals struct {
	auto *ahocorasick.Automaton
}

// New builds a Literals prefilter from a set of literal branches. Returns
// nil if construction fails or branches is empty; a nil *Literals is safe
// to use and always reports CouldMatch as true (i.e. it degrades to "no
// prefilter, always try every branch" rather than ever causing a false
// rejection).
func New(branches [][]byte) *Literals {
	if len(branches) == 0 {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for _, b := range branches {
		builder.AddPattern(b)
	}

	auto, err := builder.Build()
	if err != nil {
		return nil
	}

	return &Literals{auto: auto}
}

// CouldMatch reports whether any of the prefilter's literals occurs
// anywhere in tail. A false result is a sound fast-reject: if no branch
// literal appears anywhere in tail, none can appear at the current offset
// either. A true result is merely inconclusive and the caller must still
// try each branch directly.
//
// CouldMatch is safe to call on a nil receiver (always returns true).
func (l *Literals) CouldMatch(tail []byte) bool {
	if l == nil || l.auto == nil {
		return true
	}
	return l.auto.IsMatch(tail)
}
