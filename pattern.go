// Package linematch implements a small grep -E-like line pattern matcher:
// a recursive-descent parser compiles a pattern into a syntax.Program, and a
// recursive backtracking matcher decides whether that program matches
// somewhere in a given line.
//
// Basic usage:
//
//	pat, err := linematch.Compile(`\d+ (dog|cat)s?`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if pat.MatchLine([]byte("3 dogs ran")) {
//	    fmt.Println("matched!")
//	}
package linematch

import (
	"github.com/coregx/linematch/backtrack"
	"github.com/coregx/linematch/syntax"
)

// Pattern is a compiled line pattern.
//
// A Pattern is safe to use concurrently from multiple goroutines: Program
// carries no mutable state, and MatchLine threads its own cursor per call.
type Pattern struct {
	prog    *syntax.Program
	config  Config
	pattern string
}

// Compile compiles pattern using DefaultConfig.
//
// Example:
//
//	pat, err := linematch.Compile(`^\d{3}-\d{4}$`)
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails.
//
// Example:
//
//	var portLine = linematch.MustCompile(`^\d{1,5}$`)
func MustCompile(pattern string) *Pattern {
	pat, err := Compile(pattern)
	if err != nil {
		panic("linematch: Compile(" + pattern + "): " + err.Error())
	}
	return pat
}

// CompileWithConfig compiles pattern with a custom configuration.
//
// Example:
//
//	config := linematch.DefaultConfig()
//	config.MaxQuantifier = 100
//	pat, err := linematch.CompileWithConfig(`a{1,50}`, config)
func CompileWithConfig(pattern string, config Config) (*Pattern, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	prog, err := syntax.ParseWithLimits(pattern, config.syntaxLimits())
	if err != nil {
		return nil, err
	}

	return &Pattern{prog: prog, config: config, pattern: pattern}, nil
}

// MatchLine reports whether line contains a match of the pattern anywhere
// within it. It panics if the matcher exceeds its configured recursion
// depth; use MatchLineErr to handle that case explicitly.
func (p *Pattern) MatchLine(line []byte) bool {
	ok, err := p.MatchLineErr(line)
	if err != nil {
		panic("linematch: MatchLine: " + err.Error())
	}
	return ok
}

// MatchLineErr reports whether line contains a match of the pattern
// anywhere within it, returning an error if the matcher could not
// complete (for example, if it exceeded its recursion depth limit).
func (p *Pattern) MatchLineErr(line []byte) (bool, error) {
	return backtrack.MatchLineWithLimits(p.prog, line, p.config.backtrackLimits())
}

// MatchString is a convenience wrapper around MatchLine for string input.
func (p *Pattern) MatchString(s string) bool {
	return p.MatchLine([]byte(s))
}

// String returns the source pattern text the Pattern was compiled from.
func (p *Pattern) String() string {
	return p.pattern
}
