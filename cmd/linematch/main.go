// Command linematch reads one line from standard input and reports whether
// it matches a pattern, the way grep -E does for a single line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/coregx/linematch"
	"github.com/spf13/cobra"
)

func main() {
	var extendedRegexp bool

	rootCmd := &cobra.Command{
		Use:           "linematch -E <pattern>",
		Short:         "Match a single line of stdin against a pattern",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	// Accepted for invocation-shape fidelity with grep -E; the engine has
	// only one dialect, so this flag is not branched on.
	rootCmd.Flags().BoolVarP(&extendedRegexp, "extended-regexp", "E", false, "use extended regular expressions (always on)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(pattern string) error {
	pat, err := linematch.Compile(pattern)
	if err != nil {
		return fmt.Errorf("linematch: %w", err)
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("linematch: reading input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	ok, err := pat.MatchLineErr([]byte(line))
	if err != nil {
		return fmt.Errorf("linematch: %w", err)
	}
	if !ok {
		os.Exit(1)
	}
	return nil
}
