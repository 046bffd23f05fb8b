package commands

import (
	"errors"
	"fmt"

	"github.com/mrled/suns/numcheck/internal/suite"
	"github.com/spf13/cobra"
)

func newSuiteCmd(a *app) *cobra.Command {
	var flags PersistenceFlags

	cmd := &cobra.Command{
		Use:     "suite <path> [path...]",
		Short:   "Run checks described in YAML suite files",
		GroupID: "checks",
		Long: `Run the abs and palindrome checks listed in YAML suite files and report each one
as an assertion line. Directories are searched recursively for .yaml and .yml files.

Exits with status 1 if any case fails.

Suite format:
  name: palindromes
  tests:
    - name: "121"
      op: palindrome
      input: 121
      expect: true
    - op: abs
      input: -5
      expect: 5
      skip: "optional reason"`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			suites, err := suite.LoadPaths(args)
			if err != nil {
				if errors.Is(err, suite.ErrInvalidSuite) {
					return &UsageError{err}
				}
				return err
			}

			checker, err := a.newChecker(cmd, &flags)
			if err != nil {
				return err
			}

			summary, runErr := suite.NewRunner(checker, a.metrics).Run(cmd.Context(), suites...)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", summary)

			if runErr != nil {
				return runErr
			}
			if !summary.OK() {
				return ExitWithCode(exitFailure, fmt.Errorf("%d of %d cases failed", summary.Failed, summary.Passed+summary.Failed))
			}
			return nil
		},
	}

	addPersistenceFlags(cmd, &flags)
	return cmd
}
