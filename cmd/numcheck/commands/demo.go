package commands

import (
	"fmt"

	"github.com/mrled/suns/numcheck/internal/service/check"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   "Print the demonstration checks",
		GroupID: "checks",
		Long: `Print whether -121 is a palindrome, then assert that 121 is one.

Output:
  false
  Test 121 passed`,
		Args: usageArgs(cobra.NoArgs),
		RunE: a.runDemo,
	}
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	checker, err := a.newChecker(cmd, nil)
	if err != nil {
		return err
	}

	negative, err := checker.Palindrome(ctx, -121)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), negative)

	positive, err := checker.Palindrome(ctx, 121)
	if err != nil {
		return err
	}
	_, err = check.Equal(ctx, checker, "121", positive, true)
	return err
}
