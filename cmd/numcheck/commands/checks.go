package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mrled/suns/numcheck/internal/service/check"
	"github.com/spf13/cobra"
)

func newAbsCmd(a *app) *cobra.Command {
	var flags PersistenceFlags

	cmd := &cobra.Command{
		Use:     "abs <n>",
		Short:   "Print the absolute value of an integer",
		GroupID: "checks",
		Long: `Print the absolute value of a 64-bit integer.

The minimum int64 value has no positive counterpart and saturates to the maximum.

Arguments:
  n  A base-10 integer (use -- before negative values, e.g. numcheck abs -- -5)`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}

			checker, err := a.newChecker(cmd, &flags)
			if err != nil {
				return err
			}

			result, recErr := checker.Abs(cmd.Context(), n)
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return recErr
		},
	}

	addPersistenceFlags(cmd, &flags)
	return cmd
}

func newPalindromeCmd(a *app) *cobra.Command {
	var flags PersistenceFlags

	cmd := &cobra.Command{
		Use:     "palindrome <n>",
		Short:   "Print whether an integer's decimal form is a palindrome",
		GroupID: "checks",
		Long: `Print true if the decimal form of the integer reads the same in both directions.

The minus sign is part of the decimal form, so negative numbers are never palindromes.

Arguments:
  n  A base-10 integer`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInt(args[0])
			if err != nil {
				return err
			}

			checker, err := a.newChecker(cmd, &flags)
			if err != nil {
				return err
			}

			result, recErr := checker.Palindrome(cmd.Context(), x)
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return recErr
		},
	}

	addPersistenceFlags(cmd, &flags)
	return cmd
}

// Value types accepted by assert --as
const (
	compareString = "string"
	compareInt    = "int"
	compareBool   = "bool"
)

func newAssertCmd(a *app) *cobra.Command {
	var flags PersistenceFlags
	var compareAs string
	var strict bool

	cmd := &cobra.Command{
		Use:     "assert <name> <a> <b>",
		Short:   "Assert that two values are equal",
		GroupID: "checks",
		Long: `Compare two values and print "Test <name> passed" or "Test <name> failed: <a> != <b>".

Values are compared as strings unless --as selects int or bool parsing.
A failed assertion exits 0 unless --strict is given.

Arguments:
  name  Name printed in the report line
  a     First value
  b     Second value`,
		Args: usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			valA, valB, err := parseAssertValues(compareAs, args[1], args[2])
			if err != nil {
				return err
			}

			checker, err := a.newChecker(cmd, &flags)
			if err != nil {
				return err
			}

			result, recErr := check.Equal(cmd.Context(), checker, name, valA, valB)
			if strict && !result.Passed {
				return ExitWithCode(exitFailure, fmt.Errorf("assertion %s failed", name))
			}
			return recErr
		},
	}

	cmd.Flags().StringVar(&compareAs, "as", compareString, "Compare values as: string, int or bool")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 when the assertion fails")
	addPersistenceFlags(cmd, &flags)
	return cmd
}

// parseAssertValues parses both raw values according to compareAs.
// Values of the same type compare with ==.
func parseAssertValues(compareAs, rawA, rawB string) (any, any, error) {
	var parse func(string) (any, error)

	switch strings.ToLower(compareAs) {
	case compareString:
		return rawA, rawB, nil
	case compareInt:
		parse = func(arg string) (any, error) { return parseInt(arg) }
	case compareBool:
		parse = func(arg string) (any, error) { return parseBool(arg) }
	default:
		return nil, nil, &UsageError{fmt.Errorf("invalid --as value %q (expected %s, %s or %s)", compareAs, compareString, compareInt, compareBool)}
	}

	a, err := parse(rawA)
	if err != nil {
		return nil, nil, err
	}
	b, err := parse(rawB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func parseBool(arg string) (bool, error) {
	b, err := strconv.ParseBool(arg)
	if err != nil {
		return false, &UsageError{fmt.Errorf("invalid boolean %q", arg)}
	}
	return b, nil
}
