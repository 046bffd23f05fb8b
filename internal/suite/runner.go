package suite

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrled/suns/numcheck/internal/metrics"
	"github.com/mrled/suns/numcheck/internal/service/check"
)

// Summary counts case outcomes across a run
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
}

// OK reports whether no case failed
func (s Summary) OK() bool {
	return s.Failed == 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped", s.Passed, s.Failed, s.Skipped)
}

// Runner evaluates suites through a Checker, so every case is reported with
// the assertion line format and recorded like any other check
type Runner struct {
	checker *check.Checker
	metrics *metrics.Metrics
}

// NewRunner creates a Runner; m may be nil
func NewRunner(checker *check.Checker, m *metrics.Metrics) *Runner {
	return &Runner{checker: checker, metrics: m}
}

// Run evaluates every case of every suite in order.
// Failing cases do not stop the run. The error joins any recording failures.
func (r *Runner) Run(ctx context.Context, suites ...Suite) (Summary, error) {
	var summary Summary
	var errs []error

	for _, s := range suites {
		for i := range s.Tests {
			if err := ctx.Err(); err != nil {
				return summary, err
			}

			c := &s.Tests[i]
			name := c.DisplayName()
			if s.Name != "" {
				name = s.Name + "/" + name
			}

			if skipped, reason := c.IsSkipped(); skipped {
				fmt.Fprintf(r.checker.Out(), "Test %s skipped: %s\n", name, reason)
				summary.Skipped++
				r.count("skipped")
				continue
			}

			passed, err := r.runCase(ctx, name, c)
			if err != nil {
				errs = append(errs, err)
			}
			if passed {
				summary.Passed++
			} else {
				summary.Failed++
			}
			r.count(metrics.Outcome(passed))
		}
	}

	return summary, errors.Join(errs...)
}

func (r *Runner) runCase(ctx context.Context, name string, c *Case) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	switch c.Op {
	case OpAbs:
		want, err := c.ExpectInt()
		if err != nil {
			return false, err
		}
		got, recErr := r.checker.Abs(ctx, *c.Input)
		result, eqErr := check.Equal(ctx, r.checker, name, got, want)
		return result.Passed, errors.Join(recErr, eqErr)
	case OpPalindrome:
		want, err := c.ExpectBool()
		if err != nil {
			return false, err
		}
		got, recErr := r.checker.Palindrome(ctx, *c.Input)
		result, eqErr := check.Equal(ctx, r.checker, name, got, want)
		return result.Passed, errors.Join(recErr, eqErr)
	default:
		return false, c.Validate()
	}
}

func (r *Runner) count(outcome string) {
	if r.metrics != nil {
		r.metrics.SuiteCasesTotal.WithLabelValues(outcome).Inc()
	}
}
