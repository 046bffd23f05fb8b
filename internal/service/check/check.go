// Package check runs the numeric checks and equality assertions, reporting
// results to an output stream and optionally recording them in a repository.
package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mrled/suns/numcheck/internal/assertion"
	"github.com/mrled/suns/numcheck/internal/metrics"
	"github.com/mrled/suns/numcheck/internal/model"
	"github.com/mrled/suns/numcheck/internal/numeric"
	"github.com/mrled/suns/numcheck/internal/recordid"
)

// Checker evaluates checks. The zero value is not usable; call NewChecker.
type Checker struct {
	out     io.Writer
	repo    model.CheckRepository
	log     *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures a Checker
type Option func(*Checker)

// WithRepository records every evaluated check in repo
func WithRepository(repo model.CheckRepository) Option {
	return func(c *Checker) { c.repo = repo }
}

// WithLogger sets the logger; the default is slog.Default()
func WithLogger(log *slog.Logger) Option {
	return func(c *Checker) { c.log = log }
}

// WithMetrics counts checks in m
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Checker) { c.metrics = m }
}

// WithClock overrides the time source used for record timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

// NewChecker creates a Checker that writes assertion lines to out
func NewChecker(out io.Writer, opts ...Option) *Checker {
	c := &Checker{
		out: out,
		log: slog.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Out returns the stream assertion lines are written to
func (c *Checker) Out() io.Writer {
	return c.out
}

// Abs returns the magnitude of n.
// The only possible error comes from recording the check.
func (c *Checker) Abs(ctx context.Context, n int64) (int64, error) {
	result := numeric.Abs(n)
	input := strconv.FormatInt(n, 10)
	err := c.record(ctx, model.KindAbs, input, []string{input}, strconv.FormatInt(result, 10), true)
	return result, err
}

// Palindrome reports whether the decimal form of x is a palindrome.
// The only possible error comes from recording the check.
func (c *Checker) Palindrome(ctx context.Context, x int64) (bool, error) {
	result := numeric.IsPalindrome(x)
	input := strconv.FormatInt(x, 10)
	err := c.record(ctx, model.KindPalindrome, input, []string{input}, strconv.FormatBool(result), result)
	return result, err
}

// Equal compares a and b, writes the assertion line to the Checker's output
// and records the outcome. The returned error only reports recording failures;
// the Result is valid either way.
func Equal[T comparable](ctx context.Context, c *Checker, name string, a, b T) (assertion.Result, error) {
	result := assertion.Equal(c.out, name, a, b)
	if c.metrics != nil {
		c.metrics.AssertionsTotal.WithLabelValues(metrics.Outcome(result.Passed)).Inc()
	}
	err := c.record(ctx, model.KindAssert, name, []string{result.Got, result.Want}, result.Line(), result.Passed)
	return result, err
}

func (c *Checker) record(ctx context.Context, kind model.CheckKind, name string, inputs []string, output string, passed bool) error {
	if c.metrics != nil {
		c.metrics.ChecksTotal.WithLabelValues(string(kind)).Inc()
	}
	c.log.Debug("Check evaluated",
		slog.String("kind", string(kind)),
		slog.String("name", name),
		slog.Any("inputs", inputs),
		slog.String("output", output))

	if c.repo == nil {
		return nil
	}

	at := c.now().UTC()
	id, err := recordid.CalculateV1(string(kind), name, inputs, at)
	if err != nil {
		return c.recordFailed(fmt.Errorf("failed to calculate record ID: %w", err))
	}

	record := &model.CheckRecord{
		ID:        id,
		Kind:      kind,
		Name:      name,
		Input:     strings.Join(inputs, ", "),
		Output:    output,
		Passed:    passed,
		CheckTime: at,
	}
	if err := c.repo.Store(ctx, record); err != nil {
		return c.recordFailed(fmt.Errorf("failed to record %s check: %w", kind, err))
	}
	return nil
}

func (c *Checker) recordFailed(err error) error {
	if c.metrics != nil {
		c.metrics.RecordErrors.Inc()
	}
	c.log.Warn("Check record not stored", slog.String("error", err.Error()))
	return err
}
