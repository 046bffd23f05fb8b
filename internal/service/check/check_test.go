package check

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mrled/suns/numcheck/internal/metrics"
	"github.com/mrled/suns/numcheck/internal/model"
	"github.com/mrled/suns/numcheck/internal/repository/memrepo"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// tickingClock returns a clock that advances one second per call
func tickingClock() func() time.Time {
	current := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

type failingRepo struct {
	*memrepo.MemoryRepository
}

func (failingRepo) Store(ctx context.Context, record *model.CheckRecord) error {
	return errors.New("disk full")
}

func TestChecker_WithoutRepository(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	c := NewChecker(&buf)

	n, err := c.Abs(ctx, -5)
	if err != nil || n != 5 {
		t.Errorf("Abs(-5) = %d, %v; expected 5, nil", n, err)
	}

	p, err := c.Palindrome(ctx, -121)
	if err != nil || p {
		t.Errorf("Palindrome(-121) = %v, %v; expected false, nil", p, err)
	}

	if buf.Len() != 0 {
		t.Errorf("Expected Abs and Palindrome to write nothing, got %q", buf.String())
	}

	result, err := Equal(ctx, c, "121", true, true)
	if err != nil || !result.Passed {
		t.Errorf("Expected passing assertion, got %+v, %v", result, err)
	}
	if buf.String() != "Test 121 passed\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestChecker_RecordsChecks(t *testing.T) {
	ctx := context.Background()
	repo := memrepo.NewMemoryRepository()
	var buf bytes.Buffer
	c := NewChecker(&buf, WithRepository(repo), WithClock(tickingClock()))

	if _, err := c.Abs(ctx, -5); err != nil {
		t.Fatalf("Abs failed: %v", err)
	}
	if _, err := c.Palindrome(ctx, 121); err != nil {
		t.Fatalf("Palindrome failed: %v", err)
	}
	if _, err := Equal(ctx, c, "x", 1, 2); err != nil {
		t.Fatalf("Equal failed: %v", err)
	}

	records, _ := repo.List(ctx)
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	byKind := model.GroupByKind(records)

	abs := byKind[model.KindAbs][0]
	if abs.Input != "-5" || abs.Output != "5" || !abs.Passed {
		t.Errorf("Unexpected abs record: %+v", abs)
	}

	pal := byKind[model.KindPalindrome][0]
	if pal.Name != "121" || pal.Output != "true" || !pal.Passed {
		t.Errorf("Unexpected palindrome record: %+v", pal)
	}

	as := byKind[model.KindAssert][0]
	if as.Name != "x" || as.Input != "1, 2" || as.Output != "Test x failed: 1 != 2" || as.Passed {
		t.Errorf("Unexpected assert record: %+v", as)
	}
	if as.CheckTime.IsZero() {
		t.Error("Expected CheckTime to be set")
	}
}

func TestChecker_RepeatedChecksGetDistinctRecords(t *testing.T) {
	ctx := context.Background()
	repo := memrepo.NewMemoryRepository()
	c := NewChecker(&bytes.Buffer{}, WithRepository(repo), WithClock(tickingClock()))

	for i := 0; i < 3; i++ {
		if _, err := c.Abs(ctx, -1); err != nil {
			t.Fatalf("Abs failed on iteration %d: %v", i, err)
		}
	}

	records, _ := repo.List(ctx)
	if len(records) != 3 {
		t.Errorf("Expected 3 records, got %d", len(records))
	}
}

func TestChecker_RecordFailure(t *testing.T) {
	ctx := context.Background()
	m := metrics.NewMetrics()
	c := NewChecker(&bytes.Buffer{}, WithRepository(failingRepo{memrepo.NewMemoryRepository()}), WithMetrics(m))

	n, err := c.Abs(ctx, -9)
	if n != 9 {
		t.Errorf("Expected result 9 despite record failure, got %d", n)
	}
	if err == nil {
		t.Fatal("Expected record error")
	}

	result, err := Equal(ctx, c, "same", "a", "a")
	if !result.Passed {
		t.Error("Expected assertion to pass despite record failure")
	}
	if err == nil {
		t.Error("Expected record error from Equal")
	}

	if got := testutil.ToFloat64(m.RecordErrors); got != 2 {
		t.Errorf("Expected 2 record errors, got %v", got)
	}
}

func TestChecker_Metrics(t *testing.T) {
	ctx := context.Background()
	m := metrics.NewMetrics()
	c := NewChecker(&bytes.Buffer{}, WithMetrics(m))

	c.Abs(ctx, 1)
	c.Palindrome(ctx, 1)
	c.Palindrome(ctx, 12)
	Equal(ctx, c, "a", 1, 1)
	Equal(ctx, c, "b", 1, 2)
	Equal(ctx, c, "c", "x", "y")

	checks := map[string]float64{"abs": 1, "palindrome": 2, "assert": 3}
	for kind, want := range checks {
		if got := testutil.ToFloat64(m.ChecksTotal.WithLabelValues(kind)); got != want {
			t.Errorf("Expected %v %s checks, got %v", want, kind, got)
		}
	}
	if got := testutil.ToFloat64(m.AssertionsTotal.WithLabelValues("failed")); got != 2 {
		t.Errorf("Expected 2 failed assertions, got %v", got)
	}
	if got := testutil.ToFloat64(m.AssertionsTotal.WithLabelValues("passed")); got != 1 {
		t.Errorf("Expected 1 passed assertion, got %v", got)
	}
}
