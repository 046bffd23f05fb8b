package numeric

import (
	"math"
	"testing"
)

func TestAbs(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected int64
	}{
		{"negative", -5, 5},
		{"positive", 5, 5},
		{"zero", 0, 0},
		{"negative one", -1, 1},
		{"large negative", -9_000_000_000, 9_000_000_000},
		{"max", math.MaxInt64, math.MaxInt64},
		{"min plus one", math.MinInt64 + 1, math.MaxInt64},
		{"min saturates", math.MinInt64, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Abs(tt.input)
			if result != tt.expected {
				t.Errorf("Abs(%d) = %d, expected %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAbs_SmallTypes(t *testing.T) {
	if got := Abs(int8(math.MinInt8)); got != math.MaxInt8 {
		t.Errorf("Abs(int8 min) = %d, expected %d", got, math.MaxInt8)
	}
	if got := Abs(int16(-300)); got != 300 {
		t.Errorf("Abs(int16(-300)) = %d, expected 300", got)
	}
	if got := Abs(int32(math.MinInt32)); got != math.MaxInt32 {
		t.Errorf("Abs(int32 min) = %d, expected %d", got, math.MaxInt32)
	}
	if got := Abs(-7); got != 7 {
		t.Errorf("Abs(-7) = %d, expected 7", got)
	}
}

func TestAbs_Properties(t *testing.T) {
	inputs := []int64{math.MinInt64, math.MinInt64 + 1, -1000, -121, -5, -1, 0, 1, 5, 121, 1000, math.MaxInt64}

	for _, n := range inputs {
		a := Abs(n)
		if a < 0 {
			t.Errorf("Abs(%d) = %d is negative", n, a)
		}
		if n >= 0 && a != n {
			t.Errorf("Abs(%d) = %d, expected identity for non-negative input", n, a)
		}
		if n < 0 && n != math.MinInt64 && a != -n {
			t.Errorf("Abs(%d) = %d, expected %d", n, a, -n)
		}
		if Abs(a) != a {
			t.Errorf("Abs is not idempotent for %d: Abs(Abs(n)) = %d, Abs(n) = %d", n, Abs(a), a)
		}
	}
}
