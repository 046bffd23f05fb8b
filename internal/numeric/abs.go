// Package numeric provides small integer checks: absolute value and
// decimal palindrome detection.
package numeric

// Signed is satisfied by every built-in signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Abs returns the magnitude of n.
// Negating the minimum value of a fixed-width type overflows, so that one
// input saturates to the maximum value of T instead of wrapping back to a
// negative number. Abs never returns a negative value.
func Abs[T Signed](n T) T {
	if n >= 0 {
		return n
	}
	if -n < 0 {
		// n is the minimum value of T
		return -(n + 1)
	}
	return -n
}
