// Package assertion compares two values and reports the outcome as a single
// human-readable line.
package assertion

import (
	"fmt"
	"io"
	"os"
)

// Result is the outcome of one named equality assertion.
type Result struct {
	Name   string
	Passed bool
	// Got and Want are the compared values rendered with %v
	Got  string
	Want string
}

// Line returns the report line for the result, without a trailing newline:
// "Test <name> passed" or "Test <name> failed: <got> != <want>".
func (r Result) Line() string {
	if r.Passed {
		return fmt.Sprintf("Test %s passed", r.Name)
	}
	return fmt.Sprintf("Test %s failed: %s != %s", r.Name, r.Got, r.Want)
}

// Compare evaluates a == b without writing anything.
func Compare[T comparable](name string, a, b T) Result {
	return Result{
		Name:   name,
		Passed: a == b,
		Got:    fmt.Sprint(a),
		Want:   fmt.Sprint(b),
	}
}

// Equal compares a and b with Go equality and writes the report line to w.
// A failed write does not change the result.
func Equal[T comparable](w io.Writer, name string, a, b T) Result {
	result := Compare(name, a, b)
	fmt.Fprintln(w, result.Line())
	return result
}

// Print is Equal writing to standard output.
func Print[T comparable](name string, a, b T) Result {
	return Equal(os.Stdout, name, a, b)
}
