package suite

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSuite is wrapped by every suite parsing and validation error
var ErrInvalidSuite = errors.New("invalid suite")

// Op names a check a suite case can run
type Op string

const (
	OpAbs        Op = "abs"
	OpPalindrome Op = "palindrome"
)

// Suite represents a complete YAML suite file
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Tests       []Case `yaml:"tests"`

	// File is the path the suite was loaded from, if any
	File string `yaml:"-"`
}

// Case represents a single check within a suite
type Case struct {
	Name   string      `yaml:"name"`
	Op     Op          `yaml:"op"`
	Input  *int64      `yaml:"input"`
	Expect interface{} `yaml:"expect"`
	Skip   interface{} `yaml:"skip,omitempty"` // bool or string
}

// IsSkipped returns true if this case should be skipped, with the reason
func (c *Case) IsSkipped() (bool, string) {
	switch v := c.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		if v == "" {
			return true, "skipped"
		}
		return true, v
	default:
		return false, ""
	}
}

// DisplayName is the name used in report lines: the case name, or op(input)
// when the case is unnamed
func (c *Case) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Input == nil {
		return fmt.Sprintf("%s(?)", c.Op)
	}
	return fmt.Sprintf("%s(%d)", c.Op, *c.Input)
}

// ExpectInt returns the expectation of an abs case
func (c *Case) ExpectInt() (int64, error) {
	switch v := c.Expect.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%w: case %s: expect %d overflows int64", ErrInvalidSuite, c.DisplayName(), v)
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("%w: case %s: expect must be an integer, got %T", ErrInvalidSuite, c.DisplayName(), c.Expect)
	}
}

// ExpectBool returns the expectation of a palindrome case
func (c *Case) ExpectBool() (bool, error) {
	v, ok := c.Expect.(bool)
	if !ok {
		return false, fmt.Errorf("%w: case %s: expect must be a boolean, got %T", ErrInvalidSuite, c.DisplayName(), c.Expect)
	}
	return v, nil
}

// Validate checks that the case names a known op, has an input and carries
// a matching expectation
func (c *Case) Validate() error {
	if c.Op != "" && c.Input == nil {
		return fmt.Errorf("%w: case %s: input is required", ErrInvalidSuite, c.DisplayName())
	}
	switch c.Op {
	case OpAbs:
		_, err := c.ExpectInt()
		return err
	case OpPalindrome:
		_, err := c.ExpectBool()
		return err
	case "":
		return fmt.Errorf("%w: case %s: op is required", ErrInvalidSuite, c.DisplayName())
	default:
		return fmt.Errorf("%w: case %s: unknown op %q (expected %s or %s)", ErrInvalidSuite, c.DisplayName(), c.Op, OpAbs, OpPalindrome)
	}
}

// Validate checks every case of the suite
func (s *Suite) Validate() error {
	if len(s.Tests) == 0 {
		return fmt.Errorf("%w: suite %q has no tests", ErrInvalidSuite, s.Name)
	}
	for i := range s.Tests {
		if err := s.Tests[i].Validate(); err != nil {
			return fmt.Errorf("suite %q, test %d: %w", s.Name, i, err)
		}
	}
	return nil
}
