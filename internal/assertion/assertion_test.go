package assertion

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEqual_Passed(t *testing.T) {
	var buf bytes.Buffer

	result := Equal(&buf, "121", true, true)

	if !result.Passed {
		t.Error("Expected assertion to pass")
	}
	if buf.String() != "Test 121 passed\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestEqual_Failed(t *testing.T) {
	var buf bytes.Buffer

	result := Equal(&buf, "x", 1, 2)

	if result.Passed {
		t.Error("Expected assertion to fail")
	}
	if buf.String() != "Test x failed: 1 != 2\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}
	if result.Got != "1" || result.Want != "2" {
		t.Errorf("Expected Got=1 Want=2, got Got=%s Want=%s", result.Got, result.Want)
	}
}

func TestEqual_Reflexive(t *testing.T) {
	type point struct{ X, Y int }

	var buf bytes.Buffer
	Equal(&buf, "int", -121, -121)
	Equal(&buf, "string", "noon", "noon")
	Equal(&buf, "bool", false, false)
	Equal(&buf, "struct", point{1, 2}, point{1, 2})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, " passed") {
			t.Errorf("Expected passed line, got %q", line)
		}
	}
}

func TestEqual_RendersBothValues(t *testing.T) {
	tests := []struct {
		name     string
		run      func(*bytes.Buffer) Result
		expected string
	}{
		{
			"strings",
			func(b *bytes.Buffer) Result { return Equal(b, "s", "abc", "cba") },
			"Test s failed: abc != cba",
		},
		{
			"booleans",
			func(b *bytes.Buffer) Result { return Equal(b, "-121", false, true) },
			"Test -121 failed: false != true",
		},
		{
			"negative ints",
			func(b *bytes.Buffer) Result { return Equal(b, "abs", -5, 5) },
			"Test abs failed: -5 != 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			result := tt.run(&buf)
			if result.Passed {
				t.Error("Expected assertion to fail")
			}
			if result.Line() != tt.expected {
				t.Errorf("Line() = %q, expected %q", result.Line(), tt.expected)
			}
			if strings.TrimSuffix(buf.String(), "\n") != tt.expected {
				t.Errorf("Output = %q, expected %q", buf.String(), tt.expected)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestEqual_WriteErrorIgnored(t *testing.T) {
	result := Equal(failingWriter{}, "w", 3, 3)
	if !result.Passed {
		t.Error("Expected assertion to pass despite write failure")
	}
	if result.Line() != "Test w passed" {
		t.Errorf("Unexpected line: %q", result.Line())
	}
}

func TestCompare_DoesNotWrite(t *testing.T) {
	result := Compare("c", 1, 2)
	if result.Passed {
		t.Error("Expected comparison to fail")
	}
	if result.Line() != "Test c failed: 1 != 2" {
		t.Errorf("Unexpected line: %q", result.Line())
	}
}
