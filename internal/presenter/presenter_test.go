package presenter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mrled/suns/numcheck/internal/model"
)

var now = time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)

func TestFormatTimeSince(t *testing.T) {
	tests := []struct {
		name    string
		ago     time.Duration
		verbose string
		compact string
	}{
		{"future", -time.Hour, "just now", "now"},
		{"seconds", 30 * time.Second, "just now", "now"},
		{"minutes", 5 * time.Minute, "5 minutes ago", "5m ago"},
		{"hours", 150 * time.Minute, "2.5 hours ago", "2.5h ago"},
		{"days", 72 * time.Hour, "3 days ago", "3d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := now.Add(-tt.ago)
			if got := FormatTimeSince(at, now); got != tt.verbose {
				t.Errorf("FormatTimeSince = %q, expected %q", got, tt.verbose)
			}
			if got := FormatTimeSinceCompact(at, now); got != tt.compact {
				t.Errorf("FormatTimeSinceCompact = %q, expected %q", got, tt.compact)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"abcdef", 2, "ab"},
		{"κακκακκακ", 5, "κα..."},
	}

	for _, tt := range tests {
		if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
			t.Errorf("TruncateString(%q, %d) = %q, expected %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}

func testRecords() []*model.CheckRecord {
	return []*model.CheckRecord{
		{ID: "1", Kind: model.KindPalindrome, Name: "-121", Input: "-121", Output: "false", CheckTime: now.Add(-5 * time.Minute)},
		{ID: "2", Kind: model.KindAbs, Name: "-5", Input: "-5", Output: "5", Passed: true, CheckTime: now.Add(-2 * time.Hour)},
	}
}

func TestWriteRecordsDetailed(t *testing.T) {
	var buf bytes.Buffer
	WriteRecordsDetailed(&buf, testRecords(), now)

	out := buf.String()
	absIdx := strings.Index(out, "Kind: abs (1)")
	palIdx := strings.Index(out, "Kind: palindrome (1)")
	if absIdx < 0 || palIdx < 0 || absIdx > palIdx {
		t.Errorf("Expected kinds in sorted order, got:\n%s", out)
	}
	if !strings.Contains(out, "  - -121: -121 -> false [failed] (checked: 5 minutes ago)") {
		t.Errorf("Expected palindrome line, got:\n%s", out)
	}
	if !strings.Contains(out, "  - -5: -5 -> 5 [passed] (checked: 2.0 hours ago)") {
		t.Errorf("Expected abs line, got:\n%s", out)
	}
}

func TestWriteRecordsCompact(t *testing.T) {
	var buf bytes.Buffer
	WriteRecordsCompact(&buf, testRecords(), now)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header, rule and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "palindrome") || !strings.HasSuffix(lines[2], "5m ago") {
		t.Errorf("Unexpected first row: %q", lines[2])
	}
	if !strings.Contains(lines[3], "passed") {
		t.Errorf("Expected passed outcome in second row: %q", lines[3])
	}
}
