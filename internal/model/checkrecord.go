package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// CheckKind identifies which check produced a record
type CheckKind string

const (
	KindAbs        CheckKind = "abs"
	KindPalindrome CheckKind = "palindrome"
	KindAssert     CheckKind = "assert"
)

var validKinds = map[CheckKind]bool{
	KindAbs:        true,
	KindPalindrome: true,
	KindAssert:     true,
}

// ParseCheckKind converts a case-insensitive kind name into a CheckKind
func ParseCheckKind(name string) (CheckKind, error) {
	kind := CheckKind(strings.ToLower(strings.TrimSpace(name)))
	if !validKinds[kind] {
		return "", fmt.Errorf("invalid check kind %q. %s", name, ValidCheckKindsText())
	}
	return kind, nil
}

// ValidCheckKindsText returns a human-readable list of the accepted kinds
func ValidCheckKindsText() string {
	kinds := make([]string, 0, len(validKinds))
	for kind := range validKinds {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	return "Valid kinds: " + strings.Join(kinds, ", ")
}

// CheckRecord is one evaluated check.
// Input and Output hold the rendered argument(s) and result.
// For palindrome checks Passed is the check result; abs checks always pass.
type CheckRecord struct {
	ID        string
	Kind      CheckKind
	Name      string
	Input     string
	Output    string
	Passed    bool
	CheckTime time.Time
}

// GroupByKind groups records by their check kind
func GroupByKind(records []*CheckRecord) map[CheckKind][]*CheckRecord {
	grouped := make(map[CheckKind][]*CheckRecord)
	for _, record := range records {
		grouped[record.Kind] = append(grouped[record.Kind], record)
	}
	return grouped
}
