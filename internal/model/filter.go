package model

import (
	"fmt"
	"strings"
)

// Outcome selects records by their Passed flag
type Outcome string

const (
	OutcomeAny    Outcome = ""
	OutcomePassed Outcome = "passed"
	OutcomeFailed Outcome = "failed"
)

// OutcomeOf returns OutcomePassed or OutcomeFailed for a record
func OutcomeOf(record *CheckRecord) Outcome {
	if record.Passed {
		return OutcomePassed
	}
	return OutcomeFailed
}

// ParseOutcome accepts "", "any", "passed" or "failed"
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(strings.ToLower(s)) {
	case OutcomeAny, "any":
		return OutcomeAny, nil
	case OutcomePassed:
		return OutcomePassed, nil
	case OutcomeFailed:
		return OutcomeFailed, nil
	default:
		return OutcomeAny, fmt.Errorf("invalid outcome %q (expected passed, failed or any)", s)
	}
}

// RecordFilter contains criteria for filtering check records.
// All criteria are optional; only non-empty fields are applied.
// Within each slice, values are combined with OR logic.
// Between fields, criteria are combined with AND logic.
type RecordFilter struct {
	// Kinds filters by check kind (OR within list)
	Kinds []CheckKind

	// Names filters by check name (case-insensitive, OR within list)
	Names []string

	// Outcome filters by pass/fail
	Outcome Outcome
}

// FilterRecords returns the records that match the filter.
// An empty filter returns the input unchanged.
func FilterRecords(records []*CheckRecord, filter RecordFilter) []*CheckRecord {
	if len(filter.Kinds) == 0 && len(filter.Names) == 0 && filter.Outcome == OutcomeAny {
		return records
	}

	kindMap := make(map[CheckKind]bool)
	for _, kind := range filter.Kinds {
		kindMap[kind] = true
	}

	nameMap := make(map[string]bool)
	for _, name := range filter.Names {
		nameMap[strings.ToLower(name)] = true
	}

	var filtered []*CheckRecord

	for _, record := range records {
		if len(filter.Kinds) > 0 && !kindMap[record.Kind] {
			continue
		}

		if len(filter.Names) > 0 && !nameMap[strings.ToLower(record.Name)] {
			continue
		}

		switch filter.Outcome {
		case OutcomePassed:
			if !record.Passed {
				continue
			}
		case OutcomeFailed:
			if record.Passed {
				continue
			}
		}

		filtered = append(filtered, record)
	}

	return filtered
}
