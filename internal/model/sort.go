package model

import (
	"fmt"
	"sort"
	"strings"
)

// SortBy specifies the field and order for sorting check records
type SortBy string

const (
	SortByTime    SortBy = "time"
	SortByKind    SortBy = "kind"
	SortByName    SortBy = "name"
	SortByDefault SortBy = "" // kind, then ID
)

// ParseSortBy accepts "", "time", "kind" or "name"
func ParseSortBy(s string) (SortBy, error) {
	switch sortBy := SortBy(strings.ToLower(s)); sortBy {
	case SortByDefault, SortByTime, SortByKind, SortByName:
		return sortBy, nil
	default:
		return SortByDefault, fmt.Errorf("invalid sort field %q (expected time, kind or name)", s)
	}
}

// SortRecords sorts records in place.
// Unrecognized values fall back to the default ordering.
func SortRecords(records []*CheckRecord, sortBy string) {
	switch SortBy(sortBy) {
	case SortByTime:
		// newest first
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CheckTime.After(records[j].CheckTime)
		})
	case SortByKind:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Kind < records[j].Kind
		})
	case SortByName:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Name < records[j].Name
		})
	default:
		sort.Slice(records, func(i, j int) bool {
			if records[i].Kind != records[j].Kind {
				return records[i].Kind < records[j].Kind
			}
			return records[i].ID < records[j].ID
		})
	}
}
