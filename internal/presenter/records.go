// Package presenter renders check records for terminal output.
package presenter

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/mrled/suns/numcheck/internal/model"
)

// WriteRecordsDetailed writes records grouped by kind, one block per kind
func WriteRecordsDetailed(w io.Writer, records []*model.CheckRecord, now time.Time) {
	fmt.Fprintln(w, "=== Check Records ===")

	grouped := model.GroupByKind(records)
	kinds := make([]string, 0, len(grouped))
	for kind := range grouped {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		kindRecords := grouped[model.CheckKind(kind)]
		fmt.Fprintf(w, "\nKind: %s (%d)\n", kind, len(kindRecords))

		for _, record := range kindRecords {
			fmt.Fprintf(w, "  - %s: %s -> %s [%s] (checked: %s)\n",
				displayName(record),
				record.Input,
				record.Output,
				model.OutcomeOf(record),
				FormatTimeSince(record.CheckTime, now))
		}
	}
}

// WriteRecordsCompact writes records as a fixed-width table
func WriteRecordsCompact(w io.Writer, records []*model.CheckRecord, now time.Time) {
	fmt.Fprintf(w, "%-12s %-20s %-20s %-30s %-8s %s\n", "Kind", "Name", "Input", "Output", "Outcome", "Checked")
	fmt.Fprintln(w, strings.Repeat("-", 104))

	for _, record := range records {
		fmt.Fprintf(w, "%-12s %-20s %-20s %-30s %-8s %s\n",
			record.Kind,
			TruncateString(displayName(record), 20),
			TruncateString(record.Input, 20),
			TruncateString(record.Output, 30),
			model.OutcomeOf(record),
			FormatTimeSinceCompact(record.CheckTime, now))
	}
}

func displayName(record *model.CheckRecord) string {
	if record.Name == "" {
		return "(unnamed)"
	}
	return record.Name
}

// TruncateString shortens s to at most maxLen runes, ending in "..." when cut
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
