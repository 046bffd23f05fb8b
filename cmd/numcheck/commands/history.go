package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/mrled/suns/numcheck/internal/model"
	"github.com/mrled/suns/numcheck/internal/presenter"
	"github.com/mrled/suns/numcheck/internal/repository"
	"github.com/spf13/cobra"
)

// Output formats accepted by history --format
const (
	formatDetailed = "detailed"
	formatCompact  = "compact"
)

func newHistoryCmd(a *app) *cobra.Command {
	var flags struct {
		PersistenceFlags
		Kinds   []string
		Names   []string
		Outcome string
		Format  string
		SortBy  string
	}

	cmd := &cobra.Command{
		Use:     "history",
		Short:   "Show recorded checks",
		GroupID: "history",
		Long: `Display check records stored by earlier runs with --file or --dynamodb-table.

Examples:
  # Show all records
  numcheck history --file ./checks.json

  # Show failed assertions
  numcheck history --file ./checks.json --kind assert --outcome failed

  # Newest first, as a table
  numcheck history --file ./checks.json --sort time --format compact`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg := flags.RepositoryConfig()
			if !cfg.IsPersistent() {
				return &UsageError{errors.New("history needs --file or --dynamodb-table")}
			}

			filter := model.RecordFilter{Names: flags.Names}
			for _, k := range flags.Kinds {
				kind, err := model.ParseCheckKind(k)
				if err != nil {
					return &UsageError{err}
				}
				filter.Kinds = append(filter.Kinds, kind)
			}
			outcome, err := model.ParseOutcome(flags.Outcome)
			if err != nil {
				return &UsageError{err}
			}
			filter.Outcome = outcome

			sortBy, err := model.ParseSortBy(flags.SortBy)
			if err != nil {
				return &UsageError{err}
			}
			switch flags.Format {
			case formatDetailed, formatCompact:
			default:
				return &UsageError{fmt.Errorf("invalid format %q (expected %s or %s)", flags.Format, formatDetailed, formatCompact)}
			}

			repo, err := repository.NewRepository(ctx, cfg)
			if err != nil {
				return err
			}

			allRecords, err := repo.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			records := model.FilterRecords(allRecords, filter)
			model.SortRecords(records, string(sortBy))

			if len(records) == 0 {
				fmt.Fprintln(out, "No records found matching the specified criteria.")
				return nil
			}

			now := time.Now()
			if flags.Format == formatCompact {
				presenter.WriteRecordsCompact(out, records, now)
			} else {
				presenter.WriteRecordsDetailed(out, records, now)
			}

			fmt.Fprintf(out, "\nTotal records: %d\n", len(records))
			a.log.Debug("History listed", "total", len(allRecords), "shown", len(records))
			return nil
		},
	}

	addPersistenceFlags(cmd, &flags.PersistenceFlags)
	cmd.Flags().StringSliceVarP(&flags.Kinds, "kind", "k", nil, "Filter by check kind: abs, palindrome or assert (repeatable)")
	cmd.Flags().StringSliceVarP(&flags.Names, "name", "n", nil, "Filter by check name (repeatable)")
	cmd.Flags().StringVar(&flags.Outcome, "outcome", "", "Filter by outcome: passed or failed")
	cmd.Flags().StringVar(&flags.Format, "format", formatDetailed, "Output format: detailed or compact")
	cmd.Flags().StringVar(&flags.SortBy, "sort", "", "Sort by: time, kind or name (default kind, then ID)")
	return cmd
}
