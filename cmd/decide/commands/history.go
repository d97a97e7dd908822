package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/quantum-decision/internal/store"
)

var (
	historyLast int
	historyJSON bool
)

// HistoryCmd lists recorded decision runs.
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded decisions",
	Long: `List the most recent decisions from the decision log, newest first.
The log only survives the process when --db (or DECISION_DB) names a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.ListRuns(historyLast)
		if err != nil {
			return err
		}
		counts, err := st.CountByOutcome()
		if err != nil {
			return err
		}
		return writeHistory(cmd.OutOrStdout(), runs, counts, historyJSON)
	},
}

func init() {
	HistoryCmd.Flags().IntVarP(&historyLast, "last", "l", 20, "show N most recent runs (0 = all)")
	HistoryCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON instead of table")
}

type historyRow struct {
	RunID       string  `json:"run_id"`
	Trigger     string  `json:"trigger"`
	Answers     []int   `json:"answers"`
	WeightedSum float64 `json:"weighted_sum"`
	Outcome     string  `json:"outcome"`
	CreatedAt   string  `json:"created_at"`
}

func writeHistory(out io.Writer, runs []store.RunRecord, counts []store.OutcomeCount, jsonOut bool) error {
	rows := make([]historyRow, len(runs))
	for i, r := range runs {
		rows[i] = historyRow{
			RunID:       r.RunID,
			Trigger:     r.TriggerType,
			Answers:     r.Answers.Ints(),
			WeightedSum: r.WeightedSum,
			Outcome:     r.Outcome,
			CreatedAt:   r.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(out, rows)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "no decisions recorded")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tTRIGGER\tANSWERS\tSUM\tOUTCOME\tTIME")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%v\t%.2f\t%s\t%s\n", shortID(r.RunID), r.Trigger, r.Answers, r.WeightedSum, r.Outcome, r.CreatedAt)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s=%d", c.Outcome, c.Count)
	}
	_, err := fmt.Fprintf(out, "\nTotals: %s\n", strings.Join(parts, " "))
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
