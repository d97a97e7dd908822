package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/quantum-decision/internal/decision"
	"github.com/danielpatrickdp/quantum-decision/internal/replay"
)

var replayFixture string

// ReplayCmd re-decides recorded runs or a JSON fixture.
var ReplayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-decide recorded runs and report drift",
	Long: `Replay every run in the decision log through the current weights and thresholds,
or replay a JSON fixture with --fixture. Exits non-zero when any outcome differs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, cfg, err := loadReplayCases()
		if err != nil {
			return err
		}
		summary := runReplay(cmd.OutOrStdout(), cases, decision.NewEngine(cfg))
		if summary.Drifts > 0 {
			return fmt.Errorf("replay: %d of %d cases drifted", summary.Drifts, summary.TotalCases)
		}
		return nil
	},
}

func init() {
	ReplayCmd.Flags().StringVarP(&replayFixture, "fixture", "f", "", "path to a replay fixture JSON file")
}

func loadReplayCases() ([]replay.Case, decision.DecisionConfig, error) {
	if replayFixture != "" {
		f, err := replay.LoadFixture(replayFixture)
		if err != nil {
			return nil, decision.DecisionConfig{}, err
		}
		cfg, err := f.ToDecisionConfig()
		if err != nil {
			return nil, decision.DecisionConfig{}, err
		}
		cases, err := f.ToCases()
		return cases, cfg, err
	}

	st, err := openStore()
	if err != nil {
		return nil, decision.DecisionConfig{}, err
	}
	defer st.Close()

	runs, err := st.ListRuns(0)
	if err != nil {
		return nil, decision.DecisionConfig{}, err
	}
	return replay.CasesFromRuns(runs), decision.DefaultDecisionConfig(), nil
}

func runReplay(out io.Writer, cases []replay.Case, engine *decision.Engine) replay.ReplaySummary {
	results := replay.Replay(cases, engine)
	for _, r := range results {
		status := "ok"
		if !r.Match {
			status = "DRIFT"
		}
		fmt.Fprintf(out, "%-5s %-12s %v  %s\n", status, shortID(r.ID), r.Answers.Ints(), r.Reason)
	}

	summary := replay.Summarize(results)
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintf(out, "Cases: %d  Matches: %d  Drifts: %d\n", summary.TotalCases, summary.Matches, summary.Drifts)
	return summary
}
