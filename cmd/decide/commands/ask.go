package commands

import (
	"database/sql"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/quantum-decision/internal/decision"
	"github.com/danielpatrickdp/quantum-decision/internal/logging"
	"github.com/danielpatrickdp/quantum-decision/internal/shell"
)

var (
	askLenient     bool
	askMaxAttempts int
)

// AskCmd runs the interactive five-question session.
var AskCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer five questions and get a recommendation",
	Long: `Ask the five fixed questions. Answer each with 0 (NO), 1 (Confused) or 2 (YES).

Invalid answers are re-prompted. With --lenient any integer is accepted and
folded into the weighted score unchanged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		cfg := shell.DefaultShellConfig()
		cfg.Strict = !askLenient
		cfg.MaxAttempts = askMaxAttempts

		engine := decision.NewEngine(decision.DefaultDecisionConfig())
		_, err = runAsk(cmd.InOrStdin(), cmd.OutOrStdout(), engine, st.DB(), cfg)
		return err
	},
}

// BindAskFlags registers the ask flags on cmd.
func BindAskFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&askLenient, "lenient", false, "accept any integer answer without range checks")
	cmd.Flags().IntVar(&askMaxAttempts, "max-attempts", shell.DefaultShellConfig().MaxAttempts, "tries per question (0 = unlimited)")
}

func init() {
	BindAskFlags(AskCmd)
}

// runAsk collects answers, prints the recommendation and records the run.
// A failed log write is reported but does not fail the session.
func runAsk(in io.Reader, out io.Writer, engine *decision.Engine, db *sql.DB, cfg shell.ShellConfig) (decision.Result, error) {
	sh := shell.New(in, out, cfg)
	answers, err := sh.Collect()
	if err != nil {
		return decision.Result{}, err
	}

	result := engine.Decide(answers)
	if err := sh.Report(result.Outcome); err != nil {
		return result, err
	}

	entry, err := logging.NewDecisionEntry("cli", answers, result, engine.Config())
	if err == nil {
		_, err = logging.LogDecision(db, entry)
	}
	if err != nil {
		log.Printf("decision log error: %v", err)
	}
	return result, nil
}
