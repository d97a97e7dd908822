// Command decide asks five questions and recommends YES, Confused or NO.
//
// Usage:
//
//	decide                 # interactive session (same as "decide ask")
//	decide gates --trace   # LIF gate truth tables
//	decide branch -i 2     # sample the probabilistic branch
//	decide history         # recorded runs (needs --db or $DECISION_DB)
//	decide replay          # re-decide recorded runs with the current config
//	decide serve           # MCP tool server over stdio
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/quantum-decision/cmd/decide/commands"
	"github.com/danielpatrickdp/quantum-decision/internal/server"
	"github.com/danielpatrickdp/quantum-decision/internal/store"
)

// #region main
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "decide",
	Short: "Weighted five-question decision helper",
	Long: `decide asks five yes/confused/no questions, scores the answers with fixed
weights and recommends YES, Confused or NO.

It also ships two standalone demonstrations that never affect the recommendation:
  - boolean gates built from leaky integrate-and-fire neurons
  - a Hadamard-style probabilistic branch and a CNOT-style negation`,
	Version:       server.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          commands.AskCmd.RunE,
}

// #endregion main

// #region flags
func init() {
	rootCmd.PersistentFlags().StringVar(&commands.DBPath, "db", envOr("DECISION_DB", store.MemoryDSN),
		"decision log database (default keeps it in memory; env DECISION_DB)")
	rootCmd.PersistentFlags().Uint64Var(&commands.Seed, "seed", 0, "random seed for the branch gate (0 = clock)")

	// bare "decide" behaves like "decide ask"
	commands.BindAskFlags(rootCmd)

	rootCmd.AddCommand(commands.AskCmd)
	rootCmd.AddCommand(commands.GatesCmd)
	rootCmd.AddCommand(commands.BranchCmd)
	rootCmd.AddCommand(commands.HistoryCmd)
	rootCmd.AddCommand(commands.ReplayCmd)
	rootCmd.AddCommand(commands.ServeCmd)
}

// #endregion flags

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
