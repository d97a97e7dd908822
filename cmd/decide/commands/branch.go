package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
	"github.com/danielpatrickdp/quantum-decision/internal/quantum"
)

var (
	branchInput   int
	branchSamples int
)

// BranchCmd samples the probabilistic branch gate.
var BranchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Sample the Hadamard-style branch gate",
	Long: `Apply the probabilistic branch to one answer many times and print where it lands.
YES relaxes to NO 70% of the time, Confused holds 50% of the time, NO stays NO.
Use --seed for a reproducible run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := answer.Answer(branchInput)
		if !input.Valid() {
			return fmt.Errorf("--input must be 0, 1 or 2, got %d", branchInput)
		}
		if branchSamples < 1 {
			return fmt.Errorf("--samples must be positive, got %d", branchSamples)
		}
		h := quantum.NewHadamard(quantum.DefaultBranchConfig(), newSource())
		return writeDistribution(cmd.OutOrStdout(), h.Sample(input, branchSamples))
	},
}

func init() {
	BranchCmd.Flags().IntVarP(&branchInput, "input", "i", int(answer.Yes), "answer to branch (0 NO, 1 Confused, 2 YES)")
	BranchCmd.Flags().IntVarP(&branchSamples, "samples", "n", 1000, "number of draws")
}

func writeDistribution(w io.Writer, d quantum.Distribution) error {
	if _, err := fmt.Fprintf(w, "%s over %d samples:\n", d.Input, d.Samples); err != nil {
		return err
	}
	for _, a := range []answer.Answer{answer.No, answer.Confused, answer.Yes} {
		if _, err := fmt.Fprintf(w, "  %-8s %6d  %5.1f%%\n", a, d.Counts[a], 100*d.Fraction(a)); err != nil {
			return err
		}
	}
	return nil
}
