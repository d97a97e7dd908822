package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/quantum-decision/internal/neuron"
	"github.com/danielpatrickdp/quantum-decision/internal/quantum"
)

var gatesTrace bool

// GatesCmd prints truth tables for the neuron gates and the CNOT gate.
var GatesCmd = &cobra.Command{
	Use:   "gates",
	Short: "Truth tables for the LIF neuron gates",
	Long: `Evaluate AND, OR, NAND and NOT over binary inputs, plus the CNOT-style
conditional negation. Each gate input drives a fresh neuron for one step, so
with the default leak the output neuron never reaches threshold.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeGateTable(cmd.OutOrStdout(), neuron.NewGateSet(neuron.DefaultNeuronConfig()), gatesTrace)
	},
}

func init() {
	GatesCmd.Flags().BoolVarP(&gatesTrace, "trace", "t", false, "show neuron potentials")
}

func writeGateTable(out io.Writer, gates *neuron.GateSet, trace bool) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if trace {
		fmt.Fprintln(w, "GATE\tA\tB\tLEFT\tRIGHT\tDRIVE\tOUT\tRESULT")
	} else {
		fmt.Fprintln(w, "GATE\tA\tB\tRESULT")
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))

	for _, kind := range neuron.GateKinds {
		for _, in := range binaryPairs(kind) {
			tr := gates.Trace(kind, in[0], in[1])
			b := fmt.Sprintf("%g", in[1])
			if kind == neuron.GateNot {
				b = "-"
			}
			if trace {
				fmt.Fprintf(w, "%s\t%g\t%s\t%.2f\t%.2f\t%.1f\t%.2f\t%v\n",
					strings.ToUpper(string(kind)), in[0], b,
					tr.Left.Potential, tr.Right.Potential, tr.Drive, tr.Out.Potential, tr.Result)
			} else {
				fmt.Fprintf(w, "%s\t%g\t%s\t%v\n", strings.ToUpper(string(kind)), in[0], b, tr.Result)
			}
		}
	}

	for _, control := range []int{0, 1} {
		for _, target := range []bool{false, true} {
			if trace {
				fmt.Fprintf(w, "CNOT\t%d\t%v\t-\t-\t-\t-\t%v\n", control, target, quantum.ConditionalNegate(control, target))
			} else {
				fmt.Fprintf(w, "CNOT\t%d\t%v\t%v\n", control, target, quantum.ConditionalNegate(control, target))
			}
		}
	}
	return w.Flush()
}

func binaryPairs(kind neuron.GateKind) [][2]float64 {
	if kind == neuron.GateNot {
		return [][2]float64{{0, 0}, {1, 0}}
	}
	return [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
}
