package commands

import (
	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/quantum-decision/internal/decision"
	"github.com/danielpatrickdp/quantum-decision/internal/neuron"
	"github.com/danielpatrickdp/quantum-decision/internal/quantum"
	"github.com/danielpatrickdp/quantum-decision/internal/server"
)

// ServeCmd runs the MCP tool server over stdio.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP tool server (stdio transport)",
	Long: `Serve the decide, lif_gate, quantum_branch and conditional_negate tools over
stdin/stdout for MCP clients. Diagnostics go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		s := server.New(server.Deps{
			Engine: decision.NewEngine(decision.DefaultDecisionConfig()),
			Gates:  neuron.NewGateSet(neuron.DefaultNeuronConfig()),
			Branch: quantum.DefaultBranchConfig(),
			Source: newSource(),
			DB:     st.DB(),
		})
		return server.Serve(s)
	},
}
