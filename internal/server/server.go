// Package server wires the MCP tools and creates the server instance.
// No decision logic lives here, only wiring.
package server

import (
	"database/sql"

	"github.com/danielpatrickdp/quantum-decision/internal/decision"
	"github.com/danielpatrickdp/quantum-decision/internal/mcptools"
	"github.com/danielpatrickdp/quantum-decision/internal/neuron"
	"github.com/danielpatrickdp/quantum-decision/internal/quantum"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Deps carries everything the tools need.
type Deps struct {
	Engine *decision.Engine
	Gates  *neuron.GateSet
	Branch quantum.BranchConfig
	Source quantum.Source // wrapped with quantum.NewLockedSource by New
	DB     *sql.DB        // nil disables the decision log
}

// New creates the MCP server with every tool registered.
func New(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"quantum-decision",
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	decideTool := mcptools.NewDecideTool(deps.Engine, deps.DB)
	s.AddTool(decideTool.Definition(), decideTool.Handle)

	gateTool := mcptools.NewGateTool(deps.Gates)
	s.AddTool(gateTool.Definition(), gateTool.Handle)

	hadamard := quantum.NewHadamard(deps.Branch, quantum.NewLockedSource(deps.Source))
	branchTool := mcptools.NewBranchTool(hadamard)
	s.AddTool(branchTool.Definition(), branchTool.Handle)

	negateTool := mcptools.NewNegateTool()
	s.AddTool(negateTool.Definition(), negateTool.Handle)

	return s
}

// Serve runs the server over stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

const instructions = `Decision helper. Call "decide" with five answers (0 NO, 1 Confused, 2 YES) to get a recommendation.
"lif_gate", "quantum_branch" and "conditional_negate" are standalone demonstrations and do not affect "decide".`
