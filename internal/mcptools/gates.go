package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielpatrickdp/quantum-decision/internal/neuron"
	"github.com/mark3labs/mcp-go/mcp"
)

// GateTool handles the lif_gate MCP tool.
type GateTool struct {
	gates *neuron.GateSet
}

// NewGateTool creates a GateTool.
func NewGateTool(gates *neuron.GateSet) *GateTool {
	return &GateTool{gates: gates}
}

// Definition returns the MCP tool definition for lif_gate.
func (t *GateTool) Definition() mcp.Tool {
	return mcp.NewTool("lif_gate",
		mcp.WithDescription(
			"Evaluate a boolean gate built from leaky integrate-and-fire neurons. "+
				"Each input drives one neuron for a single step; NOT negates the raw input directly.",
		),
		mcp.WithString("gate",
			mcp.Required(),
			mcp.Description("Gate to evaluate: and, or, nand, not"),
			mcp.Enum("and", "or", "nand", "not"),
		),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First input drive"),
		),
		mcp.WithNumber("b",
			mcp.Description("Second input drive (ignored by not, default: 0)"),
		),
		mcp.WithBoolean("trace",
			mcp.Description("Include neuron potentials in the result (default: false)"),
		),
	)
}

// Handle processes the lif_gate tool call.
func (t *GateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := neuron.ParseGateKind(req.GetString("gate", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	a, ok := floatArg(req, "a")
	if !ok {
		return mcp.NewToolResultError("'a' is required and must be a number"), nil
	}
	b, _ := floatArg(req, "b")

	tr := t.gates.Trace(kind, a, b)

	var sb strings.Builder
	if kind == neuron.GateNot {
		sb.WriteString(fmt.Sprintf("NOT(%g) = %v\n", a, tr.Result))
	} else {
		sb.WriteString(fmt.Sprintf("%s(%g, %g) = %v\n", strings.ToUpper(string(kind)), a, b, tr.Result))
	}
	if boolArg(req, "trace", false) && kind != neuron.GateNot {
		sb.WriteString(formatTrace(tr))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatTrace(tr neuron.GateTrace) string {
	return fmt.Sprintf("left:  potential=%.4f fired=%v\nright: potential=%.4f fired=%v\nout:   drive=%.1f potential=%.4f fired=%v\n",
		tr.Left.Potential, tr.Left.Fired,
		tr.Right.Potential, tr.Right.Fired,
		tr.Drive, tr.Out.Potential, tr.Out.Fired,
	)
}
