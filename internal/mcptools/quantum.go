package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
	"github.com/danielpatrickdp/quantum-decision/internal/quantum"
	"github.com/mark3labs/mcp-go/mcp"
)

const maxSamples = 10000

// BranchTool handles the quantum_branch MCP tool.
type BranchTool struct {
	hadamard *quantum.Hadamard
}

// NewBranchTool creates a BranchTool. The Hadamard's source must be safe for
// concurrent use; see quantum.NewLockedSource.
func NewBranchTool(h *quantum.Hadamard) *BranchTool {
	return &BranchTool{hadamard: h}
}

// Definition returns the MCP tool definition for quantum_branch.
func (t *BranchTool) Definition() mcp.Tool {
	return mcp.NewTool("quantum_branch",
		mcp.WithDescription(
			"Probabilistic relaxation of an answer toward NO, named after the Hadamard gate. "+
				"YES becomes NO 70% of the time and Confused otherwise; Confused stays 50% and becomes NO otherwise; NO stays NO.",
		),
		mcp.WithNumber("input",
			mcp.Required(),
			mcp.Description("Answer to branch: 0 (NO), 1 (Confused), 2 (YES)"),
		),
		mcp.WithNumber("samples",
			mcp.Description(fmt.Sprintf("Number of draws (default: 1, max: %d)", maxSamples)),
		),
	)
}

// Handle processes the quantum_branch tool call.
func (t *BranchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := answerArg(req, "input", true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	samples, err := intArg(req, "samples", 1)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if samples < 1 || samples > maxSamples {
		return mcp.NewToolResultError(fmt.Sprintf("'samples' must be between 1 and %d", maxSamples)), nil
	}

	if samples == 1 {
		return mcp.NewToolResultText(fmt.Sprintf("%s -> %s\n", input, t.hadamard.Apply(input))), nil
	}

	d := t.hadamard.Sample(input, samples)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s over %d samples:\n", input, d.Samples))
	for _, a := range []answer.Answer{answer.No, answer.Confused, answer.Yes} {
		sb.WriteString(fmt.Sprintf("- %s: %d (%.1f%%)\n", a, d.Counts[a], 100*d.Fraction(a)))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// NegateTool handles the conditional_negate MCP tool.
type NegateTool struct{}

// NewNegateTool creates a NegateTool.
func NewNegateTool() *NegateTool {
	return &NegateTool{}
}

// Definition returns the MCP tool definition for conditional_negate.
func (t *NegateTool) Definition() mcp.Tool {
	return mcp.NewTool("conditional_negate",
		mcp.WithDescription("CNOT-style gate: negates target when control is exactly 1, otherwise returns it unchanged."),
		mcp.WithNumber("control",
			mcp.Required(),
			mcp.Description("Control value; only 1 negates"),
		),
		mcp.WithBoolean("target",
			mcp.Required(),
			mcp.Description("Target bit"),
		),
	)
}

// Handle processes the conditional_negate tool call.
func (t *NegateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	control, ok, err := wholeArg(req, "control")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		return mcp.NewToolResultError("'control' is required and must be a number"), nil
	}
	target, ok := req.GetArguments()["target"].(bool)
	if !ok {
		return mcp.NewToolResultError("'target' is required and must be a boolean"), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("CNOT(%d, %v) = %v\n", control, target, quantum.ConditionalNegate(control, target))), nil
}
