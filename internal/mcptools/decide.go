package mcptools

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
	"github.com/danielpatrickdp/quantum-decision/internal/decision"
	"github.com/danielpatrickdp/quantum-decision/internal/logging"
	"github.com/danielpatrickdp/quantum-decision/internal/shell"
	"github.com/mark3labs/mcp-go/mcp"
)

// DecideTool handles the decide MCP tool.
type DecideTool struct {
	engine *decision.Engine
	db     *sql.DB // nil disables the decision log
}

// NewDecideTool creates a DecideTool. db may be nil.
func NewDecideTool(engine *decision.Engine, db *sql.DB) *DecideTool {
	return &DecideTool{engine: engine, db: db}
}

// Definition returns the MCP tool definition for decide.
func (t *DecideTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Recommend YES, Confused or NO from five answers. Each answer is 0 (NO), 1 (Confused) or 2 (YES). " +
				"Questions: q1 goal alignment, q2 outcomes considered, q3 emotional clarity, q4 reversibility, q5 time taken.",
		),
	}
	for i, q := range shell.Questions {
		opts = append(opts, mcp.WithNumber(fmt.Sprintf("q%d", i+1),
			mcp.Required(),
			mcp.Description(q),
		))
	}
	opts = append(opts, mcp.WithBoolean("lenient",
		mcp.Description("Accept integers outside 0-2 and fold them into the score (default: false)"),
	))
	return mcp.NewTool("decide", opts...)
}

// Handle processes the decide tool call.
func (t *DecideTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	strict := !boolArg(req, "lenient", false)

	var answers answer.Vector
	for i := range answers {
		a, err := answerArg(req, fmt.Sprintf("q%d", i+1), strict)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		answers[i] = a
	}

	result := t.engine.Decide(answers)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Answers: %v\n", answers.Ints()))
	sb.WriteString(fmt.Sprintf("Weighted sum: %.2f\n", result.WeightedSum))
	for _, line := range shell.Messages(result.Outcome) {
		sb.WriteString(line + "\n")
	}

	if t.db != nil {
		entry, err := logging.NewDecisionEntry("mcp", answers, result, t.engine.Config())
		if err == nil {
			var runID string
			runID, err = logging.LogDecision(t.db, entry)
			if err == nil {
				sb.WriteString(fmt.Sprintf("Run: %s\n", runID))
			}
		}
		if err != nil {
			log.Printf("decision log error: %v", err)
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}
