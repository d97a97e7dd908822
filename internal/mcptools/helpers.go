// Package mcptools exposes the decision engine and the neuron and quantum
// gates as MCP tools.
//
// Each tool follows the same shape:
// - a struct holding its dependencies, injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() validates arguments and returns a text result
//
// Argument problems are reported as tool errors, never as Go errors.
package mcptools

import (
	"fmt"
	"math"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
	"github.com/mark3labs/mcp-go/mcp"
)

// floatArg extracts a number argument. ok is false when the key is missing
// or not a number (JSON numbers are float64).
func floatArg(req mcp.CallToolRequest, key string) (float64, bool) {
	v, ok := req.GetArguments()[key].(float64)
	return v, ok
}

// wholeArg reads a whole-number argument within the int32 range. ok is false
// when the key is missing or not a number.
func wholeArg(req mcp.CallToolRequest, key string) (n int, ok bool, err error) {
	v, ok := floatArg(req, key)
	if !ok {
		return 0, false, nil
	}
	if v != math.Trunc(v) {
		return 0, true, fmt.Errorf("'%s' must be a whole number, got %v", key, v)
	}
	if math.Abs(v) > math.MaxInt32 {
		return 0, true, fmt.Errorf("'%s' is out of range, got %v", key, v)
	}
	return int(v), true, nil
}

// intArg extracts an integer argument, returning defaultVal if the key is missing.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) (int, error) {
	n, ok, err := wholeArg(req, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return defaultVal, nil
	}
	return n, nil
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// answerArg reads a required whole-number answer. When strict, only 0, 1 and 2 pass.
func answerArg(req mcp.CallToolRequest, key string, strict bool) (answer.Answer, error) {
	n, ok, err := wholeArg(req, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("'%s' is required and must be a number", key)
	}
	a := answer.Answer(n)
	if strict && !a.Valid() {
		return 0, fmt.Errorf("'%s' must be 0 (NO), 1 (Confused) or 2 (YES), got %d", key, n)
	}
	return a, nil
}
