package server

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/danielpatrickdp/quantum-decision/internal/decision"
	"github.com/danielpatrickdp/quantum-decision/internal/neuron"
	"github.com/danielpatrickdp/quantum-decision/internal/quantum"
	"github.com/mark3labs/mcp-go/server"
)

func newTestServer() *server.MCPServer {
	return New(Deps{
		Engine: decision.NewEngine(decision.DefaultDecisionConfig()),
		Gates:  neuron.NewGateSet(neuron.DefaultNeuronConfig()),
		Branch: quantum.DefaultBranchConfig(),
		Source: rand.New(rand.NewPCG(1, 1)),
	})
}

func TestNewListsAllTools(t *testing.T) {
	s := newTestServer()

	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	for _, name := range []string{"decide", "lif_gate", "quantum_branch", "conditional_negate"} {
		if !strings.Contains(string(raw), `"`+name+`"`) {
			t.Errorf("tools/list missing %q: %s", name, raw)
		}
	}
}

func TestNewCallsDecide(t *testing.T) {
	s := newTestServer()

	msg := `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"decide","arguments":{"q1":0,"q2":0,"q3":0,"q4":0,"q5":0}}}`
	raw, err := json.Marshal(s.HandleMessage(context.Background(), json.RawMessage(msg)))
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	if !strings.Contains(string(raw), "Recommended decision: NO") {
		t.Errorf("expected NO recommendation, got %s", raw)
	}
}
