package neuron

import (
	"fmt"
	"strings"
)

// #region gate-set
// GateSet evaluates boolean gates built from fresh neurons.
// It holds no neuron state between calls.
type GateSet struct {
	config NeuronConfig
}

// NewGateSet creates a gate set with the given neuron configuration.
func NewGateSet(config NeuronConfig) *GateSet {
	return &GateSet{config: config}
}

// Config returns the neuron configuration the gates use.
func (g *GateSet) Config() NeuronConfig {
	return g.config
}

// Trace evaluates one gate and returns every neuron involved.
// b is ignored for GateNot.
func (g *GateSet) Trace(kind GateKind, a, b float64) GateTrace {
	switch kind {
	case GateAnd:
		return g.fire(kind, a, b, func(l, r bool) bool { return l && r })
	case GateOr:
		return g.fire(kind, a, b, func(l, r bool) bool { return l || r })
	case GateNand:
		tr := g.fire(kind, a, b, func(l, r bool) bool { return l && r })
		tr.Result = !tr.Result
		return tr
	default:
		// NOT never touches a neuron: it negates the raw input.
		return GateTrace{Kind: GateNot, A: a, Result: a == 0}
	}
}

// And fires only if both input neurons fire and the output neuron then fires.
func (g *GateSet) And(a, b float64) bool { return g.Trace(GateAnd, a, b).Result }

// Or drives the output neuron when either input neuron fires.
func (g *GateSet) Or(a, b float64) bool { return g.Trace(GateOr, a, b).Result }

// Nand is the negation of And.
func (g *GateSet) Nand(a, b float64) bool { return g.Trace(GateNand, a, b).Result }

// Not reports whether a is zero.
func (g *GateSet) Not(a float64) bool { return g.Trace(GateNot, a, 0).Result }

func (g *GateSet) fire(kind GateKind, a, b float64, combine func(l, r bool) bool) GateTrace {
	left, right, out := NewNeuron(), NewNeuron(), NewNeuron()
	left.Update(a, g.config)
	right.Update(b, g.config)

	drive := 0.0
	if combine(left.Fired, right.Fired) {
		drive = 1.0
	}
	out.Update(drive, g.config)

	return GateTrace{
		Kind:   kind,
		A:      a,
		B:      b,
		Left:   left,
		Right:  right,
		Drive:  drive,
		Out:    out,
		Result: out.Fired,
	}
}

// #endregion gate-set

// #region defaults
var defaultGates = NewGateSet(DefaultNeuronConfig())

// And evaluates the AND gate with the default neuron configuration.
func And(a, b float64) bool { return defaultGates.And(a, b) }

// Or evaluates the OR gate with the default neuron configuration.
func Or(a, b float64) bool { return defaultGates.Or(a, b) }

// Nand evaluates the NAND gate with the default neuron configuration.
func Nand(a, b float64) bool { return defaultGates.Nand(a, b) }

// Not negates the raw input.
func Not(a float64) bool { return defaultGates.Not(a) }

// #endregion defaults

// #region parse
// ParseGateKind maps a gate name to its kind, ignoring case.
func ParseGateKind(s string) (GateKind, error) {
	k := GateKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range GateKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown gate %q", s)
}

// #endregion parse
