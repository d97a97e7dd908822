package neuron

import "testing"

func TestAndSingleUpdateNeverFires(t *testing.T) {
	// One update of 1.0 leaves each neuron at 0.9, below threshold.
	if And(1, 1) {
		t.Fatal("AND(1,1) should be false under a single update")
	}
	if And(0, 0) || And(1, 0) || And(0, 1) {
		t.Fatal("AND should be false for binary inputs")
	}
}

func TestAndStrongInputsStillBlockedAtOutput(t *testing.T) {
	tr := NewGateSet(DefaultNeuronConfig()).Trace(GateAnd, 2, 2)

	if !tr.Left.Fired || !tr.Right.Fired {
		t.Fatal("inputs of 2.0 should fire both input neurons")
	}
	if tr.Drive != 1.0 {
		t.Errorf("expected drive 1.0, got %f", tr.Drive)
	}
	if !approx(tr.Out.Potential, 0.9) {
		t.Errorf("expected output potential 0.9, got %f", tr.Out.Potential)
	}
	if tr.Result {
		t.Error("output neuron cannot fire on drive 1.0 with leak 0.1")
	}
}

func TestOrDriveFollowsEitherInput(t *testing.T) {
	g := NewGateSet(DefaultNeuronConfig())

	tr := g.Trace(GateOr, 2, 0)
	if tr.Drive != 1.0 {
		t.Errorf("expected drive 1.0 when one input fires, got %f", tr.Drive)
	}
	if tr.Result {
		t.Error("OR output should not fire with default config")
	}

	tr = g.Trace(GateOr, 0, 0)
	if tr.Drive != 0 {
		t.Errorf("expected drive 0, got %f", tr.Drive)
	}
}

func TestOrFiresWithoutLeak(t *testing.T) {
	g := NewGateSet(NeuronConfig{Threshold: 1.0, LeakRate: 0, ResetPotential: 0})
	if !g.Or(1, 0) {
		t.Error("OR(1,0) should fire when there is no leak")
	}
	if g.Or(0, 0) {
		t.Error("OR(0,0) should not fire")
	}
	if !g.And(1, 1) {
		t.Error("AND(1,1) should fire when there is no leak")
	}
	if g.And(1, 0) {
		t.Error("AND(1,0) should not fire")
	}
}

func TestNandNegatesAnd(t *testing.T) {
	for _, in := range [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}} {
		if Nand(in[0], in[1]) == And(in[0], in[1]) {
			t.Errorf("NAND%v should negate AND", in)
		}
	}
	if !Nand(1, 1) {
		t.Error("NAND(1,1) should be true with default config")
	}
}

func TestNotBypassesNeuron(t *testing.T) {
	if !Not(0) {
		t.Error("NOT(0) should be true")
	}
	if Not(1) {
		t.Error("NOT(1) should be false")
	}
	if Not(0.3) {
		t.Error("NOT of any non-zero input should be false")
	}

	tr := NewGateSet(DefaultNeuronConfig()).Trace(GateNot, 0, 7)
	if tr.Out.Potential != 0 || tr.Out.Fired || tr.B != 0 {
		t.Errorf("NOT should leave neurons untouched, got %+v", tr)
	}
}

func TestGatesShareNoState(t *testing.T) {
	g := NewGateSet(NeuronConfig{Threshold: 1.0, LeakRate: 0, ResetPotential: 0})
	first := g.And(1, 1)
	second := g.And(1, 1)
	if first != second {
		t.Error("repeated gate calls should be independent")
	}
}

func TestParseGateKind(t *testing.T) {
	k, err := ParseGateKind(" NAND ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k != GateNand {
		t.Errorf("expected nand, got %s", k)
	}
	if _, err := ParseGateKind("xor"); err == nil {
		t.Error("expected error for unknown gate")
	}
}
