package decision

import (
	"math"
	"testing"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
)

func TestDecideAllYes(t *testing.T) {
	r := NewEngine(DefaultDecisionConfig()).Decide(answer.FromInts(2, 2, 2, 2, 2))
	if math.Abs(r.WeightedSum-11.6) > 1e-9 {
		t.Errorf("expected sum 11.6, got %f", r.WeightedSum)
	}
	if r.Outcome != Yes {
		t.Errorf("expected YES, got %s", r.Outcome)
	}
}

func TestDecideAllNo(t *testing.T) {
	r := NewEngine(DefaultDecisionConfig()).Decide(answer.FromInts(0, 0, 0, 0, 0))
	if r.WeightedSum != 0 {
		t.Errorf("expected sum 0, got %f", r.WeightedSum)
	}
	if r.Outcome != No {
		t.Errorf("expected NO, got %s", r.Outcome)
	}
}

func TestDecideMixed(t *testing.T) {
	r := NewEngine(DefaultDecisionConfig()).Decide(answer.FromInts(2, 1, 0, 1, 2))
	if math.Abs(r.WeightedSum-6.3) > 1e-9 {
		t.Errorf("expected sum 6.3, got %f", r.WeightedSum)
	}
	if r.Outcome != Confused {
		t.Errorf("expected Confused, got %s", r.Outcome)
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	e := NewEngine(DefaultDecisionConfig())
	v := answer.FromInts(1, 2, 1, 0, 2)
	first := e.Decide(v)
	for i := 0; i < 10; i++ {
		if got := e.Decide(v); got != first {
			t.Fatalf("run %d: expected %+v, got %+v", i, first, got)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cfg := DefaultDecisionConfig()
	cases := []struct {
		sum  float64
		want Outcome
	}{
		{8.0, Confused},
		{8.0001, Yes},
		{3.0, No},
		{3.0001, Confused},
		{-4, No},
	}
	for _, c := range cases {
		if got := Classify(c.sum, cfg); got != c.want {
			t.Errorf("Classify(%v) = %s, want %s", c.sum, got, c.want)
		}
	}
}

func TestDecideExactBoundariesWithUnitWeights(t *testing.T) {
	cfg := DefaultDecisionConfig()
	cfg.Weights = [5]float64{1, 1, 1, 1, 1}
	e := NewEngine(cfg)

	if r := e.Decide(answer.FromInts(2, 2, 2, 2, 0)); r.WeightedSum != 8 || r.Outcome != Confused {
		t.Errorf("sum 8 should be Confused, got %+v", r)
	}
	if r := e.Decide(answer.FromInts(1, 1, 1, 0, 0)); r.WeightedSum != 3 || r.Outcome != No {
		t.Errorf("sum 3 should be NO, got %+v", r)
	}
}

func TestDecideExactBoundariesWithDefaultWeights(t *testing.T) {
	e := NewEngine(DefaultDecisionConfig())

	for _, v := range [][5]int{{1, 2, 1, 1, 2}, {2, 2, 1, 1, 1}} {
		r := e.Decide(answer.FromInts(v[0], v[1], v[2], v[3], v[4]))
		if r.WeightedSum != 8 || r.Outcome != Confused {
			t.Errorf("%v: sum exactly 8 should be Confused, got %+v", v, r)
		}
	}
	for _, v := range [][5]int{{1, 0, 0, 0, 2}, {2, 0, 0, 0, 1}, {0, 0, 2, 0, 0}} {
		r := e.Decide(answer.FromInts(v[0], v[1], v[2], v[3], v[4]))
		if r.WeightedSum != 3 || r.Outcome != No {
			t.Errorf("%v: sum exactly 3 should be NO, got %+v", v, r)
		}
	}
}

func TestDecideOutOfRangeFoldsIntoSum(t *testing.T) {
	// A stray 5 on the heaviest question is enough on its own.
	r := NewEngine(DefaultDecisionConfig()).Decide(answer.FromInts(0, 0, 5, 0, 1))
	if math.Abs(r.WeightedSum-8.5) > 1e-9 {
		t.Errorf("expected sum 8.5, got %f", r.WeightedSum)
	}
	if r.Outcome != Yes {
		t.Errorf("expected YES, got %s", r.Outcome)
	}
}

func TestPackageDecideUsesDefaults(t *testing.T) {
	if Decide(2, 2, 2, 2, 2) != Yes {
		t.Error("expected YES")
	}
	if Decide(2, 1, 0, 1, 2) != Confused {
		t.Error("expected Confused")
	}
	if Decide(0, 0, 0, 0, 0) != No {
		t.Error("expected NO")
	}
}

func TestParseOutcomeRoundTrip(t *testing.T) {
	for _, o := range []Outcome{Yes, Confused, No} {
		got, err := ParseOutcome(o.String())
		if err != nil {
			t.Fatalf("ParseOutcome(%s): %v", o, err)
		}
		if got != o {
			t.Errorf("expected %s, got %s", o, got)
		}
	}
	if _, err := ParseOutcome("maybe"); err == nil {
		t.Error("expected error for unknown outcome")
	}
}

func TestOutcomeStringUnknown(t *testing.T) {
	if Outcome(7).String() != "Outcome(7)" {
		t.Errorf("unexpected string %q", Outcome(7).String())
	}
}
