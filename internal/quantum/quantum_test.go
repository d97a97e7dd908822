package quantum

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
)

// fixedSource replays a fixed sequence of draws and counts how many were taken.
type fixedSource struct {
	vals  []float64
	drawn int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.drawn%len(f.vals)]
	f.drawn++
	return v
}

func TestBranchYes(t *testing.T) {
	cfg := DefaultBranchConfig()

	if got := Branch(answer.Yes, &fixedSource{vals: []float64{0.5}}, cfg); got != answer.No {
		t.Errorf("p=0.5 < 0.7 should collapse Yes to No, got %v", got)
	}
	if got := Branch(answer.Yes, &fixedSource{vals: []float64{0.9}}, cfg); got != answer.Confused {
		t.Errorf("p=0.9 should move Yes to Confused, got %v", got)
	}
	if got := Branch(answer.Yes, &fixedSource{vals: []float64{0.7}}, cfg); got != answer.Confused {
		t.Errorf("p=0.7 is not below 0.7, expected Confused, got %v", got)
	}
}

func TestBranchConfused(t *testing.T) {
	cfg := DefaultBranchConfig()

	if got := Branch(answer.Confused, &fixedSource{vals: []float64{0.49}}, cfg); got != answer.Confused {
		t.Errorf("p=0.49 should hold Confused, got %v", got)
	}
	if got := Branch(answer.Confused, &fixedSource{vals: []float64{0.5}}, cfg); got != answer.No {
		t.Errorf("p=0.5 is not below 0.5, expected No, got %v", got)
	}
	if got := Branch(answer.Confused, &fixedSource{vals: []float64{0.9}}, cfg); got != answer.No {
		t.Errorf("p=0.9 should relax Confused to No, got %v", got)
	}
}

func TestBranchNoStaysNo(t *testing.T) {
	src := &fixedSource{vals: []float64{0.1}}
	if got := Branch(answer.No, src, DefaultBranchConfig()); got != answer.No {
		t.Errorf("No should stay No, got %v", got)
	}
	if got := Branch(answer.Answer(9), src, DefaultBranchConfig()); got != answer.No {
		t.Errorf("out-of-range input should map to No, got %v", got)
	}
	if src.drawn != 2 {
		t.Errorf("expected one draw per call, drew %d", src.drawn)
	}
}

func TestBranchNoConsumesItsDraw(t *testing.T) {
	src := &fixedSource{vals: []float64{0.5, 0.9}}
	cfg := DefaultBranchConfig()

	if got := Branch(answer.No, src, cfg); got != answer.No {
		t.Errorf("No should stay No, got %v", got)
	}
	// 0.5 went to the No call, so Yes sees 0.9
	if got := Branch(answer.Yes, src, cfg); got != answer.Confused {
		t.Errorf("Yes after No should see 0.9 and move to Confused, got %v", got)
	}
	if src.drawn != 2 {
		t.Errorf("expected 2 draws, got %d", src.drawn)
	}
}

func TestBranchDrawsOncePerCall(t *testing.T) {
	src := &fixedSource{vals: []float64{0.5, 0.9}}
	h := NewHadamard(DefaultBranchConfig(), src)

	if got := h.Apply(answer.Yes); got != answer.No {
		t.Errorf("first draw 0.5: expected No, got %v", got)
	}
	if got := h.Apply(answer.Yes); got != answer.Confused {
		t.Errorf("second draw 0.9: expected Confused, got %v", got)
	}
	if src.drawn != 2 {
		t.Errorf("expected 2 draws, got %d", src.drawn)
	}
}

func TestConditionalNegate(t *testing.T) {
	if ConditionalNegate(1, true) != false {
		t.Error("control 1 should negate true")
	}
	if ConditionalNegate(1, false) != true {
		t.Error("control 1 should negate false")
	}
	if ConditionalNegate(0, true) != true {
		t.Error("control 0 should pass target through")
	}
	if ConditionalNegate(2, true) != true {
		t.Error("only control == 1 negates")
	}
}

func TestSampleCountsFixedSequence(t *testing.T) {
	src := &fixedSource{vals: []float64{0.1, 0.8, 0.3, 0.95}}
	d := NewHadamard(DefaultBranchConfig(), src).Sample(answer.Yes, 4)

	if d.Samples != 4 {
		t.Fatalf("expected 4 samples, got %d", d.Samples)
	}
	if d.Counts[answer.No] != 2 || d.Counts[answer.Confused] != 2 {
		t.Errorf("expected 2 No and 2 Confused, got %v", d.Counts)
	}
	if d.Fraction(answer.No) != 0.5 {
		t.Errorf("expected fraction 0.5, got %f", d.Fraction(answer.No))
	}
}

func TestSampleApproachesConfiguredRate(t *testing.T) {
	h := NewHadamard(DefaultBranchConfig(), rand.New(rand.NewPCG(1, 2)))
	d := h.Sample(answer.Yes, 10000)

	frac := d.Fraction(answer.No)
	if frac < 0.65 || frac > 0.75 {
		t.Errorf("expected ~0.7 of Yes samples to collapse to No, got %.3f", frac)
	}
	if d.Counts[answer.Yes] != 0 {
		t.Error("branch never returns Yes")
	}
}

func TestFractionEmptyDistribution(t *testing.T) {
	if (Distribution{}).Fraction(answer.No) != 0 {
		t.Error("empty distribution should report 0")
	}
}

func TestLockedSourceConcurrentUse(t *testing.T) {
	src := NewLockedSource(rand.New(rand.NewPCG(3, 4)))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if p := src.Float64(); p < 0 || p >= 1 {
					t.Errorf("draw %f out of [0,1)", p)
				}
			}
		}()
	}
	wg.Wait()
}
