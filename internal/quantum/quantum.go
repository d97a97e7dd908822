// Package quantum holds two gates named after quantum circuits. Neither
// simulates amplitudes: Branch is a weighted random relaxation toward No and
// ConditionalNegate is a plain controlled negation.
package quantum

import (
	"sync"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
)

// #region branch
// Branch draws one p from rng and relaxes input toward No:
// Yes becomes No when p < YesCollapse and Confused otherwise,
// Confused stays Confused when p < ConfusedHold and becomes No otherwise.
// No, and any value outside the answer range, maps to No.
// Every call consumes exactly one draw so a fixed sequence replays the same decisions.
func Branch(input answer.Answer, rng Source, config BranchConfig) answer.Answer {
	p := rng.Float64()
	switch input {
	case answer.Yes:
		if p < config.YesCollapse {
			return answer.No
		}
		return answer.Confused
	case answer.Confused:
		if p < config.ConfusedHold {
			return answer.Confused
		}
		return answer.No
	default:
		return answer.No
	}
}

// #endregion branch

// #region conditional-negate
// ConditionalNegate flips target when control is exactly 1.
func ConditionalNegate(control int, target bool) bool {
	if control == 1 {
		return !target
	}
	return target
}

// #endregion conditional-negate

// #region hadamard
// Hadamard binds a branch configuration to a random source.
type Hadamard struct {
	config BranchConfig
	rng    Source
}

// NewHadamard creates a branch gate drawing from rng.
func NewHadamard(config BranchConfig, rng Source) *Hadamard {
	return &Hadamard{config: config, rng: rng}
}

// Apply runs one branch on input.
func (h *Hadamard) Apply(input answer.Answer) answer.Answer {
	return Branch(input, h.rng, h.config)
}

// Sample runs n independent branches on the same input.
func (h *Hadamard) Sample(input answer.Answer, n int) Distribution {
	d := Distribution{
		Input:  input,
		Counts: make(map[answer.Answer]int, 3),
	}
	for i := 0; i < n; i++ {
		d.Counts[h.Apply(input)]++
		d.Samples++
	}
	return d
}

// #endregion hadamard

// #region locked-source
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src so it can be shared between goroutines.
func NewLockedSource(src Source) Source {
	return &lockedSource{src: src}
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// #endregion locked-source
