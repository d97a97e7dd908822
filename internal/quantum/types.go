package quantum

import "github.com/danielpatrickdp/quantum-decision/internal/answer"

// #region source
// Source yields uniform reals in [0, 1). *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// #endregion source

// #region branch-config
// BranchConfig holds the collapse probabilities of the Hadamard-style branch.
type BranchConfig struct {
	YesCollapse  float64 // P(Yes -> No); otherwise Yes -> Confused
	ConfusedHold float64 // P(Confused -> Confused); otherwise Confused -> No
}

// DefaultBranchConfig returns the fixed relaxation probabilities.
func DefaultBranchConfig() BranchConfig {
	return BranchConfig{
		YesCollapse:  0.7,
		ConfusedHold: 0.5,
	}
}

// #endregion branch-config

// #region distribution
// Distribution counts branch outcomes over repeated samples.
type Distribution struct {
	Input   answer.Answer
	Samples int
	Counts  map[answer.Answer]int
}

// Fraction returns the share of samples that landed on a.
func (d Distribution) Fraction(a answer.Answer) float64 {
	if d.Samples == 0 {
		return 0
	}
	return float64(d.Counts[a]) / float64(d.Samples)
}

// #endregion distribution
