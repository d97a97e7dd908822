package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
	"github.com/danielpatrickdp/quantum-decision/internal/decision"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string         `json:"description"`
	Config      *FixtureConfig `json:"config,omitempty"`
	Cases       []FixtureCase  `json:"cases"`
}

// FixtureConfig overrides the decision config. Missing fields keep defaults.
type FixtureConfig struct {
	Weights           []float64 `json:"weights,omitempty"`
	YesThreshold      *float64  `json:"yes_threshold,omitempty"`
	ConfusedThreshold *float64  `json:"confused_threshold,omitempty"`
}

// FixtureCase is one answer vector and its expected outcome.
type FixtureCase struct {
	ID       string `json:"id"`
	Answers  []int  `json:"answers"`
	Expected string `json:"expected"`
}

// #endregion fixture-types

// #region load-fixture

// LoadFixture reads and parses a fixture JSON file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture parses fixture JSON.
func ParseFixture(data []byte) (Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Cases) == 0 {
		return Fixture{}, fmt.Errorf("fixture has no cases")
	}
	return f, nil
}

// #endregion load-fixture

// #region converters

// ToDecisionConfig applies the fixture overrides on top of the defaults.
func (f Fixture) ToDecisionConfig() (decision.DecisionConfig, error) {
	cfg := decision.DefaultDecisionConfig()
	if f.Config == nil {
		return cfg, nil
	}
	if len(f.Config.Weights) > 0 {
		if len(f.Config.Weights) != len(cfg.Weights) {
			return cfg, fmt.Errorf("fixture weights: expected %d, got %d", len(cfg.Weights), len(f.Config.Weights))
		}
		copy(cfg.Weights[:], f.Config.Weights)
	}
	if f.Config.YesThreshold != nil {
		cfg.YesThreshold = *f.Config.YesThreshold
	}
	if f.Config.ConfusedThreshold != nil {
		cfg.ConfusedThreshold = *f.Config.ConfusedThreshold
	}
	return cfg, nil
}

// ToCases converts fixture cases to replay cases.
func (f Fixture) ToCases() ([]Case, error) {
	cases := make([]Case, 0, len(f.Cases))
	for i, fc := range f.Cases {
		v, err := answer.VectorFromInts(fc.Answers)
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i, fc.ID, err)
		}
		id := fc.ID
		if id == "" {
			id = fmt.Sprintf("case-%d", i+1)
		}
		cases = append(cases, Case{ID: id, Answers: v, Expected: fc.Expected})
	}
	return cases, nil
}

// #endregion converters
