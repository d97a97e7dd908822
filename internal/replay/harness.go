// Package replay re-decides recorded runs with a given configuration and
// reports where the recorded outcome no longer matches.
package replay

import (
	"fmt"

	"github.com/danielpatrickdp/quantum-decision/internal/answer"
	"github.com/danielpatrickdp/quantum-decision/internal/decision"
	"github.com/danielpatrickdp/quantum-decision/internal/store"
)

// #region types
// Case is one answer vector with the outcome it is expected to produce.
type Case struct {
	ID       string
	Answers  answer.Vector
	Expected string // "YES" | "Confused" | "NO"
}

// ReplayResult captures one replayed case.
type ReplayResult struct {
	ID       string
	Answers  answer.Vector
	Expected string
	Replayed decision.Result
	Match    bool
	Reason   string
}

// ReplaySummary provides aggregate stats from a replay run.
type ReplaySummary struct {
	TotalCases int
	Matches    int
	Drifts     int
	ByOutcome  map[decision.Outcome]int
}

// #endregion types

// #region replay
// Replay decides every case with engine and compares against the expected outcome.
func Replay(cases []Case, engine *decision.Engine) []ReplayResult {
	results := make([]ReplayResult, 0, len(cases))
	for _, c := range cases {
		r := engine.Decide(c.Answers)
		res := ReplayResult{
			ID:       c.ID,
			Answers:  c.Answers,
			Expected: c.Expected,
			Replayed: r,
		}

		expected, err := decision.ParseOutcome(c.Expected)
		switch {
		case err != nil:
			res.Reason = fmt.Sprintf("unreadable expected outcome: %v", err)
		case expected != r.Outcome:
			res.Reason = fmt.Sprintf("expected %s, replayed %s (sum %.4f)", expected, r.Outcome, r.WeightedSum)
		default:
			res.Match = true
			res.Reason = "match"
		}
		results = append(results, res)
	}
	return results
}

// CasesFromRuns converts recorded runs into replay cases, oldest first.
func CasesFromRuns(runs []store.RunRecord) []Case {
	cases := make([]Case, len(runs))
	for i, r := range runs {
		// store returns newest first
		cases[len(runs)-1-i] = Case{ID: r.RunID, Answers: r.Answers, Expected: r.Outcome}
	}
	return cases
}

// #endregion replay

// #region summarize
// Summarize aggregates replay results.
func Summarize(results []ReplayResult) ReplaySummary {
	s := ReplaySummary{
		TotalCases: len(results),
		ByOutcome:  make(map[decision.Outcome]int),
	}
	for _, r := range results {
		if r.Match {
			s.Matches++
		} else {
			s.Drifts++
		}
		s.ByOutcome[r.Replayed.Outcome]++
	}
	return s
}

// #endregion summarize
