package shell

import "github.com/danielpatrickdp/quantum-decision/internal/decision"

// #region questions
// Questions are asked in this order; answer i feeds weight i.
var Questions = [5]string{
	"Is this decision aligned with my long-term goals and values?",
	"Have I considered the possible positive and negative outcomes of this decision?",
	"Am I feeling emotionally calm and clear-headed about this decision?",
	"Is this decision reversible or flexible, or is it a one-time decision?",
	"Have I allowed myself enough time to think through this decision carefully?",
}

const answerHint = "(0 for NO, 1 for Confused, 2 for YES): "

// #endregion questions

// #region messages
// Messages returns the lines printed for an outcome.
func Messages(o decision.Outcome) []string {
	switch o {
	case decision.Yes:
		return []string{"Recommended decision: YES"}
	case decision.Confused:
		return []string{
			"Recommended decision: Confused (Quantum Superposition)",
			"Take a break and reconsider.",
		}
	default:
		return []string{"Recommended decision: NO"}
	}
}

// #endregion messages
