package neuron

// #region neuron-config
// NeuronConfig holds the constants of the leaky integrate-and-fire update.
type NeuronConfig struct {
	Threshold      float64 // potential at or above which the neuron fires
	LeakRate       float64 // subtracted from every input before integration
	ResetPotential float64 // potential assigned on updates after a fire
}

// DefaultNeuronConfig returns the constants the gates are built with.
func DefaultNeuronConfig() NeuronConfig {
	return NeuronConfig{
		Threshold:      1.0,
		LeakRate:       0.1,
		ResetPotential: 0.0,
	}
}

// #endregion neuron-config

// #region lif-neuron
// LIFNeuron is a single leaky integrate-and-fire unit.
// Once Fired is set it stays set for the life of the neuron.
type LIFNeuron struct {
	Potential float64
	Fired     bool
}

// #endregion lif-neuron

// #region gate-kind
// GateKind names a boolean gate.
type GateKind string

const (
	GateAnd  GateKind = "and"
	GateOr   GateKind = "or"
	GateNand GateKind = "nand"
	GateNot  GateKind = "not"
)

// GateKinds lists every gate in display order.
var GateKinds = []GateKind{GateAnd, GateOr, GateNand, GateNot}

// #endregion gate-kind

// #region gate-trace
// GateTrace records the neurons of one gate evaluation.
// For GateNot the neurons stay at their zero value.
type GateTrace struct {
	Kind   GateKind
	A, B   float64
	Left   LIFNeuron
	Right  LIFNeuron
	Drive  float64 // input fed to Out
	Out    LIFNeuron
	Result bool
}

// #endregion gate-trace
