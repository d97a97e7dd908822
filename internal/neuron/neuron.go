// Package neuron implements a minimal leaky integrate-and-fire neuron and the
// boolean gates composed from it.
package neuron

// #region constructor
// NewNeuron returns a neuron at rest: zero potential, not fired.
func NewNeuron() LIFNeuron {
	return LIFNeuron{}
}

// #endregion constructor

// #region update
// Update advances the neuron by one step. A fired neuron has its potential
// reset and keeps Fired set; otherwise the input minus the leak is integrated.
// Any real input is accepted, including negative values.
func (n *LIFNeuron) Update(input float64, config NeuronConfig) {
	if n.Fired {
		n.Potential = config.ResetPotential
	} else {
		n.Potential += input - config.LeakRate
	}

	if n.Potential >= config.Threshold {
		n.Fired = true
	}
}

// #endregion update
