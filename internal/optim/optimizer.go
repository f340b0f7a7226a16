// Package optim implements gradient-based optimization over models exposed
// through the Optimizable contract.
//
// This package provides:
//   - Optimizable: the minimal surface an optimizer needs from a model
//   - Optimizer: the iteration-owning algorithm interface
//   - GradientDesc: full-batch gradient descent
//   - StochasticGD: per-example gradient descent with momentum
//
// Optimizers own the iteration loop, the learning-rate policy, and the
// stopping decision. They never mutate the starting parameter vector; they
// return a new one, which the caller assigns back to the model.
package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/nn"
)

// Optimizable is a black-box differentiable function of a flat parameter
// vector. *nn.Network satisfies it.
type Optimizable interface {
	// ComputeGrad returns the cost and the full parameter gradient for the
	// candidate parameter vector, evaluated on the given inputs and
	// targets. The gradient has the same length as params.
	ComputeGrad(params []float64, inputs, targets mat.Matrix) (float64, []float64)
}

// Optimizer is a gradient-based optimization algorithm.
type Optimizer interface {
	// Optimize runs the algorithm from the starting parameter vector and
	// returns the optimized one. The start slice is not mutated.
	Optimize(model Optimizable, start []float64, inputs, targets *mat.Dense) []float64
}

// Train optimizes the network's weights on the given data and assigns the
// result back.
//
// Example:
//
//	net := nn.NewMLP([]int{2, 3, 1}, nn.NewBCECriterion(nn.NoReg()), nn.Sigmoid{})
//	optim.Train(net, optim.NewStochasticGD(optim.SGDConfig{}), inputs, targets)
func Train(net *nn.Network, alg Optimizer, inputs, targets *mat.Dense) {
	optimal := alg.Optimize(net, net.Weights(), inputs, targets)
	net.SetWeights(optimal)
}
