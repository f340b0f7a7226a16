package optim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
)

// StochasticGD implements stochastic gradient descent with momentum.
//
// Each epoch walks the example rows one at a time, computing the gradient on
// a single row and updating immediately:
//
//	velocity = momentum * velocity + lr * gradient
//	params   = params - velocity
//
// Momentum accelerates descent along persistent directions and dampens
// oscillations.
//
// Example:
//
//	alg := optim.NewStochasticGD(optim.SGDConfig{
//	    LearningRate: 0.1,
//	    Momentum:     0.1,
//	    Epochs:       20,
//	})
type StochasticGD struct {
	lr       float64
	momentum float64
	epochs   int
}

// SGDConfig holds configuration for StochasticGD.
type SGDConfig struct {
	LearningRate float64 // Step size (default: 0.1)
	Momentum     float64 // Momentum factor in [0, 1) (default: 0.1)
	Epochs       int     // Passes over the data (default: 20)
}

// NewStochasticGD creates a stochastic gradient descent optimizer.
func NewStochasticGD(config SGDConfig) *StochasticGD {
	if config.LearningRate == 0 {
		config.LearningRate = 0.1
	}
	if config.Momentum == 0 {
		config.Momentum = 0.1
	}
	if config.Epochs == 0 {
		config.Epochs = 20
	}
	return &StochasticGD{
		lr:       config.LearningRate,
		momentum: config.Momentum,
		epochs:   config.Epochs,
	}
}

// LearningRate returns the configured step size.
func (s *StochasticGD) LearningRate() float64 { return s.lr }

// Optimize runs the configured number of epochs of per-row updates and
// returns the optimized parameter vector. The start slice is not mutated.
func (s *StochasticGD) Optimize(model Optimizable, start []float64, inputs, targets *mat.Dense) []float64 {
	params := append([]float64(nil), start...)
	velocity := make([]float64, len(start))

	rows, inCols := inputs.Dims()
	_, outCols := targets.Dims()

	for epoch := 0; epoch < s.epochs; epoch++ {
		var epochCost float64
		for r := 0; r < rows; r++ {
			input := inputs.Slice(r, r+1, 0, inCols)
			target := targets.Slice(r, r+1, 0, outCols)

			cost, grad := model.ComputeGrad(params, input, target)
			epochCost += cost

			for j, g := range grad {
				velocity[j] = s.momentum*velocity[j] + s.lr*g
			}
			floats.Sub(params, velocity)
		}
		klog.V(1).Infof("stochastic gd epoch %d: mean cost %.6f", epoch, epochCost/float64(rows))
	}
	return params
}
