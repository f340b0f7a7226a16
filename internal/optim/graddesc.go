package optim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"
)

// GradientDesc implements full-batch gradient descent.
//
// Update rule, once per iteration over the whole data set:
//
//	params = params - lr * gradient
//
// Example:
//
//	alg := optim.NewGradientDesc(optim.GradientDescConfig{
//	    LearningRate: 0.3,
//	    Iters:        100,
//	})
type GradientDesc struct {
	lr    float64
	iters int
}

// GradientDescConfig holds configuration for GradientDesc.
type GradientDescConfig struct {
	LearningRate float64 // Step size (default: 0.3)
	Iters        int     // Number of iterations (default: 100)
}

// NewGradientDesc creates a full-batch gradient descent optimizer.
func NewGradientDesc(config GradientDescConfig) *GradientDesc {
	if config.LearningRate == 0 {
		config.LearningRate = 0.3
	}
	if config.Iters == 0 {
		config.Iters = 100
	}
	return &GradientDesc{lr: config.LearningRate, iters: config.Iters}
}

// LearningRate returns the configured step size.
func (g *GradientDesc) LearningRate() float64 { return g.lr }

// Optimize runs the configured number of full-batch iterations and returns
// the optimized parameter vector. The start slice is not mutated.
func (g *GradientDesc) Optimize(model Optimizable, start []float64, inputs, targets *mat.Dense) []float64 {
	params := append([]float64(nil), start...)

	for it := 0; it < g.iters; it++ {
		cost, grad := model.ComputeGrad(params, inputs, targets)
		floats.AddScaled(params, -g.lr, grad)
		klog.V(2).Infof("gradient descent iteration %d: cost %.6f", it, cost)
	}
	return params
}
