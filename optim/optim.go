// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/optim"
)

// Optimizable is a black-box differentiable function of a flat parameter
// vector. *nn.Network satisfies it.
type Optimizable = optim.Optimizable

// Optimizer is a gradient-based optimization algorithm.
type Optimizer = optim.Optimizer

// GradientDesc (full-batch gradient descent)

// GradientDesc represents the full-batch gradient descent optimizer.
type GradientDesc = optim.GradientDesc

// GradientDescConfig contains configuration for GradientDesc.
type GradientDescConfig = optim.GradientDescConfig

// NewGradientDesc creates a full-batch gradient descent optimizer.
//
// Example:
//
//	alg := optim.NewGradientDesc(optim.GradientDescConfig{
//	    LearningRate: 0.3,
//	    Iters:        100,
//	})
func NewGradientDesc(config GradientDescConfig) *GradientDesc {
	return optim.NewGradientDesc(config)
}

// StochasticGD (per-example gradient descent with momentum)

// StochasticGD represents the stochastic gradient descent optimizer.
type StochasticGD = optim.StochasticGD

// SGDConfig contains configuration for StochasticGD.
type SGDConfig = optim.SGDConfig

// NewStochasticGD creates a stochastic gradient descent optimizer.
//
// Example:
//
//	alg := optim.NewStochasticGD(optim.SGDConfig{
//	    LearningRate: 0.1,
//	    Momentum:     0.1,
//	    Epochs:       20,
//	})
func NewStochasticGD(config SGDConfig) *StochasticGD {
	return optim.NewStochasticGD(config)
}

// Train optimizes the network's weights on the given data and assigns the
// result back.
func Train(net *nn.Network, alg Optimizer, inputs, targets *mat.Dense) {
	optim.Train(net, alg, inputs, targets)
}
