// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimization algorithms.
//
// # Overview
//
// This package contains:
//   - Optimizable: the contract an optimizer needs from a model
//   - GradientDesc: full-batch gradient descent
//   - StochasticGD: per-example gradient descent with momentum
//   - Train: optimize a network's weights and assign them back
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ffnet/nn"
//	    "github.com/born-ml/ffnet/optim"
//	)
//
//	func main() {
//	    net := nn.NewMLP([]int{2, 3, 1}, nn.NewBCECriterion(nn.NoReg()), nn.Sigmoid{})
//
//	    alg := optim.NewStochasticGD(optim.SGDConfig{
//	        LearningRate: 0.1,
//	        Momentum:     0.1,
//	        Epochs:       50,
//	    })
//	    optim.Train(net, alg, inputs, targets)
//	}
//
// # The Optimizable Contract
//
// Optimizers see models only through ComputeGrad: cost and gradient for a
// candidate parameter vector. They own the iteration loop and stopping
// policy, and return a new parameter vector rather than mutating the model.
package optim
