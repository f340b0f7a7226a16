// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the feed-forward network training core.
//
// # Overview
//
// This package contains:
//   - Layers: Linear (with optional bias row), Activation
//   - Activation functions: Sigmoid, Identity, ReLU, Tanh
//   - Criteria: BCECriterion (sigmoid + cross entropy), MSECriterion
//     (identity + mean squared error), both with optional L1/L2
//     regularization
//   - Network: a layer stack over one flat parameter vector with forward
//     propagation and gradient back-propagation
//   - Initialization: XavierWeights
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ffnet/nn"
//	    "github.com/born-ml/ffnet/optim"
//	)
//
//	func main() {
//	    // 2 inputs, one hidden layer of 3, 1 output.
//	    net := nn.NewMLP([]int{2, 3, 1}, nn.NewBCECriterion(nn.NoReg()), nn.Sigmoid{})
//
//	    // Train with stochastic gradient descent.
//	    optim.Train(net, optim.NewStochasticGD(optim.SGDConfig{}), inputs, targets)
//
//	    // Predict new outputs.
//	    outputs := net.Predict(testInputs)
//	}
//
// # Layer Stacks
//
// Build networks incrementally from the Layer contract:
//
//	net := nn.New(nn.NewMSECriterion(nn.NoReg()))
//	net.AddLayer(nn.NewLinear(3, 4))
//	net.AddLayer(nn.NewActivation(nn.Tanh{}))
//	net.AddLayer(nn.NewLinear(4, 5))
//
// Every layer's parameters live in one contiguous []float64; AddLayer
// appends the layer's default parameters so the vector always matches the
// stack.
//
// # Criteria
//
// A criterion pairs one activation function with one cost function:
//
//	bce := nn.NewBCECriterion(nn.L2(0.1)) // sigmoid + cross entropy, L2 penalty
//	mse := nn.NewMSECriterion(nn.NoReg()) // identity + mean squared error
//
// Regularization is exposed but never applied implicitly; see
// Network.ComputeGradRegularized for the opt-in composition.
//
// # Gradients
//
// Network.ComputeGrad is the training path: it returns the cost and a
// gradient vector aligned one-to-one with the parameter vector, computed by
// back propagation through the full activation trace. External optimizers
// consume it through the optim.Optimizable contract.
package nn
