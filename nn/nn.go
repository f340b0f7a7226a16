// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/ffnet/internal/nn"
)

// Layer is the base interface for every transform in a network stack.
type Layer = nn.Layer

// Layers

// Linear represents a fully connected layer with an optional bias row.
type Linear = nn.Linear

// NewLinear creates a fully connected layer with a bias row; its parameter
// shape is (in+1, out) with the bias weights in the first row.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
func NewLinear(inputSize, outputSize int) *Linear {
	return nn.NewLinear(inputSize, outputSize)
}

// NewLinearNoBias creates a fully connected layer without a bias row; its
// parameter shape is (in, out).
func NewLinearNoBias(inputSize, outputSize int) *Linear {
	return nn.NewLinearNoBias(inputSize, outputSize)
}

// Activation lifts an ActivationFunc into a zero-parameter layer.
type Activation = nn.Activation

// NewActivation creates an activation layer for the given function.
func NewActivation(fn ActivationFunc) *Activation {
	return nn.NewActivation(fn)
}

// Activation functions

// ActivationFunc is an element-wise activation function and its derivative.
type ActivationFunc = nn.ActivationFunc

// Sigmoid is the logistic activation function.
type Sigmoid = nn.Sigmoid

// Identity is the linear activation function.
type Identity = nn.Identity

// ReLU is the rectified linear activation function.
type ReLU = nn.ReLU

// Tanh is the hyperbolic tangent activation function.
type Tanh = nn.Tanh

// Costs and criteria

// CostFunc computes a scalar cost and its gradient.
type CostFunc = nn.CostFunc

// MeanSqError is the mean squared error cost function.
type MeanSqError = nn.MeanSqError

// CrossEntropyError is the binary cross entropy cost function.
type CrossEntropyError = nn.CrossEntropyError

// Criterion binds one activation function to one cost function, plus an
// optional regularization policy.
type Criterion = nn.Criterion

// BCECriterion pairs the Sigmoid activation with the cross entropy cost.
type BCECriterion = nn.BCECriterion

// NewBCECriterion creates a BCE criterion with the given regularization.
//
// Example:
//
//	criterion := nn.NewBCECriterion(nn.L2(0.1))
func NewBCECriterion(reg Regularization) *BCECriterion {
	return nn.NewBCECriterion(reg)
}

// MSECriterion pairs the Identity activation with the mean squared error
// cost.
type MSECriterion = nn.MSECriterion

// NewMSECriterion creates an MSE criterion with the given regularization.
func NewMSECriterion(reg Regularization) *MSECriterion {
	return nn.NewMSECriterion(reg)
}

// Regularization

// Regularization is a weight-magnitude penalty: none, L1, or L2.
type Regularization = nn.Regularization

// NoReg returns the no-regularization value.
func NoReg() Regularization { return nn.NoReg() }

// L1 returns an L1 (lasso) penalty with the given strength.
func L1(lambda float64) Regularization { return nn.L1(lambda) }

// L2 returns an L2 (ridge) penalty with the given strength.
func L2(lambda float64) Regularization { return nn.L2(lambda) }

// Network

// Network is an ordered stack of layers over one flat parameter vector.
type Network = nn.Network

// New creates a network with no layers.
func New(criterion Criterion) *Network {
	return nn.New(criterion)
}

// NewMLP creates a multilayer perceptron from the given layer sizes.
//
// Example:
//
//	net := nn.NewMLP([]int{3, 5, 11, 3}, nn.NewBCECriterion(nn.NoReg()), nn.Sigmoid{})
func NewMLP(layerSizes []int, criterion Criterion, activ ActivationFunc) *Network {
	return nn.NewMLP(layerSizes, criterion, activ)
}

// Initialization

// XavierWeights builds a Xavier/Glorot-initialized weight vector for a stack
// of bias-carrying linear layers with the given sizes.
func XavierWeights(layerSizes []int) []float64 {
	return nn.XavierWeights(layerSizes)
}
