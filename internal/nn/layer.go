// Package nn implements the feed-forward network training core.
//
// This package provides:
//   - Layer interface: opaque parameterized transforms composed in sequence
//   - Linear: fully connected layer with an optional bias row
//   - Activations: Sigmoid, Identity, ReLU, Tanh (as functions and as layers)
//   - Criterion: pairing of an activation and a cost function with
//     optional L1/L2 regularization
//   - Network: a layer stack over one flat parameter vector, with forward
//     propagation and gradient back-propagation
//
// All trainable values of a Network live in a single contiguous []float64,
// laid out in layer order. Layers never own parameters; they receive a
// shaped, non-owning view into the flat vector for the duration of one call.
package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Layer is the base interface for every transform in a network stack.
//
// A layer is stateless: it declares how many parameters it needs and their
// 2-D shape, and operates on whatever parameter view the network hands it.
// BackParams and BackInput are independent functions of the same
// (outGrad, input, params) triple; neither depends on the other's result.
type Layer interface {
	// NumParams returns the number of trainable parameters of this layer.
	// It always equals rows*cols of ParamShape.
	NumParams() int

	// ParamShape returns the (rows, cols) shape used to reinterpret this
	// layer's flat parameter slice as a matrix. Zero-parameter layers
	// return (0, 0).
	ParamShape() (rows, cols int)

	// DefaultParams returns freshly generated initial parameter values,
	// in row-major order. The slice has length NumParams.
	DefaultParams() []float64

	// Forward computes the layer output for the given input.
	//
	// params is a non-owning (rows, cols) view into the network's weight
	// vector, or nil for zero-parameter layers.
	Forward(input mat.Matrix, params *mat.Dense) *mat.Dense

	// BackParams computes the gradient of the cost with respect to this
	// layer's parameters, given the gradient with respect to the layer's
	// output and the input the layer saw during the forward pass.
	//
	// The result has ParamShape; zero-parameter layers return nil.
	BackParams(outGrad, input mat.Matrix, params *mat.Dense) *mat.Dense

	// BackInput computes the gradient of the cost with respect to this
	// layer's input, propagating outGrad one layer back.
	BackInput(outGrad, input mat.Matrix, params *mat.Dense) *mat.Dense
}
