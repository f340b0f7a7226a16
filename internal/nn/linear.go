package nn

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Linear implements a fully connected layer.
//
// Performs the transformation: y = x @ W, where x is the input with shape
// [batch, in] and W is this layer's parameter view.
//
// With a bias the parameter shape is (in+1, out) and the bias weights occupy
// the first parameter row: the forward pass prepends a column of ones to the
// input, so row 0 of W multiplies the constant 1. Without a bias the shape
// is (in, out).
//
// Default parameters are sampled uniformly from [-eps, eps] with
// eps = sqrt(6 / (fan_in + fan_out)), counting the bias row in fan_in.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)       // parameter shape (785, 128)
//	plain := nn.NewLinearNoBias(784, 128) // parameter shape (784, 128)
type Linear struct {
	inputSize  int
	outputSize int
	hasBias    bool
}

// NewLinear creates a fully connected layer with a bias row.
func NewLinear(inputSize, outputSize int) *Linear {
	if inputSize <= 0 || outputSize <= 0 {
		panic(fmt.Sprintf("NewLinear: sizes must be positive, got (%d, %d)", inputSize, outputSize))
	}
	return &Linear{inputSize: inputSize, outputSize: outputSize, hasBias: true}
}

// NewLinearNoBias creates a fully connected layer without a bias row.
func NewLinearNoBias(inputSize, outputSize int) *Linear {
	if inputSize <= 0 || outputSize <= 0 {
		panic(fmt.Sprintf("NewLinearNoBias: sizes must be positive, got (%d, %d)", inputSize, outputSize))
	}
	return &Linear{inputSize: inputSize, outputSize: outputSize, hasBias: false}
}

// InputSize returns the number of input features.
func (l *Linear) InputSize() int { return l.inputSize }

// OutputSize returns the number of output features.
func (l *Linear) OutputSize() int { return l.outputSize }

// HasBias reports whether the layer carries a bias row.
func (l *Linear) HasBias() bool { return l.hasBias }

// NumParams returns rows*cols of the parameter shape.
func (l *Linear) NumParams() int {
	rows, cols := l.ParamShape()
	return rows * cols
}

// ParamShape returns (in+1, out) with a bias, (in, out) without.
func (l *Linear) ParamShape() (rows, cols int) {
	if l.hasBias {
		return l.inputSize + 1, l.outputSize
	}
	return l.inputSize, l.outputSize
}

// DefaultParams samples initial weights uniformly from [-eps, eps] with
// eps = sqrt(6 / (fan_in + fan_out)), fan_in counting the bias row.
func (l *Linear) DefaultParams() []float64 {
	rows, cols := l.ParamShape()
	eps := math.Sqrt(6.0 / float64(rows+cols))

	params := make([]float64, rows*cols)
	for i := range params {
		//nolint:gosec // math/rand is fine for weight initialization
		params[i] = (rand.Float64()*2.0 - 1.0) * eps
	}
	return params
}

// Forward computes input @ params, prepending a ones column to the input
// when the layer has a bias.
func (l *Linear) Forward(input mat.Matrix, params *mat.Dense) *mat.Dense {
	_, c := input.Dims()
	if c != l.inputSize {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d columns, got %d", l.inputSize, c))
	}

	var out mat.Dense
	if l.hasBias {
		out.Mul(withOnesColumn(input), params)
	} else {
		out.Mul(input, params)
	}
	return &out
}

// BackParams computes the parameter gradient: augmented-input^T @ outGrad.
func (l *Linear) BackParams(outGrad, input mat.Matrix, _ *mat.Dense) *mat.Dense {
	var grad mat.Dense
	if l.hasBias {
		grad.Mul(withOnesColumn(input).T(), outGrad)
	} else {
		grad.Mul(input.T(), outGrad)
	}
	return &grad
}

// BackInput computes the input gradient: outGrad @ params^T, dropping the
// bias column when the layer has one.
func (l *Linear) BackInput(outGrad, _ mat.Matrix, params *mat.Dense) *mat.Dense {
	var grad mat.Dense
	grad.Mul(outGrad, params.T())

	if l.hasBias {
		r, c := grad.Dims()
		return grad.Slice(0, r, 1, c).(*mat.Dense)
	}
	return &grad
}

// withOnesColumn returns [1 | input]: the input with a constant column of
// ones prepended, matching the bias-in-first-row parameter encoding.
func withOnesColumn(input mat.Matrix) *mat.Dense {
	r, c := input.Dims()
	out := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, 1.0)
		for j := 0; j < c; j++ {
			out.Set(i, j+1, input.At(i, j))
		}
	}
	return out
}
