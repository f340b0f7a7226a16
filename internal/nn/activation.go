package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ActivationFunc is an element-wise activation function and its derivative.
//
// Grad is the derivative with respect to the pre-activation input, so for
// Sigmoid it computes sigma(x)*(1-sigma(x)) from x, not from sigma(x).
type ActivationFunc interface {
	// Func applies the activation function to a single value.
	Func(x float64) float64

	// Grad computes the derivative of the activation function at x.
	Grad(x float64) float64
}

// Sigmoid is the logistic activation function: sigma(x) = 1 / (1 + exp(-x)).
type Sigmoid struct{}

// Func applies the sigmoid function.
func (Sigmoid) Func(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Grad computes sigma(x) * (1 - sigma(x)).
func (s Sigmoid) Grad(x float64) float64 {
	v := s.Func(x)
	return v * (1.0 - v)
}

// Identity is the linear activation function: f(x) = x.
type Identity struct{}

// Func returns x unchanged.
func (Identity) Func(x float64) float64 { return x }

// Grad returns the constant derivative 1.
func (Identity) Grad(x float64) float64 { return 1.0 }

// ReLU is the rectified linear activation function: f(x) = max(0, x).
type ReLU struct{}

// Func applies the ReLU function.
func (ReLU) Func(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Grad returns 1 for positive inputs and 0 otherwise.
func (ReLU) Grad(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Tanh is the hyperbolic tangent activation function.
type Tanh struct{}

// Func applies tanh.
func (Tanh) Func(x float64) float64 { return math.Tanh(x) }

// Grad computes 1 - tanh(x)^2.
func (Tanh) Grad(x float64) float64 {
	v := math.Tanh(x)
	return 1.0 - v*v
}

// Activation lifts an ActivationFunc into a zero-parameter Layer.
//
// Forward applies the function element-wise; BackInput multiplies the
// incoming gradient element-wise with the function's derivative evaluated
// at the layer input.
//
// Example:
//
//	net.AddLayer(nn.NewLinear(3, 4))
//	net.AddLayer(nn.NewActivation(nn.Sigmoid{}))
type Activation struct {
	fn ActivationFunc
}

// NewActivation creates an activation layer for the given function.
func NewActivation(fn ActivationFunc) *Activation {
	return &Activation{fn: fn}
}

// NumParams returns 0: activation layers are not trainable.
func (a *Activation) NumParams() int { return 0 }

// ParamShape returns (0, 0).
func (a *Activation) ParamShape() (rows, cols int) { return 0, 0 }

// DefaultParams returns an empty slice.
func (a *Activation) DefaultParams() []float64 { return nil }

// Forward applies the activation function element-wise.
func (a *Activation) Forward(input mat.Matrix, _ *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return a.fn.Func(v) }, input)
	return &out
}

// BackParams returns nil: there are no parameters to differentiate.
func (a *Activation) BackParams(_, _ mat.Matrix, _ *mat.Dense) *mat.Dense {
	return nil
}

// BackInput computes outGrad .* fn.Grad(input).
func (a *Activation) BackInput(outGrad, input mat.Matrix, _ *mat.Dense) *mat.Dense {
	var deriv mat.Dense
	deriv.Apply(func(_, _ int, v float64) float64 { return a.fn.Grad(v) }, input)

	var grad mat.Dense
	grad.MulElem(outGrad, &deriv)
	return &grad
}
