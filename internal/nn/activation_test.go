package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/nn"
)

// TestActivationFuncs tests the function/derivative pairs at known points.
func TestActivationFuncs(t *testing.T) {
	sigmoid := nn.Sigmoid{}
	assert.InDelta(t, 0.5, sigmoid.Func(0), 1e-12)
	assert.InDelta(t, 0.25, sigmoid.Grad(0), 1e-12)
	assert.InDelta(t, 1.0, sigmoid.Func(40), 1e-12)

	identity := nn.Identity{}
	assert.Equal(t, 3.5, identity.Func(3.5))
	assert.Equal(t, 1.0, identity.Grad(-7.0))

	relu := nn.ReLU{}
	assert.Equal(t, 2.0, relu.Func(2))
	assert.Equal(t, 0.0, relu.Func(-2))
	assert.Equal(t, 1.0, relu.Grad(2))
	assert.Equal(t, 0.0, relu.Grad(-2))

	tanh := nn.Tanh{}
	assert.InDelta(t, 0.0, tanh.Func(0), 1e-12)
	assert.InDelta(t, 1.0, tanh.Grad(0), 1e-12)
}

// TestActivation_Layer tests the zero-parameter layer contract.
func TestActivation_Layer(t *testing.T) {
	layer := nn.NewActivation(nn.Sigmoid{})

	assert.Equal(t, 0, layer.NumParams())
	r, c := layer.ParamShape()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
	assert.Empty(t, layer.DefaultParams())
	assert.Nil(t, layer.BackParams(nil, nil, nil))
}

// TestActivation_Forward tests element-wise application.
func TestActivation_Forward(t *testing.T) {
	layer := nn.NewActivation(nn.ReLU{})
	input := mat.NewDense(2, 2, []float64{-1, 2, 3, -4})

	out := layer.Forward(input, nil)
	assert.Equal(t, 0.0, out.At(0, 0))
	assert.Equal(t, 2.0, out.At(0, 1))
	assert.Equal(t, 3.0, out.At(1, 0))
	assert.Equal(t, 0.0, out.At(1, 1))
}

// TestActivation_BackInput tests that the incoming gradient is scaled by the
// derivative at the layer input.
func TestActivation_BackInput(t *testing.T) {
	layer := nn.NewActivation(nn.Sigmoid{})
	input := mat.NewDense(1, 2, []float64{0, 0})
	outGrad := mat.NewDense(1, 2, []float64{2, -8})

	grad := layer.BackInput(outGrad, input, nil)
	r, c := grad.Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 2, c)
	// sigma'(0) = 0.25
	assert.InDelta(t, 0.5, grad.At(0, 0), 1e-12)
	assert.InDelta(t, -2.0, grad.At(0, 1), 1e-12)
}
