package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/optim"
)

// scalarFit builds the convex toy problem cost(w) = (w*x - y)^2: a single
// (1, 1) linear layer under the MSE criterion.
func scalarFit() (*nn.Network, *mat.Dense, *mat.Dense) {
	net := nn.New(nn.NewMSECriterion(nn.NoReg()))
	net.AddLayer(nn.NewLinearNoBias(1, 1))
	net.SetWeights([]float64{0})

	inputs := mat.NewDense(1, 1, []float64{1})
	targets := mat.NewDense(1, 1, []float64{2})
	return net, inputs, targets
}

// TestGradientDesc_Converges tests full-batch descent on a convex problem.
func TestGradientDesc_Converges(t *testing.T) {
	net, inputs, targets := scalarFit()

	alg := optim.NewGradientDesc(optim.GradientDescConfig{
		LearningRate: 0.1,
		Iters:        100,
	})

	start := net.Weights()
	optimal := alg.Optimize(net, start, inputs, targets)

	require.Len(t, optimal, 1)
	assert.InDelta(t, 2.0, optimal[0], 1e-3)

	// The starting vector is never mutated.
	assert.Equal(t, 0.0, start[0])
}

// TestGradientDesc_Defaults tests the zero-value configuration.
func TestGradientDesc_Defaults(t *testing.T) {
	alg := optim.NewGradientDesc(optim.GradientDescConfig{})
	assert.Equal(t, 0.3, alg.LearningRate())
}

// TestStochasticGD_Converges tests per-row descent with momentum on the
// same convex problem.
func TestStochasticGD_Converges(t *testing.T) {
	net, inputs, targets := scalarFit()

	alg := optim.NewStochasticGD(optim.SGDConfig{
		LearningRate: 0.1,
		Momentum:     0.1,
		Epochs:       100,
	})

	start := net.Weights()
	optimal := alg.Optimize(net, start, inputs, targets)

	require.Len(t, optimal, 1)
	assert.InDelta(t, 2.0, optimal[0], 1e-3)
	assert.Equal(t, 0.0, start[0])
}

// TestStochasticGD_PerRowUpdates tests that multi-row data still descends:
// fitting y = 2x over several examples.
func TestStochasticGD_PerRowUpdates(t *testing.T) {
	net := nn.New(nn.NewMSECriterion(nn.NoReg()))
	net.AddLayer(nn.NewLinearNoBias(1, 1))
	net.SetWeights([]float64{0})

	inputs := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	targets := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	alg := optim.NewStochasticGD(optim.SGDConfig{
		LearningRate: 0.01,
		Momentum:     0.1,
		Epochs:       200,
	})
	optimal := alg.Optimize(net, net.Weights(), inputs, targets)

	assert.InDelta(t, 2.0, optimal[0], 1e-2)
}

// TestTrain_AssignsWeightsBack tests the convenience wrapper.
func TestTrain_AssignsWeightsBack(t *testing.T) {
	net, inputs, targets := scalarFit()

	before, _ := net.ComputeGrad(net.Weights(), inputs, targets)

	optim.Train(net, optim.NewGradientDesc(optim.GradientDescConfig{
		LearningRate: 0.1,
		Iters:        100,
	}), inputs, targets)

	after, _ := net.ComputeGrad(net.Weights(), inputs, targets)
	assert.Less(t, after, before)
	assert.Less(t, after, 1e-5)
	assert.False(t, math.IsNaN(after))
}

// TestStochasticGD_TrainsXOR trains a 2-3-1 sigmoid network on the XOR
// truth table from a fixed starting point and checks it converges: a
// nonconvex end-to-end run through the full backprop and update loop.
func TestStochasticGD_TrainsXOR(t *testing.T) {
	net := nn.NewMLP([]int{2, 3, 1}, nn.NewBCECriterion(nn.NoReg()), nn.Sigmoid{})

	// Deterministic start inside the standard solution basin: two hidden
	// units roughly gating OR and NAND, a third near zero.
	net.SetWeights([]float64{
		-1.0, 3.0, 0.1, // hidden bias row
		2.5, -2.5, 0.2,
		2.5, -2.5, -0.3,
		-9.0, 6.0, 6.0, 0.5, // output bias + weights
	})

	inputs := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	targets := mat.NewDense(4, 1, []float64{0, 1, 1, 0})

	before, _ := net.ComputeGrad(net.Weights(), inputs, targets)

	optim.Train(net, optim.NewStochasticGD(optim.SGDConfig{
		LearningRate: 0.3,
		Momentum:     0.1,
		Epochs:       3000,
	}), inputs, targets)

	after, _ := net.ComputeGrad(net.Weights(), inputs, targets)
	require.Less(t, after, before)
	assert.Less(t, after, 0.05)

	preds := net.Predict(inputs)
	for r := 0; r < 4; r++ {
		if targets.At(r, 0) == 1 {
			assert.Greater(t, preds.At(r, 0), 0.5, "row %d", r)
		} else {
			assert.Less(t, preds.At(r, 0), 0.5, "row %d", r)
		}
	}
}

// TestNetwork_SatisfiesOptimizable pins the contract at compile time.
func TestNetwork_SatisfiesOptimizable(t *testing.T) {
	var model optim.Optimizable = nn.New(nn.NewMSECriterion(nn.NoReg()))
	_, grad := model.ComputeGrad(nil, mat.NewDense(1, 1, []float64{1}), mat.NewDense(1, 1, []float64{1}))
	assert.Empty(t, grad)
}
