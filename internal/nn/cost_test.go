package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/nn"
)

// TestMeanSqError tests the MSE cost and gradient conventions: cost is the
// squared error summed per row and averaged over rows.
func TestMeanSqError(t *testing.T) {
	mse := nn.MeanSqError{}

	outputs := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	targets := mat.NewDense(2, 2, []float64{0, 2, 3, 2})

	// ((1-0)^2 + (4-2)^2) / 2 rows
	assert.InDelta(t, 2.5, mse.Cost(outputs, targets), 1e-12)

	grad := mse.Grad(outputs, targets)
	r, c := grad.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.InDelta(t, 1.0, grad.At(0, 0), 1e-12) // 2*(1-0)/2
	assert.InDelta(t, 0.0, grad.At(0, 1), 1e-12)
	assert.InDelta(t, 2.0, grad.At(1, 1), 1e-12) // 2*(4-2)/2

	// Perfect predictions cost nothing.
	assert.Zero(t, mse.Cost(targets, targets))
}

// TestCrossEntropyError tests the BCE cost and gradient at known points.
func TestCrossEntropyError(t *testing.T) {
	ce := nn.CrossEntropyError{}

	outputs := mat.NewDense(1, 1, []float64{0.5})
	targets := mat.NewDense(1, 1, []float64{1})

	assert.InDelta(t, math.Ln2, ce.Cost(outputs, targets), 1e-12)

	grad := ce.Grad(outputs, targets)
	// (0.5 - 1) / (0.5 * 0.5) / 1 row
	assert.InDelta(t, -2.0, grad.At(0, 0), 1e-12)

	// Confident correct predictions approach zero cost.
	sure := mat.NewDense(1, 2, []float64{0.999, 0.001})
	labels := mat.NewDense(1, 2, []float64{1, 0})
	cost := ce.Cost(sure, labels)
	assert.Greater(t, cost, 0.0)
	assert.Less(t, cost, 0.01)
}

// TestCostFuncs_ShapeMismatch tests that mismatched shapes fail fast.
func TestCostFuncs_ShapeMismatch(t *testing.T) {
	outputs := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	targets := mat.NewDense(2, 1, []float64{1, 2})

	assert.Panics(t, func() { nn.MeanSqError{}.Cost(outputs, targets) })
	assert.Panics(t, func() { nn.MeanSqError{}.Grad(outputs, targets) })
	assert.Panics(t, func() { nn.CrossEntropyError{}.Cost(outputs, targets) })
	assert.Panics(t, func() { nn.CrossEntropyError{}.Grad(outputs, targets) })
}
