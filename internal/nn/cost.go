package nn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CostFunc computes a scalar cost and its gradient for network outputs
// against targets.
//
// Cost and Grad use matched scalar conventions, so a finite-difference
// approximation of Cost equals Grad. Both panic if outputs and targets
// differ in shape.
type CostFunc interface {
	// Cost returns a non-negative scalar cost.
	Cost(outputs, targets mat.Matrix) float64

	// Grad returns the gradient of Cost with respect to outputs, with the
	// same shape as outputs.
	Grad(outputs, targets mat.Matrix) *mat.Dense
}

// checkCostShapes panics unless outputs and targets have the same shape.
func checkCostShapes(name string, outputs, targets mat.Matrix) (rows, cols int) {
	or, oc := outputs.Dims()
	tr, tc := targets.Dims()
	if or != tr || oc != tc {
		panic(fmt.Sprintf("%s: outputs (%d, %d) and targets (%d, %d) differ in shape",
			name, or, oc, tr, tc))
	}
	return or, oc
}

// MeanSqError is the mean squared error cost function.
//
// Cost = sum((outputs - targets)^2) / n, with n the number of rows
// (examples); Grad = 2 * (outputs - targets) / n.
type MeanSqError struct{}

// Cost computes the mean squared error over the example rows.
func (MeanSqError) Cost(outputs, targets mat.Matrix) float64 {
	n, _ := checkCostShapes("MeanSqError.Cost", outputs, targets)

	var diff mat.Dense
	diff.Sub(outputs, targets)

	var sq mat.Dense
	sq.MulElem(&diff, &diff)
	return mat.Sum(&sq) / float64(n)
}

// Grad computes 2 * (outputs - targets) / n.
func (MeanSqError) Grad(outputs, targets mat.Matrix) *mat.Dense {
	n, _ := checkCostShapes("MeanSqError.Grad", outputs, targets)

	var grad mat.Dense
	grad.Sub(outputs, targets)
	grad.Scale(2.0/float64(n), &grad)
	return &grad
}

// CrossEntropyError is the binary cross entropy cost function.
//
// Cost = -sum(t*ln(o) + (1-t)*ln(1-o)) / n, with n the number of rows;
// Grad = (o - t) / (o * (1 - o)) / n. Outputs are expected in (0, 1),
// which the Sigmoid activation guarantees.
type CrossEntropyError struct{}

// Cost computes the binary cross entropy over the example rows.
func (CrossEntropyError) Cost(outputs, targets mat.Matrix) float64 {
	n, _ := checkCostShapes("CrossEntropyError.Cost", outputs, targets)

	var sum float64
	_, cols := outputs.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			o := outputs.At(i, j)
			t := targets.At(i, j)
			sum += t*math.Log(o) + (1.0-t)*math.Log(1.0-o)
		}
	}
	return -sum / float64(n)
}

// Grad computes (outputs - targets) / (outputs * (1 - outputs)) / n.
func (CrossEntropyError) Grad(outputs, targets mat.Matrix) *mat.Dense {
	n, _ := checkCostShapes("CrossEntropyError.Grad", outputs, targets)

	var num mat.Dense
	num.Sub(outputs, targets)

	// o * (1 - o)
	var denom mat.Dense
	denom.Apply(func(_, _ int, v float64) float64 { return v * (1.0 - v) }, outputs)

	var grad mat.Dense
	grad.DivElem(&num, &denom)
	grad.Scale(1.0/float64(n), &grad)
	return &grad
}
