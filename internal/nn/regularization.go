package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type regKind int

const (
	regNone regKind = iota
	regL1
	regL2
)

// Regularization is a closed set of weight-magnitude penalties: none,
// L1(lambda), or L2(lambda).
//
// The penalty applies to a weight view, typically the non-bias rows of a
// layer's parameters. The zero value is no regularization.
//
//	L1 cost = lambda * sum(|w|)        grad = lambda * sign(w)
//	L2 cost = lambda/2 * sum(w^2)      grad = lambda * w
type Regularization struct {
	kind   regKind
	lambda float64
}

// NoReg returns the no-regularization value.
func NoReg() Regularization { return Regularization{} }

// L1 returns an L1 (lasso) penalty with the given strength.
func L1(lambda float64) Regularization {
	return Regularization{kind: regL1, lambda: lambda}
}

// L2 returns an L2 (ridge) penalty with the given strength.
func L2(lambda float64) Regularization {
	return Regularization{kind: regL2, lambda: lambda}
}

// IsNone reports whether no penalty is configured.
func (r Regularization) IsNone() bool { return r.kind == regNone }

// Lambda returns the penalty strength; 0 for NoReg.
func (r Regularization) Lambda() float64 { return r.lambda }

// Cost returns the penalty for the given weight view.
func (r Regularization) Cost(weights mat.Matrix) float64 {
	switch r.kind {
	case regL1:
		var sum float64
		rows, cols := weights.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				sum += math.Abs(weights.At(i, j))
			}
		}
		return r.lambda * sum
	case regL2:
		var sq mat.Dense
		sq.MulElem(weights, weights)
		return r.lambda / 2.0 * mat.Sum(&sq)
	default:
		return 0
	}
}

// Grad returns the gradient of Cost with respect to the weight view, with
// the same shape as the view. For NoReg it returns a zero matrix.
func (r Regularization) Grad(weights mat.Matrix) *mat.Dense {
	var grad mat.Dense
	switch r.kind {
	case regL1:
		grad.Apply(func(_, _ int, v float64) float64 {
			switch {
			case v > 0:
				return r.lambda
			case v < 0:
				return -r.lambda
			default:
				return 0
			}
		}, weights)
	case regL2:
		grad.Scale(r.lambda, weights)
	default:
		grad.Apply(func(_, _ int, _ float64) float64 { return 0 }, weights)
	}
	return &grad
}
