package nn

import (
	"gonum.org/v1/gonum/mat"
)

// Criterion binds one activation function to one cost function, plus an
// optional regularization policy.
//
// Cost and CostGrad are always computed with respect to the same activation:
// the pairing is fixed at construction, so they cannot drift apart.
//
// Regularization is exposed but never applied implicitly: the propagation
// engine computes the base cost and gradient only, and callers that want
// regularized training add RegCost/RegCostGrad over the non-bias weight
// views themselves (see Network.ComputeGradRegularized). The split exists
// because penalties conventionally exclude bias terms, and the criterion
// cannot know the bias layout of an arbitrary layer.
type Criterion interface {
	// Activate applies the activation function element-wise.
	Activate(m mat.Matrix) *mat.Dense

	// GradActiv applies the activation function's derivative element-wise.
	GradActiv(m mat.Matrix) *mat.Dense

	// Cost returns the scalar cost of outputs against targets.
	Cost(outputs, targets mat.Matrix) float64

	// CostGrad returns the gradient of Cost with respect to outputs.
	CostGrad(outputs, targets mat.Matrix) *mat.Dense

	// Regularization returns the configured penalty.
	Regularization() Regularization

	// IsRegularized reports whether a penalty is configured.
	IsRegularized() bool

	// RegCost returns the penalty cost for a weight view.
	RegCost(weights mat.Matrix) float64

	// RegCostGrad returns the penalty gradient for a weight view.
	RegCostGrad(weights mat.Matrix) *mat.Dense
}

// criterionBase implements Criterion from an activation/cost pair chosen at
// construction time by the concrete criteria below.
type criterionBase struct {
	activ ActivationFunc
	cost  CostFunc
	reg   Regularization
}

func (c criterionBase) Activate(m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return c.activ.Func(v) }, m)
	return &out
}

func (c criterionBase) GradActiv(m mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return c.activ.Grad(v) }, m)
	return &out
}

func (c criterionBase) Cost(outputs, targets mat.Matrix) float64 {
	return c.cost.Cost(outputs, targets)
}

func (c criterionBase) CostGrad(outputs, targets mat.Matrix) *mat.Dense {
	return c.cost.Grad(outputs, targets)
}

func (c criterionBase) Regularization() Regularization { return c.reg }

func (c criterionBase) IsRegularized() bool { return !c.reg.IsNone() }

func (c criterionBase) RegCost(weights mat.Matrix) float64 {
	return c.reg.Cost(weights)
}

func (c criterionBase) RegCostGrad(weights mat.Matrix) *mat.Dense {
	return c.reg.Grad(weights)
}

// BCECriterion pairs the Sigmoid activation with the binary cross entropy
// cost.
//
// Example:
//
//	// BCE with L2 regularization (lambda = 0.1).
//	criterion := nn.NewBCECriterion(nn.L2(0.1))
type BCECriterion struct {
	criterionBase
}

// NewBCECriterion creates a BCE criterion with the given regularization.
// Use nn.NoReg() for plain unregularized training.
func NewBCECriterion(reg Regularization) *BCECriterion {
	return &BCECriterion{criterionBase{
		activ: Sigmoid{},
		cost:  CrossEntropyError{},
		reg:   reg,
	}}
}

// MSECriterion pairs the Identity (linear) activation with the mean squared
// error cost.
//
// Example:
//
//	criterion := nn.NewMSECriterion(nn.NoReg())
type MSECriterion struct {
	criterionBase
}

// NewMSECriterion creates an MSE criterion with the given regularization.
func NewMSECriterion(reg Regularization) *MSECriterion {
	return &MSECriterion{criterionBase{
		activ: Identity{},
		cost:  MeanSqError{},
		reg:   reg,
	}}
}
