package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Network is an ordered stack of layers whose trainable parameters live in
// one flat vector, laid out in layer order.
//
// Invariant: len(weights) == sum of every layer's NumParams. AddLayer is the
// only way to grow the stack and it appends the layer's default parameters
// at the same time, so the invariant holds by construction; every
// propagation entry point re-validates it once against the weight vector it
// is given.
//
// The propagation engine never mutates weights in place. Training swaps the
// whole vector out via SetWeights after the optimizer returns.
//
// Example:
//
//	net := nn.New(nn.NewBCECriterion(nn.NoReg()))
//	net.AddLayer(nn.NewLinear(3, 4))
//	net.AddLayer(nn.NewActivation(nn.Sigmoid{}))
//	net.AddLayer(nn.NewLinear(4, 5))
//	net.AddLayer(nn.NewActivation(nn.Sigmoid{}))
//
//	output := net.Predict(inputs)
type Network struct {
	layers    []Layer
	weights   []float64
	criterion Criterion
}

// New creates a network with no layers.
func New(criterion Criterion) *Network {
	return &Network{criterion: criterion}
}

// NewMLP creates a multilayer perceptron from the given layer sizes.
//
// The sizes slice runs from input to output; each consecutive pair becomes
// a bias-carrying Linear layer followed by an activation layer.
//
// Example:
//
//	// 3 inputs, two hidden layers, 3 outputs, sigmoid throughout.
//	net := nn.NewMLP([]int{3, 5, 11, 3}, nn.NewBCECriterion(nn.NoReg()), nn.Sigmoid{})
func NewMLP(layerSizes []int, criterion Criterion, activ ActivationFunc) *Network {
	net := New(criterion)
	for i := 0; i+1 < len(layerSizes); i++ {
		net.AddLayer(NewLinear(layerSizes[i], layerSizes[i+1]))
		net.AddLayer(NewActivation(activ))
	}
	return net
}

// AddLayer appends a layer to the end of the stack, growing the weight
// vector with the layer's default parameters.
func (n *Network) AddLayer(layer Layer) *Network {
	n.weights = append(n.weights, layer.DefaultParams()...)
	n.layers = append(n.layers, layer)
	return n
}

// NumLayers returns the number of layers in the stack.
func (n *Network) NumLayers() int { return len(n.layers) }

// NumParams returns the total parameter count across all layers.
func (n *Network) NumParams() int {
	total := 0
	for _, layer := range n.layers {
		total += layer.NumParams()
	}
	return total
}

// Criterion returns the network's criterion.
func (n *Network) Criterion() Criterion { return n.criterion }

// Weights returns a copy of the stored parameter vector.
func (n *Network) Weights() []float64 {
	return append([]float64(nil), n.weights...)
}

// SetWeights replaces the stored parameter vector wholesale.
//
// Panics if the length does not match the stack's total parameter count.
func (n *Network) SetWeights(weights []float64) {
	if len(weights) != n.NumParams() {
		panic(fmt.Sprintf("Network.SetWeights: got %d values, layer stack needs %d",
			len(weights), n.NumParams()))
	}
	n.weights = append(n.weights[:0], weights...)
}

// checkWeights panics unless the weight vector length matches the sum of
// the layers' parameter counts. Called once per propagation entry point.
func (n *Network) checkWeights(weights []float64) {
	if total := n.NumParams(); len(weights) != total {
		panic(fmt.Sprintf("Network: weight vector has %d values, layer stack needs %d",
			len(weights), total))
	}
}

// layerView returns the (rows, cols) view over the layer's slice of weights
// starting at offset, or nil for zero-parameter layers. The view borrows
// the caller's storage; it is valid only while weights is.
func layerView(weights []float64, layer Layer, offset int) *mat.Dense {
	np := layer.NumParams()
	if np == 0 {
		return nil
	}
	rows, cols := layer.ParamShape()
	return mat.NewDense(rows, cols, weights[offset:offset+np])
}

// layerOffset returns the flat-buffer offset of the given layer: the sum of
// the preceding layers' parameter counts.
func (n *Network) layerOffset(idx int) int {
	offset := 0
	for _, layer := range n.layers[:idx] {
		offset += layer.NumParams()
	}
	return offset
}

// LayerWeights returns a non-owning, shape-typed view into the given weight
// vector for the layer at idx, with row-major stride equal to the column
// count. Returns nil for zero-parameter layers.
//
// Panics if idx is out of range or the weight vector length does not match
// the layer stack.
func (n *Network) LayerWeights(weights []float64, idx int) *mat.Dense {
	if idx < 0 || idx >= len(n.layers) {
		panic(fmt.Sprintf("Network.LayerWeights: layer index %d out of range [0, %d)",
			idx, len(n.layers)))
	}
	n.checkWeights(weights)
	return layerView(weights, n.layers[idx], n.layerOffset(idx))
}

// NetWeights returns the view of LayerWeights over the stored weights.
func (n *Network) NetWeights(idx int) *mat.Dense {
	return n.LayerWeights(n.weights, idx)
}

// NonBiasWeights returns the layer's weight view with its first (bias) row
// stripped, for layers that encode the bias as an extra input row.
//
// A single-row view is all bias: stripping it leaves nothing, and nil is
// returned. Panics if the layer has no parameter rows at all.
func (n *Network) NonBiasWeights(weights []float64, idx int) *mat.Dense {
	view := n.LayerWeights(weights, idx)
	if view == nil {
		panic(fmt.Sprintf("Network.NonBiasWeights: layer %d has no parameter rows", idx))
	}
	r, c := view.Dims()
	if r == 1 {
		return nil
	}
	return view.Slice(1, r, 0, c).(*mat.Dense)
}

// ForwardProp computes the network output for the given inputs using the
// given weight vector. This is the inference path: no activation trace is
// retained.
//
// An empty layer stack is the identity network: the input is returned
// unchanged (as a copy).
func (n *Network) ForwardProp(weights []float64, inputs mat.Matrix) *mat.Dense {
	n.checkWeights(weights)

	if len(n.layers) == 0 {
		return mat.DenseCopyOf(inputs)
	}

	offset := 0
	output := inputs
	for _, layer := range n.layers {
		output = layer.Forward(output, layerView(weights, layer, offset))
		offset += layer.NumParams()
	}
	return output.(*mat.Dense)
}

// Predict runs ForwardProp with the stored weights.
func (n *Network) Predict(inputs mat.Matrix) *mat.Dense {
	return n.ForwardProp(n.weights, inputs)
}

// ComputeGrad computes the cost and the full parameter gradient for the
// given candidate weights via back propagation.
//
// The returned gradient has the same length and per-layer layout as the
// weight vector. The weight vector itself is never mutated, so an external
// optimizer can treat the network as a black-box differentiable function of
// its parameters.
func (n *Network) ComputeGrad(weights []float64, inputs, targets mat.Matrix) (float64, []float64) {
	n.checkWeights(weights)

	if len(n.layers) == 0 {
		return n.criterion.Cost(inputs, targets), nil
	}

	gradient := make([]float64, len(weights))

	// activations[0] is the input and activations[i+1] is the output of
	// layer i.
	activations := make([]mat.Matrix, 0, len(n.layers)+1)
	activations = append(activations, inputs)

	offset := 0
	for _, layer := range n.layers {
		params := layerView(weights, layer, offset)
		activations = append(activations, layer.Forward(activations[len(activations)-1], params))
		offset += layer.NumParams()
	}
	output := activations[len(activations)-1]

	cost := n.criterion.Cost(output, targets)

	// Gradient with respect to the current layer's output, seeded at the
	// network output and propagated backward layer by layer.
	outGrad := mat.Matrix(n.criterion.CostGrad(output, targets))

	// offset == len(weights) here; peel each layer's parameter slice back
	// off the running offset. BackParams and BackInput both see the
	// pre-update outGrad and the same input activation and parameter view.
	for i := len(n.layers) - 1; i >= 0; i-- {
		layer := n.layers[i]
		offset -= layer.NumParams()
		params := layerView(weights, layer, offset)

		if np := layer.NumParams(); np > 0 {
			paramGrad := layer.BackParams(outGrad, activations[i], params)
			copy(gradient[offset:offset+np], paramGrad.RawMatrix().Data)
		}
		outGrad = layer.BackInput(outGrad, activations[i], params)
	}

	return cost, gradient
}

// RegCost returns the criterion's regularization penalty summed over the
// non-bias weight views of every parameterized layer. Returns 0 when the
// criterion is not regularized.
func (n *Network) RegCost(weights []float64) float64 {
	n.checkWeights(weights)
	if !n.criterion.IsRegularized() {
		return 0
	}

	var cost float64
	for i, layer := range n.layers {
		if layer.NumParams() == 0 {
			continue
		}
		// Single-row layers are all bias and contribute no penalty.
		if view := n.NonBiasWeights(weights, i); view != nil {
			cost += n.criterion.RegCost(view)
		}
	}
	return cost
}

// RegGrad returns the gradient of RegCost, aligned one-to-one with the
// weight vector. Bias rows contribute zero.
func (n *Network) RegGrad(weights []float64) []float64 {
	n.checkWeights(weights)

	gradient := make([]float64, len(weights))
	if !n.criterion.IsRegularized() {
		return gradient
	}

	offset := 0
	for i, layer := range n.layers {
		np := layer.NumParams()
		if np == 0 {
			continue
		}
		if view := n.NonBiasWeights(weights, i); view != nil {
			_, cols := layer.ParamShape()
			penalty := n.criterion.RegCostGrad(view)
			// The first (bias) row of the layer's slice stays zero.
			copy(gradient[offset+cols:offset+np], penalty.RawMatrix().Data)
		}
		offset += np
	}
	return gradient
}

// ComputeGradRegularized is the opt-in composition of ComputeGrad with the
// criterion's regularization penalty. ComputeGrad alone never applies the
// penalty, even when the criterion defines one.
func (n *Network) ComputeGradRegularized(weights []float64, inputs, targets mat.Matrix) (float64, []float64) {
	cost, gradient := n.ComputeGrad(weights, inputs, targets)
	if !n.criterion.IsRegularized() {
		return cost, gradient
	}

	cost += n.RegCost(weights)
	floats.Add(gradient, n.RegGrad(weights))
	return cost, gradient
}
