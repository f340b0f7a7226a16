package nn

import (
	"math"
	"math/rand"
)

// XavierWeights builds an initial weight vector for a stack of bias-carrying
// linear layers with the given sizes, from input to output.
//
// For each consecutive size pair (in, out) it samples (in+1)*out values
// uniformly from [-eps, eps] with eps = sqrt(6 / (fan_in + fan_out)), where
// fan_in counts the bias row (Xavier/Glorot initialization).
//
// This is an explicitly-invoked utility: networks built through AddLayer use
// each layer's DefaultParams instead, and nothing in the propagation engine
// calls this.
func XavierWeights(layerSizes []int) []float64 {
	var weights []float64
	for i := 0; i+1 < len(layerSizes); i++ {
		fanIn := layerSizes[i] + 1
		fanOut := layerSizes[i+1]
		eps := math.Sqrt(6.0 / float64(fanIn+fanOut))

		for j := 0; j < fanIn*fanOut; j++ {
			//nolint:gosec // math/rand is fine for weight initialization
			weights = append(weights, (rand.Float64()*2.0-1.0)*eps)
		}
	}
	return weights
}
