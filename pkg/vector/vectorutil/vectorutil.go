// Package vectorutil holds small vector math helpers shared by the ranking
// engine and the vector drivers.
package vectorutil

import "math"

// Cosine returns the cosine similarity of two equal-length vectors, in
// [-1, 1]. Returns 0 when either vector is zero or the lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// WeightedCentroid computes the weight-normalized sum of the given vectors:
// sum(w_i * v_i) / sum(w_i). All vectors must share one dimension; vectors
// of any other length are skipped. Returns nil when no vector contributes
// or the total weight is zero.
func WeightedCentroid(vectors [][]float32, weights []float64) []float32 {
	if len(vectors) == 0 || len(vectors) != len(weights) {
		return nil
	}

	dim := 0
	for _, v := range vectors {
		if len(v) > 0 {
			dim = len(v)
			break
		}
	}
	if dim == 0 {
		return nil
	}

	sum := make([]float64, dim)
	var total float64
	for i, v := range vectors {
		if len(v) != dim || weights[i] == 0 {
			continue
		}
		for j := range v {
			sum[j] += weights[i] * float64(v[j])
		}
		total += weights[i]
	}
	if total == 0 {
		return nil
	}

	centroid := make([]float32, dim)
	for j := range sum {
		centroid[j] = float32(sum[j] / total)
	}
	return centroid
}
