package helper

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norm returns the Euclidean (L2) norm of v.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Normalize returns a copy of v scaled to unit L2 length. The zero
// vector has no direction and is returned unchanged.
func Normalize(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	n := floats.Norm(out, 2)
	if n == 0 {
		return out
	}
	floats.Scale(1/n, out)
	return out
}

// CosineSimilarity returns the dot product of a and b. For unit-length
// vectors this is the cosine similarity in [-1, 1]. Mismatched or empty
// vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	return floats.Dot(a, b)
}

// Mean returns the component-wise arithmetic mean of the vectors.
// Vectors whose length differs from the first are skipped; nil is
// returned when nothing usable remains.
func Mean(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}
	sum := make([]float64, len(vectors[0]))
	count := 0
	for _, v := range vectors {
		if len(v) != len(sum) {
			continue
		}
		floats.Add(sum, v)
		count++
	}
	if count == 0 {
		return nil
	}
	floats.Scale(1/float64(count), sum)
	return sum
}

// AllFinite reports whether v contains neither NaN nor infinities.
func AllFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
