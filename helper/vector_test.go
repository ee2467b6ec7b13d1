package helper

import (
	"math"
	"testing"
)

func TestNormalizeUnitNorm(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
	}{
		{"simple", []float64{3, 4}},
		{"negative", []float64{-1, 2, -3, 4}},
		{"tiny", []float64{1e-6, 2e-6}},
		{"large", []float64{1e6, -2e6, 3e6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(tt.in)
			n := Norm(out)
			if math.Abs(n-1) > 1e-9 {
				t.Errorf("Norm(Normalize(%v)) = %v, want 1", tt.in, n)
			}
		})
	}
}

func TestNormalizeZeroVectorUnchanged(t *testing.T) {
	in := []float64{0, 0, 0}
	out := Normalize(in)
	for i, x := range out {
		if x != 0 {
			t.Errorf("component %d = %v, want 0", i, x)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := []float64{3, 4}
	Normalize(in)
	if in[0] != 3 || in[1] != 4 {
		t.Errorf("input mutated: %v", in)
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical unit", []float64{1, 0}, []float64{1, 0}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"length mismatch", []float64{1, 0}, []float64{1}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CosineSimilarity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMean(t *testing.T) {
	vectors := [][]float64{
		{1, 2, 3},
		{3, 2, 1},
	}
	mean := Mean(vectors)
	want := []float64{2, 2, 2}
	for i := range want {
		if math.Abs(mean[i]-want[i]) > 1e-12 {
			t.Errorf("Mean[%d] = %v, want %v", i, mean[i], want[i])
		}
	}
}

func TestMeanSkipsLengthMismatch(t *testing.T) {
	vectors := [][]float64{
		{2, 4},
		{1, 2, 3}, // wrong length, skipped
		{4, 2},
	}
	mean := Mean(vectors)
	if len(mean) != 2 || mean[0] != 3 || mean[1] != 3 {
		t.Errorf("Mean = %v, want [3 3]", mean)
	}
}

func TestMeanEmpty(t *testing.T) {
	if Mean(nil) != nil {
		t.Error("Mean(nil) should be nil")
	}
}

func TestAllFinite(t *testing.T) {
	if !AllFinite([]float64{1, -2, 0.5}) {
		t.Error("finite vector reported as not finite")
	}
	if AllFinite([]float64{1, math.NaN()}) {
		t.Error("NaN not detected")
	}
	if AllFinite([]float64{1, math.Inf(1)}) {
		t.Error("+Inf not detected")
	}
	if AllFinite([]float64{math.Inf(-1)}) {
		t.Error("-Inf not detected")
	}
}
