package recognition

import "github.com/Mahi-singh03/DEMO-APP/helper"

// VectorMode selects which energy floor applies when validating a raw
// embedding. Enrollment and probe vectors share the structural checks
// but carry different pre-normalization norm thresholds.
type VectorMode int

const (
	ModeEnrollment VectorMode = iota
	ModeProbe
)

func (c Config) minNorm(mode VectorMode) float64 {
	if mode == ModeProbe {
		return c.MinProbeNorm
	}
	return c.MinEnrollNorm
}

// ValidVector reports whether a raw (pre-normalization) embedding is
// usable: long enough, all values finite, and enough energy for the
// given mode. A vector that fails here is treated as "no face".
func (c Config) ValidVector(v []float64, mode VectorMode) bool {
	if len(v) < c.MinVectorLen {
		return false
	}
	if !helper.AllFinite(v) {
		return false
	}
	return helper.Norm(v) >= c.minNorm(mode)
}
