package recognition

// Config carries every tunable of the matching engine so thresholds can
// be adjusted per deployment (or in tests) without touching the logic.
type Config struct {
	// Dim is the embedding length produced by the encoder.
	Dim int
	// MinVectorLen is the structural lower bound a vector must meet
	// before any energy check runs.
	MinVectorLen int
	// BaseSimilarityThreshold is the cosine similarity a top candidate
	// must reach before the sample-count adjustment is applied.
	BaseSimilarityThreshold float64
	// MarginThreshold is the minimum gap between the best and
	// second-best candidate; anything closer is ambiguous.
	MarginThreshold float64
	// MinProbeNorm and MinEnrollNorm are pre-normalization energy
	// floors. Probes face the stricter bar: a rejected probe just asks
	// the user to retry, a rejected enrollment throws a capture away.
	MinProbeNorm  float64
	MinEnrollNorm float64
	// SampleCountAdjust is subtracted from the base threshold for
	// identities with at least SampleCountCutoff valid enrollments and
	// added for identities with fewer.
	SampleCountAdjust float64
	SampleCountCutoff int
}

func DefaultConfig() Config {
	return Config{
		Dim:                     128,
		MinVectorLen:            64,
		BaseSimilarityThreshold: 0.78,
		MarginThreshold:         0.10,
		MinProbeNorm:            0.7,
		MinEnrollNorm:           0.6,
		SampleCountAdjust:       0.02,
		SampleCountCutoff:       3,
	}
}
