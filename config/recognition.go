package config

import (
	"os"
	"strconv"

	"github.com/Mahi-singh03/DEMO-APP/recognition"
)

// Recognition builds the matching engine's configuration, starting from
// the tuned defaults and applying any environment overrides.
func Recognition() recognition.Config {
	cfg := recognition.DefaultConfig()
	cfg.Dim = envInt("FACE_EMBEDDING_DIM", cfg.Dim)
	cfg.MinVectorLen = envInt("FACE_MIN_VECTOR_LEN", cfg.MinVectorLen)
	cfg.BaseSimilarityThreshold = envFloat("FACE_BASE_SIMILARITY_THRESHOLD", cfg.BaseSimilarityThreshold)
	cfg.MarginThreshold = envFloat("FACE_MARGIN_THRESHOLD", cfg.MarginThreshold)
	cfg.MinProbeNorm = envFloat("FACE_MIN_PROBE_NORM", cfg.MinProbeNorm)
	cfg.MinEnrollNorm = envFloat("FACE_MIN_ENROLL_NORM", cfg.MinEnrollNorm)
	cfg.SampleCountAdjust = envFloat("FACE_SAMPLE_COUNT_ADJUST", cfg.SampleCountAdjust)
	cfg.SampleCountCutoff = envInt("FACE_SAMPLE_COUNT_CUTOFF", cfg.SampleCountCutoff)
	return cfg
}

// envInt reads an environment variable as a positive integer, falling
// back to the default when unset or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return f
	}
	return defaultVal
}
