package recognition

// Encoder turns a captured image into a fixed-length embedding. The
// engine only ever talks to this interface, so a real facial-feature
// model can replace the hash encoder without touching the matcher.
type Encoder interface {
	Encode(data []byte) []float64
}

// HashEncoder is a deterministic placeholder for a real embedding
// model: it seeds a xorshift32 generator from an FNV-1a-style hash of
// the input bytes and emits values in [-1, 1]. Identical bytes always
// produce the identical vector, across processes and restarts.
type HashEncoder struct {
	dim int
}

func NewHashEncoder(dim int) *HashEncoder {
	return &HashEncoder{dim: dim}
}

func (e *HashEncoder) Encode(data []byte) []float64 {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash += (hash << 1) + (hash << 4) + (hash << 7) + (hash << 8) + (hash << 24)
	}

	seed := hash
	vec := make([]float64, e.dim)
	for i := range vec {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		vec[i] = float64(seed)/4294967296.0*2 - 1
	}
	return vec
}
