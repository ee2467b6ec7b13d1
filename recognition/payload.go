package recognition

import (
	"encoding/base64"
	"strings"
)

// DecodePayload extracts the image bytes from a data-URL style string
// ("data:image/jpeg;base64,<data>"). Everything up to and including the
// first comma is stripped; the remainder must be valid base64.
func DecodePayload(payload string) ([]byte, error) {
	i := strings.Index(payload, ",")
	if i < 0 {
		return nil, ErrInvalidInput
	}
	data, err := base64.StdEncoding.DecodeString(payload[i+1:])
	if err != nil {
		return nil, ErrInvalidInput
	}
	return data, nil
}
