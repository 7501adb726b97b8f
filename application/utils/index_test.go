package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageDataURL(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	raw, err := DecodeImageDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, payload, raw)
}

func TestDecodeImageDataURLRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
	}{
		{"no comma separator", "data:image/png;base64"},
		{"missing data prefix", "image/png;base64,aGVsbG8="},
		{"bare base64", "aGVsbG8="},
		{"invalid base64", "data:image/png;base64,not-base64!!"},
		{"empty string", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeImageDataURL(tt.dataURL)
			assert.Error(t, err)
		})
	}
}
