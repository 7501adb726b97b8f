package utils

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

func GenerateULIDString() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

func GetStringPointer(text string) *string {
	return &text
}

func GetBooleanPointer(data bool) *bool {
	return &data
}

func GetUIntPointer(data uint) *uint {
	return &data
}

func GetInt64Pointer(data int64) *int64 {
	return &data
}

// DecodeImageDataURL strips the data-URL header ("data:image/png;base64,...")
// and decodes the base64 payload. Callers treat any failure here as a
// malformed image.
func DecodeImageDataURL(dataURL string) ([]byte, error) {
	header, payload, found := strings.Cut(dataURL, ",")
	if !found || !strings.HasPrefix(header, "data:") {
		return nil, errors.New("payload is not a data URL")
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	return raw, nil
}
