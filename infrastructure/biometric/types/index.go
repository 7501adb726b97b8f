package biometric_types

import (
	"errors"
	"fmt"
)

// ErrMalformedImage covers every decode failure: a payload that is not a
// data URL, bad base64, or bytes no image codec recognises.
var ErrMalformedImage = errors.New("submitted image could not be decoded")

// FaceCountError reports a frame that does not contain exactly one face.
type FaceCountError struct {
	Found int
}

func (e FaceCountError) Error() string {
	if e.Found == 0 {
		return "no face found in the submitted image"
	}
	return fmt.Sprintf("expected exactly one face in the submitted image, found %d", e.Found)
}

// ShapeMismatchError reports a stored encoding whose byte length does not
// match its recorded dimensions. It signals a corrupt profile, not a failed
// comparison.
type ShapeMismatchError struct {
	Height int
	Width  int
	Bytes  int
}

func (e ShapeMismatchError) Error() string {
	return fmt.Sprintf("face encoding of %d bytes does not fit recorded shape %dx%d", e.Bytes, e.Height, e.Width)
}
