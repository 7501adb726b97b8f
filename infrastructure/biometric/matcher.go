package biometric

import (
	"image"

	"gocv.io/x/gocv"
	"verilearn.io/entities"
	biometric_types "verilearn.io/infrastructure/biometric/types"
)

// CompareEncodings scores a fresh capture against a stored profile encoding.
// Both are rebuilt from bytes+shape, resized to the canonical square, and
// scored by mean squared error over pixel intensities. Lower is more alike;
// a score strictly below the threshold is a match.
func (s *FaceService) CompareEncodings(fresh *entities.FaceEncoding, stored *entities.FaceEncoding) (bool, float64, error) {
	a, err := s.reshapeResize(fresh)
	if err != nil {
		return false, 0, err
	}
	defer a.Close()
	b, err := s.reshapeResize(stored)
	if err != nil {
		return false, 0, err
	}
	defer b.Close()

	score := meanSquaredError(a.ToBytes(), b.ToBytes())
	return score < s.cfg.MatchThreshold, score, nil
}

// reshapeResize rebuilds a grayscale matrix from an encoding and resizes it
// to the canonical comparison square.
func (s *FaceService) reshapeResize(enc *entities.FaceEncoding) (gocv.Mat, error) {
	if enc == nil || len(enc.Bytes) != enc.Height*enc.Width || enc.Height <= 0 || enc.Width <= 0 {
		e := biometric_types.ShapeMismatchError{}
		if enc != nil {
			e = biometric_types.ShapeMismatchError{Height: enc.Height, Width: enc.Width, Bytes: len(enc.Bytes)}
		}
		return gocv.Mat{}, e
	}
	src, err := gocv.NewMatFromBytes(enc.Height, enc.Width, gocv.MatTypeCV8U, enc.Bytes)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	gocv.Resize(src, &dst, image.Pt(s.cfg.CompareSize, s.cfg.CompareSize), 0, 0, gocv.InterpolationLinear)
	return dst, nil
}

func meanSquaredError(a []byte, b []byte) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum / float64(len(a))
}
