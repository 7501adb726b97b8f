package biometric

import (
	"gocv.io/x/gocv"
	"verilearn.io/entities"
)

// encodeFace flattens a grayscale face crop into raw bytes plus the
// dimensions needed to rebuild it. The pair travels together: the bytes are
// meaningless without the shape.
func (s *FaceService) encodeFace(face gocv.Mat) (*entities.FaceEncoding, error) {
	return &entities.FaceEncoding{
		Bytes:  append([]byte(nil), face.ToBytes()...),
		Height: face.Rows(),
		Width:  face.Cols(),
	}, nil
}
