package biometric

import (
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"
	biometric_types "verilearn.io/infrastructure/biometric/types"
	"verilearn.io/infrastructure/logger"
)

// faceDetector wraps a loaded Haar cascade. OpenCV cascade detection is not
// safe for concurrent use, so every detection holds the mutex.
type faceDetector struct {
	mu         sync.Mutex
	classifier gocv.CascadeClassifier
}

func newFaceDetector(cascadePath string) (*faceDetector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("could not load face cascade from %s", cascadePath)
	}
	return &faceDetector{classifier: classifier}, nil
}

func (d *faceDetector) detect(gray gocv.Mat, scaleFactor float64, minNeighbors int, minFaceSize int) []image.Rectangle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.classifier.DetectMultiScaleWithParams(
		gray,
		scaleFactor,
		minNeighbors,
		0,
		image.Pt(minFaceSize, minFaceSize),
		image.Pt(0, 0),
	)
}

// locateFace converts the frame to grayscale and returns a standalone crop
// of the single detected face. Frames with zero or multiple faces are handed
// to the sink before being rejected.
func (s *FaceService) locateFace(img gocv.Mat) (gocv.Mat, error) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	faces := s.detector.detect(gray, s.cfg.ScaleFactor, s.cfg.MinNeighbors, s.cfg.MinFaceSize)
	if len(faces) != 1 {
		logger.Warning("biometric - frame rejected on face count", logger.LoggerOptions{
			Key:  "faces",
			Data: len(faces),
		})
		s.sink.SaveRejected(img, len(faces))
		return gocv.Mat{}, biometric_types.FaceCountError{Found: len(faces)}
	}

	region := gray.Region(faces[0])
	defer region.Close()
	// Region views share the parent buffer and are not contiguous; Clone
	// before the parent goes away and before ToBytes.
	return region.Clone(), nil
}
