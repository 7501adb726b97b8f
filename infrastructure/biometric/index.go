package biometric

import (
	"os"
	"strconv"

	"verilearn.io/entities"
	"verilearn.io/infrastructure/logger"
)

// Config tunes the detection and matching pipeline. Zero values fall back to
// the defaults applied in NewFaceService.
type Config struct {
	CascadePath    string
	ScaleFactor    float64
	MinNeighbors   int
	MinFaceSize    int
	CompareSize    int
	MatchThreshold float64
}

const (
	defaultScaleFactor    = 1.05
	defaultMinNeighbors   = 3
	defaultMinFaceSize    = 20
	defaultCompareSize    = 100
	defaultMatchThreshold = 1000.0
)

// FaceService runs the full grayscale Haar-cascade pipeline: decode frame,
// locate the single face, crop it into an encoding, and score encodings
// against each other by mean squared error.
type FaceService struct {
	cfg      Config
	sink     FrameSink
	detector *faceDetector
}

func NewFaceService(cfg Config, sink FrameSink) (*FaceService, error) {
	if cfg.ScaleFactor == 0 {
		cfg.ScaleFactor = defaultScaleFactor
	}
	if cfg.MinNeighbors == 0 {
		cfg.MinNeighbors = defaultMinNeighbors
	}
	if cfg.MinFaceSize == 0 {
		cfg.MinFaceSize = defaultMinFaceSize
	}
	if cfg.CompareSize == 0 {
		cfg.CompareSize = defaultCompareSize
	}
	if cfg.MatchThreshold == 0 {
		cfg.MatchThreshold = defaultMatchThreshold
	}
	if sink == nil {
		sink = discardFrameSink{}
	}
	detector, err := newFaceDetector(cfg.CascadePath)
	if err != nil {
		return nil, err
	}
	return &FaceService{cfg: cfg, sink: sink, detector: detector}, nil
}

// ConfigFromEnv assembles a Config from environment variables, keeping the
// pipeline defaults for anything unset or unparseable.
func ConfigFromEnv() Config {
	cfg := Config{
		CascadePath: os.Getenv("FACE_CASCADE_PATH"),
	}
	if v, err := strconv.ParseFloat(os.Getenv("DETECTOR_SCALE_FACTOR"), 64); err == nil {
		cfg.ScaleFactor = v
	}
	if v, err := strconv.Atoi(os.Getenv("DETECTOR_MIN_NEIGHBORS")); err == nil {
		cfg.MinNeighbors = v
	}
	if v, err := strconv.Atoi(os.Getenv("DETECTOR_MIN_FACE_SIZE")); err == nil {
		cfg.MinFaceSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("FACE_COMPARE_SIZE")); err == nil {
		cfg.CompareSize = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("FACE_MATCH_THRESHOLD"), 64); err == nil {
		cfg.MatchThreshold = v
	}
	return cfg
}

// CaptureEncoding runs the enrollment path on a single frame: decode the
// data URL, require exactly one face, and return its grayscale crop.
func (s *FaceService) CaptureEncoding(dataURL string) (*entities.FaceEncoding, error) {
	img, err := s.decodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	face, err := s.locateFace(img)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	return s.encodeFace(face)
}

// MatchThreshold exposes the configured acceptance cutoff.
func (s *FaceService) MatchThreshold() float64 {
	return s.cfg.MatchThreshold
}

var defaultService *FaceService

// InitialiseFaceService builds the package singleton from the environment.
// Called once at startup. The cascade file must exist.
func InitialiseFaceService() {
	var sink FrameSink = discardFrameSink{}
	if dir := os.Getenv("DEBUG_FRAME_DIR"); dir != "" {
		sink = NewDirFrameSink(dir)
	}
	service, err := NewFaceService(ConfigFromEnv(), sink)
	if err != nil {
		logger.Error("biometric - could not initialise face service", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		panic(err)
	}
	defaultService = service
}

func DefaultService() *FaceService {
	return defaultService
}
