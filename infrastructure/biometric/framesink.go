package biometric

import (
	"fmt"
	"path/filepath"
	"time"

	"gocv.io/x/gocv"
	"verilearn.io/infrastructure/logger"
)

// FrameSink receives frames the detector rejected. Useful for tuning the
// cascade parameters against real captures.
type FrameSink interface {
	SaveRejected(frame gocv.Mat, facesFound int)
}

type discardFrameSink struct{}

func (discardFrameSink) SaveRejected(gocv.Mat, int) {}

// dirFrameSink writes rejected frames into a directory as PNG files.
type dirFrameSink struct {
	dir string
}

func NewDirFrameSink(dir string) FrameSink {
	return dirFrameSink{dir: dir}
}

func (d dirFrameSink) SaveRejected(frame gocv.Mat, facesFound int) {
	name := fmt.Sprintf("rejected_%d_faces_%d.png", facesFound, time.Now().UnixNano())
	path := filepath.Join(d.dir, name)
	if ok := gocv.IMWrite(path, frame); !ok {
		logger.Warning("biometric - could not persist rejected frame", logger.LoggerOptions{
			Key:  "path",
			Data: path,
		})
	}
}
