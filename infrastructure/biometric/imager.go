package biometric

import (
	"gocv.io/x/gocv"
	"verilearn.io/application/utils"
	biometric_types "verilearn.io/infrastructure/biometric/types"
	"verilearn.io/infrastructure/logger"
)

// decodeDataURL turns a base64 data URL into a BGR pixel matrix.
// The caller owns the returned Mat and must Close it.
func (s *FaceService) decodeDataURL(dataURL string) (gocv.Mat, error) {
	raw, err := utils.DecodeImageDataURL(dataURL)
	if err != nil {
		logger.Warning("biometric - rejected malformed data url", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return gocv.Mat{}, biometric_types.ErrMalformedImage
	}
	img, err := gocv.IMDecode(raw, gocv.IMReadColor)
	if err != nil {
		logger.Warning("biometric - image bytes not decodable", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return gocv.Mat{}, biometric_types.ErrMalformedImage
	}
	if img.Empty() {
		img.Close()
		logger.Warning("biometric - image decoded to an empty frame")
		return gocv.Mat{}, biometric_types.ErrMalformedImage
	}
	return img, nil
}
