package biometric

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"verilearn.io/entities"
	biometric_types "verilearn.io/infrastructure/biometric/types"
)

func testService() *FaceService {
	return &FaceService{
		cfg: Config{
			CompareSize:    defaultCompareSize,
			MatchThreshold: defaultMatchThreshold,
		},
		sink: discardFrameSink{},
	}
}

func TestMeanSquaredError(t *testing.T) {
	assert.Equal(t, 0.0, meanSquaredError([]byte{1, 2, 3}, []byte{1, 2, 3}))
	// (2^2 + 0 + 4^2) / 3
	assert.InDelta(t, 20.0/3.0, meanSquaredError([]byte{0, 5, 10}, []byte{2, 5, 6}), 1e-9)
}

func TestCompareEncodingsIdenticalFaces(t *testing.T) {
	enc := &entities.FaceEncoding{
		Bytes:  bytes.Repeat([]byte{128}, 30*40),
		Height: 30,
		Width:  40,
	}
	matched, score, err := testService().CompareEncodings(enc, enc)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, 0.0, score)
}

func TestCompareEncodingsDifferentFaces(t *testing.T) {
	dark := &entities.FaceEncoding{
		Bytes:  bytes.Repeat([]byte{10}, 50*50),
		Height: 50,
		Width:  50,
	}
	light := &entities.FaceEncoding{
		Bytes:  bytes.Repeat([]byte{250}, 60*60),
		Height: 60,
		Width:  60,
	}
	matched, score, err := testService().CompareEncodings(dark, light)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Greater(t, score, defaultMatchThreshold)
}

func TestCompareEncodingsThresholdMonotonicity(t *testing.T) {
	a := &entities.FaceEncoding{
		Bytes:  bytes.Repeat([]byte{100}, 20*20),
		Height: 20,
		Width:  20,
	}
	b := &entities.FaceEncoding{
		Bytes:  bytes.Repeat([]byte{110}, 20*20),
		Height: 20,
		Width:  20,
	}

	// Uniform frames survive resizing unchanged, so the score is exactly
	// (110-100)^2 regardless of threshold.
	var lastScore float64
	var lastMatched bool
	for i, threshold := range []float64{50, 99, 100, 101, 500} {
		service := testService()
		service.cfg.MatchThreshold = threshold
		matched, score, err := service.CompareEncodings(a, b)
		require.NoError(t, err)
		assert.Equal(t, 100.0, score, "score must not depend on the threshold")
		if i > 0 {
			assert.Equal(t, lastScore, score)
			if lastMatched {
				assert.True(t, matched, "raising the threshold must never turn a match into a rejection")
			}
		}
		assert.Equal(t, score < threshold, matched)
		lastScore, lastMatched = score, matched
	}
	assert.True(t, lastMatched)
}

func TestCompareEncodingsShapeMismatch(t *testing.T) {
	fresh := &entities.FaceEncoding{
		Bytes:  bytes.Repeat([]byte{128}, 100),
		Height: 10,
		Width:  10,
	}
	corrupt := &entities.FaceEncoding{
		Bytes:  bytes.Repeat([]byte{128}, 99),
		Height: 10,
		Width:  10,
	}
	_, _, err := testService().CompareEncodings(fresh, corrupt)
	var shapeErr biometric_types.ShapeMismatchError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 99, shapeErr.Bytes)
}
