package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"verilearn.io/application/constants"
	"verilearn.io/application/repository"
	biometric_types "verilearn.io/infrastructure/biometric/types"
)

func recordAuthError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	respondAuthError(ctx, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestRespondAuthErrorFaceCountSharedMessage(t *testing.T) {
	statusNone, bodyNone := recordAuthError(t, biometric_types.FaceCountError{Found: 0})
	statusMany, bodyMany := recordAuthError(t, biometric_types.FaceCountError{Found: 3})

	// Zero faces and multiple faces must be indistinguishable to the client.
	assert.Equal(t, http.StatusBadRequest, statusNone)
	assert.Equal(t, statusNone, statusMany)
	assert.Equal(t, bodyNone["message"], bodyMany["message"])
	assert.Equal(t, float64(constants.FACE_COUNT_REJECTED), bodyNone["responseCode"])
	assert.Equal(t, bodyNone["responseCode"], bodyMany["responseCode"])
}

func TestRespondAuthErrorStableCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   uint
	}{
		{"malformed image", biometric_types.ErrMalformedImage, http.StatusBadRequest, constants.MALFORMED_IMAGE},
		{"open session race", repository.ErrOpenSessionConflict, http.StatusConflict, constants.SESSION_CONFLICT},
		{"duplicate profile", repository.DuplicateFieldError{Field: "email"}, http.StatusConflict, constants.DUPLICATE_PROFILE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := recordAuthError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, float64(tt.code), body["responseCode"])
		})
	}
}
