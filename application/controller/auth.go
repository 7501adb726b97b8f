package controller

import (
	"errors"
	"net/http"
	"time"

	apperrors "verilearn.io/application/appErrors"
	"verilearn.io/application/constants"
	"verilearn.io/application/controller/dto"
	"verilearn.io/application/interfaces"
	"verilearn.io/application/repository"
	auth_usecases "verilearn.io/application/usecases/auth"
	"verilearn.io/application/utils"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/auth"
	biometric_types "verilearn.io/infrastructure/biometric/types"
	server_response "verilearn.io/infrastructure/serverResponse"
	"verilearn.io/infrastructure/validator"
)

func SignUp(ctx *interfaces.ApplicationContext[dto.SignUpDTO]) {
	if valiErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body); valiErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, valiErr)
		return
	}

	studentID, err := authUseCase.Enroll(ctx.Ctx, auth_usecases.EnrollParams{
		FirstName:    ctx.Body.FirstName,
		LastName:     ctx.Body.LastName,
		Age:          ctx.Body.Age,
		Level:        ctx.Body.Level,
		IDCard:       ctx.Body.IDCard,
		Email:        ctx.Body.Email,
		Password:     ctx.Body.Password,
		ImageDataURL: ctx.Body.Image,
		Role:         entities.StudentRole(ctx.Body.Role),
	})
	if err != nil {
		respondAuthError(ctx.Ctx, err)
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "profile enrolled", map[string]any{
		"id":     studentID,
		"idCard": ctx.Body.IDCard,
	}, nil, nil)
}

func Login(ctx *interfaces.ApplicationContext[dto.LoginDTO]) {
	if valiErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body); valiErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, valiErr)
		return
	}

	identity, err := authUseCase.Verify(ctx.Ctx, ctx.Body.IDCard, ctx.Body.Image, ctx.Body.Password)
	if err != nil {
		respondAuthError(ctx.Ctx, err)
		return
	}

	token, err := auth.GenerateAuthToken(auth.ClaimsData{
		IDCard:    identity.IDCard,
		FirstName: identity.FirstName,
		Role:      identity.Role,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err, nil)
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "login successful", map[string]any{
		"token":     token,
		"idCard":    identity.IDCard,
		"firstName": identity.FirstName,
		"role":      identity.Role,
	}, nil, nil)
}

func Logout(ctx *interfaces.ApplicationContext[any]) {
	idCard := ctx.GetStringContextData("IDCard")
	duration, err := authUseCase.CloseSession(ctx.Ctx, idCard)
	if err != nil {
		respondAuthError(ctx.Ctx, err)
		return
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "logout successful", map[string]any{
		"idCard":          idCard,
		"durationSeconds": int64(duration / time.Second),
	}, nil, nil)
}

func AccessHistory(ctx *interfaces.ApplicationContext[any]) {
	idCard := ctx.GetStringContextData("IDCard")
	logs, err := authUseCase.History(ctx.Ctx, idCard)
	if err != nil {
		respondAuthError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "access history retrieved", logs, nil, nil)
}

// respondAuthError translates the auth error taxonomy into stable response
// codes. Zero and multiple detected faces share one user-facing message.
func respondAuthError(ctx interface{}, err error) {
	var faceCountErr biometric_types.FaceCountError
	var shapeErr biometric_types.ShapeMismatchError
	var mismatchErr auth_usecases.BiometricMismatchError
	var dupErr repository.DuplicateFieldError
	var storeErr auth_usecases.StoreError

	switch {
	case errors.Is(err, biometric_types.ErrMalformedImage):
		apperrors.ClientError(ctx, "the submitted image could not be decoded", nil, utils.GetUIntPointer(constants.MALFORMED_IMAGE))
	case errors.As(err, &faceCountErr):
		apperrors.ClientError(ctx, "make sure exactly one face is clearly visible in the frame", nil, utils.GetUIntPointer(constants.FACE_COUNT_REJECTED))
	case errors.As(err, &shapeErr):
		apperrors.FatalServerError(ctx, err, utils.GetUIntPointer(constants.ENCODING_SHAPE_MISMATCH))
	case errors.As(err, &mismatchErr):
		apperrors.AuthenticationError(ctx, "id card does not match the face provided", utils.GetUIntPointer(constants.BIOMETRIC_MISMATCH))
	case errors.Is(err, auth_usecases.ErrCredentialMismatch):
		apperrors.AuthenticationError(ctx, "incorrect password", utils.GetUIntPointer(constants.CREDENTIAL_MISMATCH))
	case errors.Is(err, auth_usecases.ErrProfileNotFound):
		apperrors.NotFoundError(ctx, "no enrolled profile found for this id card", utils.GetUIntPointer(constants.PROFILE_NOT_FOUND))
	case errors.Is(err, auth_usecases.ErrSessionNotFound):
		apperrors.ClientError(ctx, "no active session found for this identity", nil, utils.GetUIntPointer(constants.SESSION_NOT_FOUND))
	case errors.Is(err, repository.ErrOpenSessionConflict):
		apperrors.EntityAlreadyExistsError(ctx, "another login for this identity is already in progress, try again", utils.GetUIntPointer(constants.SESSION_CONFLICT))
	case errors.As(err, &dupErr):
		apperrors.EntityAlreadyExistsError(ctx, err.Error(), utils.GetUIntPointer(constants.DUPLICATE_PROFILE))
	case errors.As(err, &storeErr):
		apperrors.FatalServerError(ctx, err, utils.GetUIntPointer(constants.STORE_ERROR))
	default:
		apperrors.FatalServerError(ctx, err, nil)
	}
}
