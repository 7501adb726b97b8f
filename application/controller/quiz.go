package controller

import (
	"errors"
	"net/http"

	apperrors "verilearn.io/application/appErrors"
	"verilearn.io/application/controller/dto"
	"verilearn.io/application/interfaces"
	"verilearn.io/application/repository"
	quiz_usecases "verilearn.io/application/usecases/quiz"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/quizprovider"
	server_response "verilearn.io/infrastructure/serverResponse"
	"verilearn.io/infrastructure/validator"
)

func GenerateQuiz(ctx *interfaces.ApplicationContext[dto.GenerateQuizDTO]) {
	if valiErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body); valiErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, valiErr)
		return
	}

	quiz, err := quizUseCase.Generate(ctx.Ctx, ctx.Body.Title, ctx.GetStringContextData("IDCard"), quizprovider.FetchParams{
		Limit:      ctx.Body.Limit,
		Category:   ctx.Body.Category,
		Difficulty: ctx.Body.Difficulty,
	})
	if err != nil {
		apperrors.ExternalDependencyError(ctx.Ctx, "quizapi", "unavailable", err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusCreated, "quiz generated", quiz, nil, nil)
}

func ListQuizzes(ctx *interfaces.ApplicationContext[any]) {
	quizzes, err := quizUseCase.List(ctx.Ctx)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "quizzes retrieved", quizzes, nil, nil)
}

func ListPostedQuizzes(ctx *interfaces.ApplicationContext[any]) {
	quizzes, err := quizUseCase.ListPosted(ctx.Ctx)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "quizzes retrieved", quizzes, nil, nil)
}

func GetQuiz(ctx *interfaces.ApplicationContext[any]) {
	role := entities.StudentRole(ctx.GetStringContextData("Role"))
	quiz, err := quizUseCase.Get(ctx.Ctx, ctx.GetStringParameter("id"), role)
	if err != nil {
		respondQuizError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "quiz retrieved", quiz, nil, nil)
}

func PostQuiz(ctx *interfaces.ApplicationContext[any]) {
	if err := quizUseCase.SetPosted(ctx.Ctx, ctx.GetStringParameter("id"), true); err != nil {
		respondQuizError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "quiz posted", nil, nil, nil)
}

func SubmitQuiz(ctx *interfaces.ApplicationContext[dto.SubmitQuizDTO]) {
	if valiErr := validator.ValidatorInstance.ValidateStruct(*ctx.Body); valiErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, valiErr)
		return
	}

	grade, err := quizUseCase.Submit(ctx.Ctx, ctx.GetStringContextData("IDCard"), ctx.GetStringParameter("id"), ctx.Body.Answers)
	if err != nil {
		respondQuizError(ctx.Ctx, err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "quiz graded", map[string]any{
		"grade": grade,
	}, nil, nil)
}

func QuizResults(ctx *interfaces.ApplicationContext[any]) {
	results, err := quizUseCase.Results(ctx.Ctx, ctx.GetStringContextData("IDCard"))
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err, nil)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "results retrieved", results, nil, nil)
}

func respondQuizError(ctx interface{}, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		apperrors.NotFoundError(ctx, "quiz not found", nil)
	case errors.Is(err, quiz_usecases.ErrQuizNotPosted):
		apperrors.ClientError(ctx, err.Error(), nil, nil)
	default:
		apperrors.FatalServerError(ctx, err, nil)
	}
}
