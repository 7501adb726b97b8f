package controller

import (
	auth_usecases "verilearn.io/application/usecases/auth"
	quiz_usecases "verilearn.io/application/usecases/quiz"
)

var authUseCase *auth_usecases.UseCase
var quizUseCase *quiz_usecases.UseCase

// InitialiseControllers wires the usecases built at startup into the
// package-level handlers the routers call.
func InitialiseControllers(auth *auth_usecases.UseCase, quiz *quiz_usecases.UseCase) {
	authUseCase = auth
	quizUseCase = quiz
}
