// Package quiz_usecases covers quiz generation from the question provider,
// posting, and submission grading.
package quiz_usecases

import (
	"context"
	"errors"

	"verilearn.io/application/repository"
	"verilearn.io/entities"
	"verilearn.io/infrastructure/quizprovider"
)

// ErrQuizNotPosted means a student tried to read or submit a quiz the
// professor has not posted yet.
var ErrQuizNotPosted = errors.New("this quiz has not been posted")

type UseCase struct {
	Repos    repository.Manager
	Provider quizprovider.QuestionProvider
}

func New(repos repository.Manager, provider quizprovider.QuestionProvider) *UseCase {
	return &UseCase{Repos: repos, Provider: provider}
}

func (uc *UseCase) List(ctx context.Context) ([]entities.Quiz, error) {
	return uc.Repos.Quizzes().List(ctx)
}

func (uc *UseCase) ListPosted(ctx context.Context) ([]entities.Quiz, error) {
	return uc.Repos.Quizzes().ListPosted(ctx)
}

// Get returns a quiz. Unless the caller is a professor, unposted quizzes are
// withheld.
func (uc *UseCase) Get(ctx context.Context, id string, role entities.StudentRole) (*entities.Quiz, error) {
	quiz, err := uc.Repos.Quizzes().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quiz.Posted && role != entities.StudentRoleProfessor {
		return nil, ErrQuizNotPosted
	}
	return quiz, nil
}

func (uc *UseCase) SetPosted(ctx context.Context, id string, posted bool) error {
	return uc.Repos.Quizzes().SetPosted(ctx, id, posted)
}
