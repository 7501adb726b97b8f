package quiz_usecases

import (
	"context"

	"verilearn.io/entities"
	"verilearn.io/infrastructure/logger"
	"verilearn.io/infrastructure/quizprovider"
)

// Generate fetches a question set from the provider and stores it verbatim
// as an unposted quiz.
func (uc *UseCase) Generate(ctx context.Context, title string, createdBy string, params quizprovider.FetchParams) (*entities.Quiz, error) {
	questions, err := uc.Provider.FetchQuestions(ctx, params)
	if err != nil {
		return nil, err
	}

	quiz := entities.Quiz{
		Title:     title,
		Questions: questions,
		CreatedBy: createdBy,
	}.ParseModel()
	if err := uc.Repos.Quizzes().Create(ctx, quiz); err != nil {
		return nil, err
	}
	logger.Info("generated quiz", logger.LoggerOptions{
		Key:  "quizId",
		Data: quiz.ID,
	})
	return quiz, nil
}
