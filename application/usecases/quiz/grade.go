package quiz_usecases

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	"verilearn.io/entities"
)

// question is the slice of the provider payload grading needs. Everything
// else in the stored JSON passes through untouched.
type question struct {
	MultipleCorrectAnswers string            `json:"multiple_correct_answers"`
	CorrectAnswers         map[string]string `json:"correct_answers"`
}

// GradeQuiz scores index-aligned answer selections against the stored
// question list. One point per question; multi-answer questions require the
// submitted set to equal the correct set exactly.
func GradeQuiz(questionsJSON json.RawMessage, answers [][]string) (int, error) {
	var questions []question
	if err := json.Unmarshal(questionsJSON, &questions); err != nil {
		return 0, err
	}
	score := 0
	for idx, q := range questions {
		var submitted []string
		if idx < len(answers) {
			submitted = answers[idx]
		}
		if gradeQuestion(q, submitted) {
			score++
		}
	}
	return score, nil
}

func gradeQuestion(q question, submitted []string) bool {
	correctKeys := []string{}
	for key, value := range q.CorrectAnswers {
		if value == "true" {
			correctKeys = append(correctKeys, key)
		}
	}

	if q.MultipleCorrectAnswers == "true" {
		want := map[string]bool{}
		for _, key := range correctKeys {
			want[strings.TrimSuffix(key, "_correct")] = true
		}
		seen := map[string]bool{}
		for _, answer := range submitted {
			if !want[answer] {
				return false
			}
			seen[answer] = true
		}
		return len(seen) == len(want)
	}

	if len(submitted) != 1 || submitted[0] == "" {
		return false
	}
	return slices.Contains(correctKeys, submitted[0]+"_correct")
}

// Submit grades a student's selections against a posted quiz and records the
// result.
func (uc *UseCase) Submit(ctx context.Context, idCard string, quizID string, answers [][]string) (int, error) {
	quiz, err := uc.Repos.Quizzes().FindByID(ctx, quizID)
	if err != nil {
		return 0, err
	}
	if !quiz.Posted {
		return 0, ErrQuizNotPosted
	}

	score, err := GradeQuiz(quiz.Questions, answers)
	if err != nil {
		return 0, err
	}

	result := entities.QuizResult{
		IDCard: idCard,
		QuizID: quizID,
		Grade:  score,
	}.ParseModel()
	if err := uc.Repos.QuizResults().Insert(ctx, result); err != nil {
		return 0, err
	}
	return score, nil
}

// Results lists a student's recorded grades, newest first.
func (uc *UseCase) Results(ctx context.Context, idCard string) ([]entities.QuizResult, error) {
	return uc.Repos.QuizResults().ListByIDCard(ctx, idCard)
}
