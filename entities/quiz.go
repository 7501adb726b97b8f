package entities

import (
	"encoding/json"
	"time"

	"verilearn.io/application/utils"
)

// Quiz stores the question list exactly as returned by the provider. The
// payload is opaque to the storage layer; only the grading logic interprets it.
type Quiz struct {
	Title     string          `json:"title"`
	Questions json.RawMessage `json:"questions"`
	CreatedBy string          `json:"createdBy"`
	Posted    bool            `json:"posted"`

	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (model Quiz) ParseModel() *Quiz {
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	return &model
}

type QuizResult struct {
	IDCard string `json:"idCard"`
	QuizID string `json:"quizId"`
	Grade  int    `json:"grade"`

	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (model QuizResult) ParseModel() *QuizResult {
	if model.CreatedAt.IsZero() {
		model.CreatedAt = time.Now()
		if model.ID == "" {
			model.ID = utils.GenerateULIDString()
		}
	}
	return &model
}
