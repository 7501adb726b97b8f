package dto

type GenerateQuizDTO struct {
	Title      string `json:"title" validate:"required"`
	Limit      int    `json:"limit" validate:"required,gte=1,lte=20"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
}

type SubmitQuizDTO struct {
	Answers [][]string `json:"answers" validate:"required"`
}
