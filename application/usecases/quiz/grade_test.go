package quiz_usecases

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuestions = `[
	{
		"question": "Which are Linux shells?",
		"multiple_correct_answers": "true",
		"correct_answers": {
			"answer_a_correct": "true",
			"answer_b_correct": "true",
			"answer_c_correct": "false",
			"answer_d_correct": "false"
		}
	},
	{
		"question": "What does cd do?",
		"multiple_correct_answers": "false",
		"correct_answers": {
			"answer_a_correct": "false",
			"answer_b_correct": "true",
			"answer_c_correct": "false"
		}
	}
]`

func TestGradeQuizFullMarks(t *testing.T) {
	score, err := GradeQuiz(json.RawMessage(sampleQuestions), [][]string{
		{"answer_a", "answer_b"},
		{"answer_b"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, score)
}

func TestGradeQuizMultiAnswerSetEquality(t *testing.T) {
	tests := []struct {
		name      string
		submitted []string
		want      int
	}{
		{"order does not matter", []string{"answer_b", "answer_a"}, 1},
		{"duplicates collapse", []string{"answer_a", "answer_b", "answer_a"}, 1},
		{"subset fails", []string{"answer_a"}, 0},
		{"superset fails", []string{"answer_a", "answer_b", "answer_c"}, 0},
		{"empty fails", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := GradeQuiz(json.RawMessage(sampleQuestions), [][]string{tt.submitted, nil})
			require.NoError(t, err)
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestGradeQuizSingleAnswer(t *testing.T) {
	score, err := GradeQuiz(json.RawMessage(sampleQuestions), [][]string{
		nil,
		{"answer_c"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	score, err = GradeQuiz(json.RawMessage(sampleQuestions), [][]string{
		nil,
		{"answer_b", "answer_c"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, score, "single-answer question rejects multiple selections")
}

func TestGradeQuizMissingAnswersScoreZero(t *testing.T) {
	score, err := GradeQuiz(json.RawMessage(sampleQuestions), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestGradeQuizMalformedQuestions(t *testing.T) {
	_, err := GradeQuiz(json.RawMessage(`{"not":"a list"}`), nil)
	assert.Error(t, err)
}
