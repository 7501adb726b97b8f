package quizprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchQuestions(t *testing.T) {
	payload := `[{"id":1,"question":"What does CLI stand for?"}]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/questions", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "Linux", r.URL.Query().Get("category"))
		assert.Equal(t, "Easy", r.URL.Query().Get("difficulty"))
		w.Write([]byte(payload))
	}))
	defer server.Close()

	provider := NewQuizAPIProvider(server.URL, "secret-key")
	questions, err := provider.FetchQuestions(context.Background(), FetchParams{
		Limit:      5,
		Category:   "Linux",
		Difficulty: "Easy",
	})
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(questions))
}

func TestFetchQuestionsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	provider := NewQuizAPIProvider(server.URL, "bad-key")
	_, err := provider.FetchQuestions(context.Background(), FetchParams{Limit: 1})
	assert.ErrorContains(t, err, "status 403")
}
