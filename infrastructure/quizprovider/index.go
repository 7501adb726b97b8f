// Package quizprovider fetches quiz questions from quizapi.io. The question
// payload is kept verbatim; grading interprets it later.
package quizprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"verilearn.io/infrastructure/logger"
	"verilearn.io/infrastructure/network"
)

type FetchParams struct {
	Limit      int
	Category   string
	Difficulty string
}

type QuestionProvider interface {
	FetchQuestions(ctx context.Context, params FetchParams) (json.RawMessage, error)
}

type quizAPIProvider struct {
	network *network.NetworkController
	apiKey  string
}

func NewQuizAPIProvider(baseURL string, apiKey string) QuestionProvider {
	return &quizAPIProvider{
		network: network.NewNetworkController(baseURL),
		apiKey:  apiKey,
	}
}

// NewQuizAPIProviderFromEnv reads QUIZAPI_URL and QUIZAPI_KEY.
func NewQuizAPIProviderFromEnv() QuestionProvider {
	return NewQuizAPIProvider(os.Getenv("QUIZAPI_URL"), os.Getenv("QUIZAPI_KEY"))
}

func (p *quizAPIProvider) FetchQuestions(ctx context.Context, params FetchParams) (json.RawMessage, error) {
	query := map[string]string{}
	if params.Limit > 0 {
		query["limit"] = strconv.Itoa(params.Limit)
	}
	if params.Category != "" {
		query["category"] = params.Category
	}
	if params.Difficulty != "" {
		query["difficulty"] = params.Difficulty
	}

	body, statusCode, err := p.network.Get(ctx, "/api/v1/questions", map[string]string{
		"X-Api-Key": p.apiKey,
	}, query)
	if err != nil {
		logger.Error("quizapi - request failed", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	if *statusCode != 200 {
		logger.Error("quizapi - unexpected status", logger.LoggerOptions{
			Key:  "statusCode",
			Data: *statusCode,
		})
		return nil, fmt.Errorf("quizapi returned status %d", *statusCode)
	}
	if !json.Valid(*body) {
		return nil, fmt.Errorf("quizapi returned a non-JSON body")
	}
	return json.RawMessage(*body), nil
}
