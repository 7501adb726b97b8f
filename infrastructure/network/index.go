// Package network is a thin HTTP client wrapper for outbound provider calls.
// Built on net/http directly; the provider surface is a handful of GETs and
// does not warrant a client framework.
package network

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

type NetworkController struct {
	BaseURL string
	Client  *http.Client
}

func NewNetworkController(baseURL string) *NetworkController {
	return &NetworkController{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Get performs a GET against BaseURL+path and returns the raw body and
// status code. Non-2xx responses are returned to the caller undecoded.
func (n *NetworkController) Get(ctx context.Context, path string, headers map[string]string, params map[string]string) (*[]byte, *int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+path, nil)
	if err != nil {
		return nil, nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if len(params) != 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}

	res, err := n.Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &res.StatusCode, err
	}
	return &body, &res.StatusCode, nil
}
