// Package quill implements a client for the Quill token-analysis API and the
// formatter that turns its responses into chat-ready reports.
package quill

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production token-information endpoint.
const DefaultBaseURL = "https://check-api.quillai.network/api/v1/tokens/information"

const fetchTimeout = 30 * time.Second

// FetchError wraps any transport or HTTP-status failure from the analysis
// API. The request is not retried.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string {
	return "failed to fetch token information: " + e.Message
}

// Client fetches token analysis documents, authenticated by API key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client against the given base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// TokenInformation retrieves the analysis document for a token contract on
// the given chain. Whatever the endpoint returns on success is decoded
// leniently; malformed sections surface as placeholders in the report, not
// as errors here.
func (c *Client) TokenInformation(ctx context.Context, chainID int64, tokenAddress string) (*Document, error) {
	url := fmt.Sprintf("%s/%s?chainId=%d", c.baseURL, tokenAddress, chainID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Message: fmt.Sprintf("status %d from analysis API", resp.StatusCode)}
	}

	return DecodeDocument(body), nil
}
