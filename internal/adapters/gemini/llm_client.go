package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/mikey/llm-reply-writer/internal/metrics"
	"go.uber.org/zap"
)

var (
	// ErrParseResponse is returned when the API response does not carry candidates[0].content.parts[0].text
	ErrParseResponse = errors.New("failed to parse AI response")
	// ErrProviderStatus is returned when the API answers with a non-2xx status
	ErrProviderStatus = errors.New("unexpected status from Gemini API")
)

const errorSnippetSize = 512

// GeminiClient is an implementation of the LLMClient interface using the Gemini REST API
type GeminiClient struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	logger     *zap.Logger
}

// NewGeminiClient creates a new Gemini client.
// The API key is appended to apiURL as is, so apiURL normally ends in "?key=".
func NewGeminiClient(httpClient *http.Client, apiURL, apiKey string, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Generate sends prompt to generateContent and returns the first candidate's text
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode Gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+c.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordProviderCall("error", time.Since(start))
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	latency := time.Since(start)
	metrics.RecordProviderCall(strconv.Itoa(resp.StatusCode), latency)
	if err != nil {
		return "", fmt.Errorf("failed to read Gemini response: %w", err)
	}

	c.logger.Debug("Gemini API responded",
		zap.Int("status", resp.StatusCode),
		zap.Int("response_size", len(respBody)),
		zap.Duration("latency", latency))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d: %s", ErrProviderStatus, resp.StatusCode, snippet(respBody))
	}

	return extractText(respBody)
}

// extractText reads candidates[0].content.parts[0].text from a generateContent response
func extractText(body []byte) (string, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrParseResponse, err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", ErrParseResponse)
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: candidate has no content parts", ErrParseResponse)
	}
	text := candidate.Content.Parts[0].Text
	if text == nil {
		return "", fmt.Errorf("%w: content part has no text", ErrParseResponse)
	}

	return *text, nil
}

func snippet(body []byte) string {
	if len(body) > errorSnippetSize {
		return string(body[:errorSnippetSize]) + "..."
	}
	return string(body)
}
