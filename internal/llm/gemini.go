package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

var ErrMissingAPIKey = errors.New("gemini api key is not configured")

// GeminiClient is a thin REST client for the Gemini generateContent endpoint.
type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type geminiRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (gc *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if gc.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := geminiRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, gc.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-goog-api-key", gc.apiKey)

	response, err := gc.client.Do(request)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", response.StatusCode, responseBody)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return "", fmt.Errorf("parse gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini response has no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
