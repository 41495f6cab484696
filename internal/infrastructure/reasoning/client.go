package reasoning

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

// The instruction set is fixed: the four adjudication rules the platform
// applies. The model must answer with a JSON object containing the decision
// literal and an explanation.
const systemPrompt = `You are the dispute arbiter of a pay-on-delivery marketplace.
Decide who receives the escrowed funds. Apply these rules:
1. If the buyer's complaint matches a term explicitly stated in the sale agreement, the seller is paid.
2. If the complaint describes a defect the agreement did not disclose, the buyer is refunded.
3. If the complaint is buyer's remorse (changed mind, price regret), the seller is paid.
4. If the agreement contains as-is or condition-disclaimer language covering the complaint, the seller is paid.
Answer only with JSON: {"decision": "REFUND_BUYER" or "PAY_SELLER", "explanation": "..."}`

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type verdict struct {
	Decision    string `json:"decision"`
	Explanation string `json:"explanation"`
}

func (c *Client) Analyze(ctx context.Context, agreement, reason string) (string, string, error) {
	requestBodyBytes, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Agreement: %s\nCancellation reason: %s", agreement, reason)},
		},
	})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	response, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", err
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", "", err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", "", fmt.Errorf("reasoning service returned status %d", response.StatusCode)
	}

	var resp chatResponse
	if err := json.Unmarshal(responseBodyBytes, &resp); err != nil {
		return "", "", err
	}
	if len(resp.Choices) == 0 {
		return "", "", errors.New("reasoning service returned no choices")
	}

	var v verdict
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &v); err != nil {
		return "", "", fmt.Errorf("malformed verdict: %w", err)
	}

	return v.Decision, v.Explanation, nil
}
