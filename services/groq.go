package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

const defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"
const defaultGroqModel = "openai/gpt-oss-20b"

// GroqClient calls a Groq-style chat-completions endpoint to map a typed
// product name onto the catalog.
type GroqClient struct {
	apiKey string
	url    string
	model  string
	client *http.Client
}

// NewGroqClientFromEnv returns nil when GROQ_API_KEY is not set; callers
// treat a nil corrector as "corrections disabled".
func NewGroqClientFromEnv() *GroqClient {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		return nil
	}
	url := os.Getenv("GROQ_API_URL")
	if url == "" {
		url = defaultGroqURL
	}
	model := os.Getenv("GROQ_MODEL")
	if model == "" {
		model = defaultGroqModel
	}
	return NewGroqClient(apiKey, url, model)
}

func NewGroqClient(apiKey, url, model string) *GroqClient {
	return &GroqClient{
		apiKey: apiKey,
		url:    url,
		model:  model,
		client: &http.Client{Timeout: correctTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages            []chatMessage `json:"messages"`
	Model               string        `json:"model"`
	Temperature         float64       `json:"temperature"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
	Stream              bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *GroqClient) CorrectName(ctx context.Context, name string) (string, error) {
	prompt := fmt.Sprintf(
		"A restaurant staff member typed the product name %q. Reply with the most likely intended menu item name, corrected for spelling. Reply with the name only, no explanation.",
		name,
	)

	body, err := json.Marshal(chatRequest{
		Messages:            []chatMessage{{Role: "user", Content: prompt}},
		Model:               g.model,
		Temperature:         0.2,
		MaxCompletionTokens: 128,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", &ProviderStatusError{StatusCode: resp.StatusCode}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return name, nil
	}

	// Take the first non-empty line of the reply, falling back to the
	// original name.
	for _, line := range strings.Split(parsed.Choices[0].Message.Content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
	}
	return name, nil
}

var _ Corrector = (*GroqClient)(nil)
