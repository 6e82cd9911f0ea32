package transcribe

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// WhisperClient calls an OpenAI-compatible /audio/transcriptions
// endpoint with a multipart audio upload.
type WhisperClient struct {
	client *resty.Client
	model  string
}

// whisperResponse is the json response from the transcription API.
type whisperResponse struct {
	Text string `json:"text"`
}

func NewWhisperClient(baseURL, apiKey, model string, timeout time.Duration) *WhisperClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(timeout)

	return &WhisperClient{
		client: client,
		model:  model,
	}
}

// Recognize uploads the audio file and returns the transcript text
// verbatim.
func (c *WhisperClient) Recognize(ctx context.Context, audioPath string) (string, error) {
	var result whisperResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetFile("file", audioPath).
		SetFormData(map[string]string{"model": c.model}).
		SetResult(&result).
		Post("/audio/transcriptions")
	if err != nil {
		return "", fmt.Errorf("whisper request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("whisper API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	return result.Text, nil
}
