package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	transcriptionEndpoint = "https://api.openai.com/v1/audio/transcriptions"
	transcriptionModel    = "gpt-4o-transcribe"
)

// TranscriptionService calls the OpenAI audio transcription endpoint
// directly; langchaingo has no audio API, so this is a plain HTTP client.
type TranscriptionService struct {
	apiKey string
	client *http.Client

	// Endpoint can be overridden in tests to point at a local server.
	Endpoint string
}

func NewTranscriptionService(apiKey string) *TranscriptionService {
	return &TranscriptionService{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 120 * time.Second, // audio uploads can be slow
		},
		Endpoint: transcriptionEndpoint,
	}
}

// Transcribe uploads the stored recording and returns its text. Single
// attempt; any failure is terminal for the request that triggered it.
func (s *TranscriptionService) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audio, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer audio.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("reading audio file: %w", err)
	}
	if err := writer.WriteField("model", transcriptionModel); err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("building upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling transcription API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("parsing transcription response: %w", err)
	}
	return strings.TrimSpace(result.Text), nil
}
