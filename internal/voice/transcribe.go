package voice

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

// ErrNoCredential means transcription cannot run at all. Unlike
// extraction there is no local fallback; the call fails loudly.
var ErrNoCredential = errors.New("DEEPGRAM_API_KEY not configured")

// Transcriber turns raw audio into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// DeepgramTranscriber calls the Deepgram prerecorded listen endpoint.
type DeepgramTranscriber struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewDeepgramTranscriber(apiKey string) *DeepgramTranscriber {
	return &DeepgramTranscriber{
		apiKey:  apiKey,
		baseURL: "https://api.deepgram.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Transcribe returns the best single-channel transcript, which may be
// empty for silence.
func (t *DeepgramTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if t.apiKey == "" {
		return "", ErrNoCredential
	}

	u := t.baseURL + "/v1/listen?model=nova-2&smart_format=true&punctuate=true&utterances=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("failed to build Deepgram request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+t.apiKey)
	req.Header.Set("Content-Type", mimeType)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Deepgram: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Deepgram response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepgram API error %d: %s", resp.StatusCode, string(body))
	}

	var dr deepgramResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return "", fmt.Errorf("failed to parse Deepgram JSON: %w", err)
	}

	if len(dr.Results.Channels) == 0 || len(dr.Results.Channels[0].Alternatives) == 0 {
		return "", nil
	}
	return dr.Results.Channels[0].Alternatives[0].Transcript, nil
}
