package config

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const speechRecognizeURL = "https://speech.googleapis.com/v1/speech:recognize"

// SpeechConfig holds an authenticated client for the Google Speech REST API.
// Credentials come from the service-account file named by
// GOOGLE_CLOUD_SPEECH_APPLICATION_CREDENTIALS.
type SpeechConfig struct {
	client *http.Client
}

type recognizeRequest struct {
	Config struct {
		Encoding     string `json:"encoding"`
		LanguageCode string `json:"languageCode"`
	} `json:"config"`
	Audio struct {
		Content string `json:"content"`
	} `json:"audio"`
}

type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"results"`
}

func NewSpeechConfig() (*SpeechConfig, error) {
	keyFile := os.Getenv("GOOGLE_CLOUD_SPEECH_APPLICATION_CREDENTIALS")
	if keyFile == "" {
		return nil, fmt.Errorf("GOOGLE_CLOUD_SPEECH_APPLICATION_CREDENTIALS not set")
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech credentials: %v", err)
	}

	creds, err := google.CredentialsFromJSON(context.Background(), data,
		"https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return nil, fmt.Errorf("failed to parse speech credentials: %v", err)
	}

	return &SpeechConfig{
		client: oauth2.NewClient(context.Background(), creds.TokenSource),
	}, nil
}

// Recognize transcribes a WEBM_OPUS recording and joins the transcript
// fragments with newlines.
func (s *SpeechConfig) Recognize(ctx context.Context, audio []byte) (string, error) {
	var req recognizeRequest
	req.Config.Encoding = "WEBM_OPUS"
	req.Config.LanguageCode = "en-US"
	req.Audio.Content = base64.StdEncoding.EncodeToString(audio)

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, speechRecognizeURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("speech request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("speech API returned %d: %s", resp.StatusCode, msg)
	}

	var out recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode speech response: %v", err)
	}

	parts := make([]string, 0, len(out.Results))
	for _, r := range out.Results {
		if len(r.Alternatives) > 0 {
			parts = append(parts, r.Alternatives[0].Transcript)
		}
	}
	return strings.Join(parts, "\n"), nil
}
