package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// Options configures the Gemini-backed generation service.
type Options struct {
	APIKey       string
	TextModel    string
	ImageModel   string
	VideoModel   string
	PollInterval time.Duration
}

// Service runs research, image and video generation against the Gemini API.
// A fresh API client is constructed for every call so no connection state is
// shared between invocations; the only long-lived state is configuration.
type Service struct {
	opts       Options
	httpClient *http.Client
}

func NewService(opts Options) *Service {
	if opts.TextModel == "" {
		opts.TextModel = "gemini-2.5-flash"
	}
	if opts.ImageModel == "" {
		opts.ImageModel = "gemini-2.5-flash-image-preview"
	}
	if opts.VideoModel == "" {
		opts.VideoModel = "veo-2.0-generate-001"
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 5 * time.Second
	}
	return &Service{opts: opts, httpClient: &http.Client{}}
}

// newClient builds a per-call API client from the configured credential.
func (s *Service) newClient(ctx context.Context) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return client, nil
}
