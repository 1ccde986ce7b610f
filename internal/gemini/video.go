package gemini

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/arjun/infographic-ai/backend/internal/models"
)

// videoBackend is the slice of the video API the polling loop needs. The
// production implementation wraps a genai client; tests substitute a fake.
type videoBackend interface {
	Submit(ctx context.Context, prompt string, image *genai.Image) (*genai.GenerateVideosOperation, error)
	Poll(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)
	Download(ctx context.Context, uri string) ([]byte, error)
}

// Animate turns an infographic image into a short video. The image may be a
// data URI or bare base64. The call blocks until the remote job finishes or
// ctx is cancelled; there is no other deadline on the polling loop.
func (s *Service) Animate(ctx context.Context, imageData string, style models.VisualStyle) ([]byte, error) {
	client, err := s.newClient(ctx)
	if err != nil {
		return nil, &GenerationError{Op: "animate", Err: err}
	}

	data, mimeType, err := DecodeDataURI(imageData)
	if err != nil {
		return nil, &GenerationError{Op: "animate", Err: err}
	}

	backend := &genaiVideoBackend{
		client:     client,
		httpClient: s.httpClient,
		model:      s.opts.VideoModel,
		apiKey:     s.opts.APIKey,
	}
	image := &genai.Image{ImageBytes: data, MIMEType: mimeType}
	return s.animate(ctx, backend, MotionPrompt(style), image)
}

// animate submits the job and polls it to completion at a fixed interval.
func (s *Service) animate(ctx context.Context, backend videoBackend, prompt string, image *genai.Image) ([]byte, error) {
	op, err := backend.Submit(ctx, prompt, image)
	if err != nil {
		return nil, &GenerationError{Op: "animate", Err: err}
	}

	for !op.Done {
		select {
		case <-ctx.Done():
			return nil, &GenerationError{Op: "animate", Err: ctx.Err()}
		case <-time.After(s.opts.PollInterval):
		}
		op, err = backend.Poll(ctx, op)
		if err != nil {
			return nil, &GenerationError{Op: "animate", Err: err}
		}
	}

	video := firstVideo(op)
	if video == nil {
		return nil, generationErr("animate", "job finished without a video")
	}
	if len(video.VideoBytes) > 0 {
		return video.VideoBytes, nil
	}
	if video.URI == "" {
		return nil, generationErr("animate", "job finished without a video uri")
	}

	data, err := backend.Download(ctx, video.URI)
	if err != nil {
		return nil, &GenerationError{Op: "animate", Err: err}
	}
	log.Printf("animate: downloaded %d video bytes", len(data))
	return data, nil
}

func firstVideo(op *genai.GenerateVideosOperation) *genai.Video {
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return nil
	}
	return op.Response.GeneratedVideos[0].Video
}

// genaiVideoBackend drives the real long-running video API.
type genaiVideoBackend struct {
	client     *genai.Client
	httpClient *http.Client
	model      string
	apiKey     string
}

func (b *genaiVideoBackend) Submit(ctx context.Context, prompt string, image *genai.Image) (*genai.GenerateVideosOperation, error) {
	config := &genai.GenerateVideosConfig{
		NumberOfVideos: 1,
		Resolution:     "720p",
		AspectRatio:    "16:9",
	}
	return b.client.Models.GenerateVideos(ctx, b.model, prompt, image, config)
}

func (b *genaiVideoBackend) Poll(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	return b.client.Operations.GetVideosOperation(ctx, op, nil)
}

// Download fetches the finished asset. The file endpoint expects the API key
// as a query parameter on the returned uri.
func (b *genaiVideoBackend) Download(ctx context.Context, uri string) ([]byte, error) {
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri+sep+"key="+b.apiKey, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("video download returned %d: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
