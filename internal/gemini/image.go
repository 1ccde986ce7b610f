package gemini

import (
	"context"
	"log"

	"google.golang.org/genai"
)

// GenerateImage asks the image model to render an infographic from a prompt
// and returns the raw bytes and mime type of the first image it produces.
func (s *Service) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	client, err := s.newClient(ctx)
	if err != nil {
		return nil, "", &GenerationError{Op: "image", Err: err}
	}

	resp, err := client.Models.GenerateContent(ctx, s.opts.ImageModel, genai.Text(prompt), nil)
	if err != nil {
		return nil, "", &GenerationError{Op: "image", Err: err}
	}
	return firstImage(resp, "image")
}

// EditImage applies a text instruction to an existing image and returns the
// edited image bytes. The input image travels inline with the instruction.
func (s *Service) EditImage(ctx context.Context, instruction string, image []byte, mimeType string) ([]byte, string, error) {
	client, err := s.newClient(ctx)
	if err != nil {
		return nil, "", &GenerationError{Op: "edit", Err: err}
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(instruction),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, s.opts.ImageModel, contents, nil)
	if err != nil {
		return nil, "", &GenerationError{Op: "edit", Err: err}
	}
	return firstImage(resp, "edit")
}

// firstImage extracts the first inline image part from a response.
func firstImage(resp *genai.GenerateContentResponse, op string) ([]byte, string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return nil, "", generationErr(op, "model returned no candidates")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			log.Printf("%s: received %d image bytes (%s)", op, len(part.InlineData.Data), mime)
			return part.InlineData.Data, mime, nil
		}
	}
	return nil, "", generationErr(op, "model returned no image data")
}
