package gemini

import (
	"context"
	"log"

	"google.golang.org/genai"

	"github.com/arjun/infographic-ai/backend/internal/models"
)

// Research runs one search-grounded text generation for the topic and parses
// the reply into facts, an image prompt and a deduplicated source list.
func (s *Service) Research(ctx context.Context, topic string, level models.ComplexityLevel, style models.VisualStyle, language models.Language) (*models.ResearchResult, error) {
	client, err := s.newClient(ctx)
	if err != nil {
		return nil, &GenerationError{Op: "research", Err: err}
	}

	instruction := BuildResearchInstruction(topic, level, style, language)
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := client.Models.GenerateContent(
		ctx,
		s.opts.TextModel,
		[]*genai.Content{genai.NewContentFromText(instruction, genai.RoleUser)},
		config,
	)
	if err != nil {
		return nil, &GenerationError{Op: "research", Err: err}
	}

	text, sources := collectReply(resp)
	if text == "" {
		return nil, generationErr("research", "model returned no text for topic %q", topic)
	}

	facts, imagePrompt := ParseResearchReply(text, topic, style)
	log.Printf("research %q: %d facts, %d sources", topic, len(facts), len(sources))

	return &models.ResearchResult{
		ImagePrompt: imagePrompt,
		Facts:       facts,
		Sources:     DedupeSources(sources),
	}, nil
}

// collectReply concatenates the text parts of the first candidate and pulls
// the grounding chunks it was built from.
func collectReply(resp *genai.GenerateContentResponse) (string, []models.Source) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", nil
	}
	candidate := resp.Candidates[0]

	var text string
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}

	var sources []models.Source
	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Web != nil {
				sources = append(sources, models.Source{
					Title: chunk.Web.Title,
					URL:   chunk.Web.URI,
				})
			}
		}
	}
	return text, sources
}
