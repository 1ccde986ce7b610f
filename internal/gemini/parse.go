package gemini

import (
	"strings"

	"github.com/arjun/infographic-ai/backend/internal/models"
)

// maxFacts caps how many fact lines are kept from a reply.
const maxFacts = 5

const (
	factsLabel  = "FACTS:"
	promptLabel = "IMAGE_PROMPT:"
)

// ParseResearchReply extracts the FACTS and IMAGE_PROMPT sections from a raw
// model reply. The reply is a best-effort text contract, not a grammar: the
// scanner tolerates missing sections, reordered sections, bullet markers and
// blank lines, and never fails. A missing or empty IMAGE_PROMPT section falls
// back to a synthesized prompt built from topic and style.
func ParseResearchReply(raw, topic string, style models.VisualStyle) (facts []string, imagePrompt string) {
	const (
		stateNone = iota
		stateFacts
		statePrompt
	)

	state := stateNone
	var promptLines []string

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		upper := strings.ToUpper(trimmed)

		switch {
		case strings.HasPrefix(upper, factsLabel):
			state = stateFacts
			trimmed = strings.TrimSpace(trimmed[len(factsLabel):])
		case strings.HasPrefix(upper, promptLabel):
			state = statePrompt
			trimmed = strings.TrimSpace(trimmed[len(promptLabel):])
		}

		if trimmed == "" {
			continue
		}

		switch state {
		case stateFacts:
			if fact := stripBullet(trimmed); fact != "" {
				facts = append(facts, fact)
			}
		case statePrompt:
			promptLines = append(promptLines, trimmed)
		}
	}

	if len(facts) > maxFacts {
		facts = facts[:maxFacts]
	}

	imagePrompt = strings.TrimSpace(strings.Join(promptLines, "\n"))
	if imagePrompt == "" {
		imagePrompt = FallbackImagePrompt(topic, style)
	}
	return facts, imagePrompt
}

// stripBullet removes a leading list marker from a fact line.
func stripBullet(line string) string {
	for _, marker := range []string{"- ", "* ", "• ", "-", "*", "•"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):])
		}
	}
	return line
}

// DedupeSources drops sources missing a title or URL and removes duplicate
// URLs, keeping the first occurrence in first-seen order.
func DedupeSources(sources []models.Source) []models.Source {
	seen := make(map[string]bool, len(sources))
	out := make([]models.Source, 0, len(sources))
	for _, s := range sources {
		if s.Title == "" || s.URL == "" || seen[s.URL] {
			continue
		}
		seen[s.URL] = true
		out = append(out, s)
	}
	return out
}
