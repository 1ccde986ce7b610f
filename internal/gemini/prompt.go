package gemini

import (
	"fmt"

	"github.com/arjun/infographic-ai/backend/internal/models"
)

// genericDescription is used whenever a level or style has no fixed mapping,
// so instruction assembly is total over its inputs.
const genericDescription = "clear, accurate and broadcast quality"

var levelDescriptions = map[models.ComplexityLevel]string{
	models.LevelELI5:         "a five year old: use the simplest possible words, friendly comparisons and no jargon at all",
	models.LevelElementary:   "elementary school students: short sentences, everyday vocabulary and playful examples",
	models.LevelMiddleSchool: "middle school students: plain language with a few introduced terms, each briefly explained",
	models.LevelHighSchool:   "high school students: correct terminology with accessible explanations and concrete examples",
	models.LevelCollege:      "college students: precise terminology, quantitative detail and references to underlying mechanisms",
	models.LevelProfessional: "working professionals: dense, practical information with industry terminology used freely",
	models.LevelExpert:       "domain experts: technical depth, exact figures and no simplification of specialist concepts",
}

var styleDescriptions = map[models.VisualStyle]string{
	models.StyleModern:     "a modern editorial look with bold typography, clean grids and saturated accent colors",
	models.StyleMinimalist: "a minimalist look with generous white space, thin lines and a restrained two-color palette",
	models.StyleCinematic:  "a cinematic look with dramatic lighting, rich gradients and a widescreen composition",
	models.StyleRetro:      "a retro look with muted 1970s colors, grainy textures and vintage print typography",
	models.StylePlayful:    "a playful look with rounded shapes, bright candy colors and hand-lettered headings",
	models.StyleCorporate:  "a corporate look with a navy-and-grey palette, crisp icons and conservative charts",
	models.StyleHandDrawn:  "a hand-drawn look with sketchy linework, watercolor fills and notebook-style annotations",
	models.StyleFuturistic: "a futuristic look with neon glows, dark backgrounds and holographic interface elements",
}

// LevelDescription maps a complexity level to its audience description.
// Unknown levels get the generic description.
func LevelDescription(level models.ComplexityLevel) string {
	if d, ok := levelDescriptions[level]; ok {
		return d
	}
	return genericDescription
}

// StyleDescription maps a visual style to its aesthetic description.
// Unknown styles get the generic description.
func StyleDescription(style models.VisualStyle) string {
	if d, ok := styleDescriptions[style]; ok {
		return d
	}
	return genericDescription
}

// BuildResearchInstruction assembles the single instruction block sent to the
// text model. It embeds the output contract the response parser expects: a
// FACTS: section of bullet points followed by an IMAGE_PROMPT: section.
func BuildResearchInstruction(topic string, level models.ComplexityLevel, style models.VisualStyle, language models.Language) string {
	return fmt.Sprintf(`You are researching content for an infographic about "%s".
Use Google Search to find current, factual information on the topic.

The infographic is aimed at %s.
The visual treatment should be %s.
All text on the infographic must be written in %s.

Respond in exactly this format:

FACTS:
- (up to 5 short, self-contained facts about the topic, one per line)

IMAGE_PROMPT:
(one detailed prompt for an image model describing a 16:9 infographic that
presents those facts in the visual treatment above, including all on-image text)`,
		topic, LevelDescription(level), StyleDescription(style), language)
}

// FallbackImagePrompt is used when the model reply carries no IMAGE_PROMPT
// section. It degrades to a serviceable prompt rather than failing.
func FallbackImagePrompt(topic string, style models.VisualStyle) string {
	return fmt.Sprintf("A detailed 16:9 infographic about %s, %s.", topic, StyleDescription(style))
}

const (
	cinematicMotionPrompt = "Animate this infographic with a slow, elegant pan and zoom across its sections, letting each area of the image come into focus in turn. Subtle parallax, no added elements."
	dynamicMotionPrompt   = "Animate this infographic with dynamic camera movement: energetic pushes between sections, elements sliding and settling into place, and a lively overall rhythm. No added elements."
)

// MotionPrompt selects the motion description for animating an image. The
// cinematic style gets the slow pan treatment; every other style, including
// unrecognized ones, gets the dynamic treatment.
func MotionPrompt(style models.VisualStyle) string {
	if style == models.StyleCinematic {
		return cinematicMotionPrompt
	}
	return dynamicMotionPrompt
}
