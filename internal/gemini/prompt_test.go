package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arjun/infographic-ai/backend/internal/models"
)

var allLevels = []models.ComplexityLevel{
	models.LevelELI5, models.LevelElementary, models.LevelMiddleSchool,
	models.LevelHighSchool, models.LevelCollege, models.LevelProfessional,
	models.LevelExpert,
}

var allStyles = []models.VisualStyle{
	models.StyleModern, models.StyleMinimalist, models.StyleCinematic,
	models.StyleRetro, models.StylePlayful, models.StyleCorporate,
	models.StyleHandDrawn, models.StyleFuturistic,
}

func TestBuildResearchInstructionCoversAllLevelsAndStyles(t *testing.T) {
	for _, level := range allLevels {
		for _, style := range allStyles {
			got := BuildResearchInstruction("solar power", level, style, models.LangEnglish)
			assert.Contains(t, got, "solar power")
			assert.Contains(t, got, LevelDescription(level))
			assert.Contains(t, got, StyleDescription(style))
			assert.Contains(t, got, "FACTS:")
			assert.Contains(t, got, "IMAGE_PROMPT:")
		}
	}
}

func TestDescriptionsAreDistinctAndNonEmpty(t *testing.T) {
	seen := map[string]bool{}
	for _, level := range allLevels {
		d := LevelDescription(level)
		assert.NotEmpty(t, d)
		assert.False(t, seen[d], "duplicate level description: %s", d)
		seen[d] = true
	}
	seen = map[string]bool{}
	for _, style := range allStyles {
		d := StyleDescription(style)
		assert.NotEmpty(t, d)
		assert.False(t, seen[d], "duplicate style description: %s", d)
		seen[d] = true
	}
}

func TestUnknownLevelAndStyleGetGenericDescription(t *testing.T) {
	assert.Equal(t, genericDescription, LevelDescription("quantum"))
	assert.Equal(t, genericDescription, StyleDescription("vaporwave"))

	got := BuildResearchInstruction("solar power", "quantum", "vaporwave", models.LangSpanish)
	assert.Contains(t, got, "solar power")
	assert.Contains(t, got, genericDescription)
	assert.Contains(t, got, "Spanish")
}

func TestMotionPromptBranches(t *testing.T) {
	assert.Equal(t, cinematicMotionPrompt, MotionPrompt(models.StyleCinematic))
	assert.Equal(t, dynamicMotionPrompt, MotionPrompt(models.StyleModern))
	assert.Equal(t, dynamicMotionPrompt, MotionPrompt("no-such-style"))
}

func TestFallbackImagePromptContainsTopic(t *testing.T) {
	got := FallbackImagePrompt("deep sea vents", models.StyleMinimalist)
	assert.Contains(t, got, "deep sea vents")
	assert.Contains(t, got, StyleDescription(models.StyleMinimalist))
}
