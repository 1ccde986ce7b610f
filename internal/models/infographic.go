package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplexityLevel controls the target audience of the researched content.
type ComplexityLevel string

const (
	LevelELI5         ComplexityLevel = "eli5"
	LevelElementary   ComplexityLevel = "elementary"
	LevelMiddleSchool ComplexityLevel = "middle-school"
	LevelHighSchool   ComplexityLevel = "high-school"
	LevelCollege      ComplexityLevel = "college"
	LevelProfessional ComplexityLevel = "professional"
	LevelExpert       ComplexityLevel = "expert"
)

// VisualStyle controls the aesthetic of the generated infographic.
type VisualStyle string

const (
	StyleModern     VisualStyle = "modern"
	StyleMinimalist VisualStyle = "minimalist"
	StyleCinematic  VisualStyle = "cinematic"
	StyleRetro      VisualStyle = "retro"
	StylePlayful    VisualStyle = "playful"
	StyleCorporate  VisualStyle = "corporate"
	StyleHandDrawn  VisualStyle = "hand-drawn"
	StyleFuturistic VisualStyle = "futuristic"
)

// Language is the output language for the infographic text.
type Language string

const (
	LangEnglish    Language = "English"
	LangSpanish    Language = "Spanish"
	LangFrench     Language = "French"
	LangGerman     Language = "German"
	LangPortuguese Language = "Portuguese"
	LangJapanese   Language = "Japanese"
	LangKorean     Language = "Korean"
	LangChinese    Language = "Chinese"
	LangHindi      Language = "Hindi"
	LangArabic     Language = "Arabic"
)

// Source is a web source that grounded the research answer.
type Source struct {
	Title string `json:"title" bson:"title"`
	URL   string `json:"url"   bson:"url"`
}

// ResearchResult is the parsed output of one research call.
type ResearchResult struct {
	ImagePrompt string   `json:"image_prompt"`
	Facts       []string `json:"facts"`
	Sources     []Source `json:"sources"`
}

// ImageVersion records one edit applied to an infographic image.
type ImageVersion struct {
	ObjectKey   string    `json:"object_key"  bson:"object_key"`
	Instruction string    `json:"instruction" bson:"instruction"`
	CreatedAt   time.Time `json:"created_at"  bson:"created_at"`
}

// Infographic is a single generated infographic stored in MongoDB. The
// image and video binaries themselves live in MinIO under the object keys.
type Infographic struct {
	ID             primitive.ObjectID `json:"id"               bson:"_id,omitempty"`
	UserID         string             `json:"user_id"          bson:"user_id"`
	Topic          string             `json:"topic"            bson:"topic"`
	Level          ComplexityLevel    `json:"level"            bson:"level"`
	Style          VisualStyle        `json:"style"            bson:"style"`
	Language       Language           `json:"language"         bson:"language"`
	ImagePrompt    string             `json:"image_prompt"     bson:"image_prompt"`
	Facts          []string           `json:"facts"            bson:"facts"`
	Sources        []Source           `json:"sources"          bson:"sources"`
	ModelUsed      string             `json:"model_used"       bson:"model_used"`
	ImageObjectKey string             `json:"image_object_key" bson:"image_object_key"`
	VideoObjectKey string             `json:"video_object_key" bson:"video_object_key"`
	Versions       []ImageVersion     `json:"versions"         bson:"versions"`
	CreatedAt      time.Time          `json:"created_at"       bson:"created_at"`
}

// CreateRequest is the JSON body for POST /api/infographics.
type CreateRequest struct {
	Topic    string          `json:"topic"`
	Level    ComplexityLevel `json:"level"`
	Style    VisualStyle     `json:"style"`
	Language Language        `json:"language"`
}

// EditRequest is the JSON body for POST /api/infographics/{id}/edit.
type EditRequest struct {
	Instruction string `json:"instruction"`
}
