package infographic

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/arjun/infographic-ai/backend/internal/gemini"
	"github.com/arjun/infographic-ai/backend/internal/models"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// DocumentStore defines the interface for infographic persistence.
type DocumentStore interface {
	Insert(ctx context.Context, doc *models.Infographic) (string, error)
	ListByUser(ctx context.Context, userID string) ([]models.Infographic, error)
	GetByID(ctx context.Context, id string) (*models.Infographic, error)
	AppendVersion(ctx context.Context, id string, version models.ImageVersion, newImageKey string) error
	SetVideoKey(ctx context.Context, id, key string) error
	Delete(ctx context.Context, id string) error
}

// FileStore defines the interface for binary asset storage.
type FileStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, string, error)
	Remove(ctx context.Context, key string) error
}

// Generator defines the generative capability the handlers orchestrate.
type Generator interface {
	Research(ctx context.Context, topic string, level models.ComplexityLevel, style models.VisualStyle, language models.Language) (*models.ResearchResult, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
	EditImage(ctx context.Context, instruction string, image []byte, mimeType string) ([]byte, string, error)
	Animate(ctx context.Context, imageData string, style models.VisualStyle) ([]byte, error)
}

// Handler holds infographic HTTP handlers.
type Handler struct {
	docs      DocumentStore
	files     FileStore
	gen       Generator
	textModel string
}

func NewHandler(docs DocumentStore, files FileStore, gen Generator, textModel string) *Handler {
	return &Handler{docs: docs, files: files, gen: gen, textModel: textModel}
}

// Create researches a topic, renders the infographic image and stores both.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(string)

	var req models.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Topic == "" {
		http.Error(w, `{"error":"topic is required"}`, http.StatusBadRequest)
		return
	}
	if req.Level == "" {
		req.Level = models.LevelHighSchool
	}
	if req.Style == "" {
		req.Style = models.StyleModern
	}
	if req.Language == "" {
		req.Language = models.LangEnglish
	}

	// Step 1: search-grounded research
	result, err := h.gen.Research(r.Context(), req.Topic, req.Level, req.Style, req.Language)
	if err != nil {
		log.Printf("research error: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": fmt.Sprintf("Research failed: %v", err),
		})
		return
	}

	// Step 2: render the infographic
	imageBytes, contentType, err := h.gen.GenerateImage(r.Context(), result.ImagePrompt)
	if err != nil {
		log.Printf("generate-image error: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": fmt.Sprintf("Image generation failed: %v", err),
		})
		return
	}

	// Step 3: upload to MinIO
	imageKey := objectKey(userID, contentType)
	if err := h.files.Upload(r.Context(), imageKey, imageBytes, contentType); err != nil {
		log.Printf("minio image upload error: %v", err)
		http.Error(w, `{"error":"failed to store image"}`, http.StatusInternalServerError)
		return
	}

	// Step 4: save to MongoDB
	doc := &models.Infographic{
		UserID:         userID,
		Topic:          req.Topic,
		Level:          req.Level,
		Style:          req.Style,
		Language:       req.Language,
		ImagePrompt:    result.ImagePrompt,
		Facts:          result.Facts,
		Sources:        result.Sources,
		ModelUsed:      h.textModel,
		ImageObjectKey: imageKey,
	}
	docID, err := h.docs.Insert(r.Context(), doc)
	if err != nil {
		log.Printf("mongo insert error: %v", err)
		http.Error(w, `{"error":"failed to save infographic"}`, http.StatusInternalServerError)
		return
	}

	saved, _ := h.docs.GetByID(r.Context(), docID)
	writeJSON(w, http.StatusCreated, saved)
}

// List returns all infographics for the current user.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("user_id").(string)
	docs, err := h.docs.ListByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []models.Infographic{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// Get returns a single infographic document.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.docs.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Edit applies a text instruction to the current image and stores the result
// as a new version.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Instruction == "" {
		http.Error(w, `{"error":"instruction is required"}`, http.StatusBadRequest)
		return
	}

	doc, err := h.docs.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	imageBytes, contentType, err := h.files.Download(r.Context(), doc.ImageObjectKey)
	if err != nil {
		log.Printf("minio image download error: %v", err)
		http.Error(w, `{"error":"image not available"}`, http.StatusInternalServerError)
		return
	}

	edited, editedType, err := h.gen.EditImage(r.Context(), req.Instruction, imageBytes, contentType)
	if err != nil {
		log.Printf("edit-image error: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": fmt.Sprintf("Image edit failed: %v", err),
		})
		return
	}

	newKey := objectKey(doc.UserID, editedType)
	if err := h.files.Upload(r.Context(), newKey, edited, editedType); err != nil {
		log.Printf("minio edited upload error: %v", err)
		http.Error(w, `{"error":"failed to store edited image"}`, http.StatusInternalServerError)
		return
	}

	version := models.ImageVersion{
		ObjectKey:   doc.ImageObjectKey,
		Instruction: req.Instruction,
		CreatedAt:   time.Now(),
	}
	if err := h.docs.AppendVersion(r.Context(), id, version, newKey); err != nil {
		log.Printf("mongo version update error: %v", err)
		http.Error(w, `{"error":"failed to record edit"}`, http.StatusInternalServerError)
		return
	}

	updated, _ := h.docs.GetByID(r.Context(), id)
	writeJSON(w, http.StatusOK, updated)
}

// Animate runs the video job for the current image and stores the result.
func (h *Handler) Animate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.docs.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	imageBytes, contentType, err := h.files.Download(r.Context(), doc.ImageObjectKey)
	if err != nil {
		log.Printf("minio image download error: %v", err)
		http.Error(w, `{"error":"image not available"}`, http.StatusInternalServerError)
		return
	}

	videoBytes, err := h.gen.Animate(r.Context(), gemini.EncodeDataURI(imageBytes, contentType), doc.Style)
	if err != nil {
		log.Printf("animate error: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": fmt.Sprintf("Animation failed: %v", err),
		})
		return
	}

	videoKey := fmt.Sprintf("%s/%s.mp4", doc.UserID, uuid.New())
	if err := h.files.Upload(r.Context(), videoKey, videoBytes, "video/mp4"); err != nil {
		log.Printf("minio video upload error: %v", err)
		http.Error(w, `{"error":"failed to store video"}`, http.StatusInternalServerError)
		return
	}

	if err := h.docs.SetVideoKey(r.Context(), id, videoKey); err != nil {
		log.Printf("mongo video update error: %v", err)
		http.Error(w, `{"error":"failed to record video"}`, http.StatusInternalServerError)
		return
	}

	updated, _ := h.docs.GetByID(r.Context(), id)
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes an infographic document and its stored assets.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.docs.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}

	// Clean up MinIO
	if doc.ImageObjectKey != "" {
		h.files.Remove(r.Context(), doc.ImageObjectKey)
	}
	if doc.VideoObjectKey != "" {
		h.files.Remove(r.Context(), doc.VideoObjectKey)
	}
	for _, v := range doc.Versions {
		h.files.Remove(r.Context(), v.ObjectKey)
	}

	if err := h.docs.Delete(r.Context(), id); err != nil {
		http.Error(w, `{"error":"delete failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"deleted"}`))
}

// DownloadImage streams the current infographic image from MinIO.
func (h *Handler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.docs.GetByID(r.Context(), id)
	if err != nil || doc.ImageObjectKey == "" {
		http.Error(w, `{"error":"image not available"}`, http.StatusNotFound)
		return
	}

	data, ct, err := h.files.Download(r.Context(), doc.ImageObjectKey)
	if err != nil {
		http.Error(w, `{"error":"download failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", "attachment; filename=infographic.png")
	w.Write(data)
}

// DownloadVideo streams the animation from MinIO.
func (h *Handler) DownloadVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := h.docs.GetByID(r.Context(), id)
	if err != nil || doc.VideoObjectKey == "" {
		http.Error(w, `{"error":"video not available"}`, http.StatusNotFound)
		return
	}

	data, _, err := h.files.Download(r.Context(), doc.VideoObjectKey)
	if err != nil {
		http.Error(w, `{"error":"download failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Disposition", "attachment; filename=animation.mp4")
	w.Write(data)
}

// objectKey builds a unique MinIO key under the user's prefix.
func objectKey(userID, contentType string) string {
	ext := ".png"
	if contentType == "image/jpeg" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%s/%s%s", userID, uuid.New(), ext)
}
