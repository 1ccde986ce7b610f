package infographic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/infographic-ai/backend/internal/gemini"
	"github.com/arjun/infographic-ai/backend/internal/models"
)

// ── fakes ────────────────────────────────────────────────────

type fakeDocs struct {
	docs    map[string]*models.Infographic
	nextID  int
	lastSet string // last video key recorded
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: map[string]*models.Infographic{}}
}

func (f *fakeDocs) Insert(ctx context.Context, doc *models.Infographic) (string, error) {
	f.nextID++
	id := fmt.Sprintf("doc-%d", f.nextID)
	copied := *doc
	f.docs[id] = &copied
	return id, nil
}

func (f *fakeDocs) ListByUser(ctx context.Context, userID string) ([]models.Infographic, error) {
	var out []models.Infographic
	for _, d := range f.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDocs) GetByID(ctx context.Context, id string) (*models.Infographic, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return d, nil
}

func (f *fakeDocs) AppendVersion(ctx context.Context, id string, version models.ImageVersion, newImageKey string) error {
	d := f.docs[id]
	d.Versions = append(d.Versions, version)
	d.ImageObjectKey = newImageKey
	return nil
}

func (f *fakeDocs) SetVideoKey(ctx context.Context, id, key string) error {
	f.docs[id].VideoObjectKey = key
	f.lastSet = key
	return nil
}

func (f *fakeDocs) Delete(ctx context.Context, id string) error {
	delete(f.docs, id)
	return nil
}

type fakeFiles struct {
	objects map[string][]byte
	types   map[string]string
	removed []string
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeFiles) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	f.objects[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeFiles) Download(ctx context.Context, key string) ([]byte, string, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, "", errors.New("no such object")
	}
	return data, f.types[key], nil
}

func (f *fakeFiles) Remove(ctx context.Context, key string) error {
	f.removed = append(f.removed, key)
	delete(f.objects, key)
	return nil
}

type fakeGen struct {
	researchErr error
	animateErr  error
	editErr     error

	animatedWith string
}

func (f *fakeGen) Research(ctx context.Context, topic string, level models.ComplexityLevel, style models.VisualStyle, language models.Language) (*models.ResearchResult, error) {
	if f.researchErr != nil {
		return nil, f.researchErr
	}
	return &models.ResearchResult{
		ImagePrompt: "an infographic about " + topic,
		Facts:       []string{"fact one", "fact two"},
		Sources:     []models.Source{{Title: "Ref", URL: "https://ref.example"}},
	}, nil
}

func (f *fakeGen) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	return []byte("png-bytes"), "image/png", nil
}

func (f *fakeGen) EditImage(ctx context.Context, instruction string, image []byte, mimeType string) ([]byte, string, error) {
	if f.editErr != nil {
		return nil, "", f.editErr
	}
	return []byte("edited-bytes"), "image/png", nil
}

func (f *fakeGen) Animate(ctx context.Context, imageData string, style models.VisualStyle) ([]byte, error) {
	if f.animateErr != nil {
		return nil, f.animateErr
	}
	f.animatedWith = imageData
	return []byte("mp4-bytes"), nil
}

// ── helpers ──────────────────────────────────────────────────

func authedRequest(method, path string, body string, userID string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	return r.WithContext(context.WithValue(r.Context(), "user_id", userID))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func seedDoc(docs *fakeDocs, files *fakeFiles, userID string) string {
	id, _ := docs.Insert(context.Background(), &models.Infographic{
		UserID:         userID,
		Topic:          "volcanoes",
		Style:          models.StyleCinematic,
		ImageObjectKey: userID + "/current.png",
	})
	files.Upload(context.Background(), userID+"/current.png", []byte("png-bytes"), "image/png")
	return id
}

// ── tests ────────────────────────────────────────────────────

func TestCreateHappyPath(t *testing.T) {
	docs, files := newFakeDocs(), newFakeFiles()
	h := NewHandler(docs, files, &fakeGen{}, "gemini-2.5-flash")

	w := httptest.NewRecorder()
	h.Create(w, authedRequest("POST", "/api/infographics", `{"topic":"volcanoes"}`, "u1"))

	require.Equal(t, http.StatusCreated, w.Code)

	var saved models.Infographic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Equal(t, "volcanoes", saved.Topic)
	assert.Equal(t, models.LevelHighSchool, saved.Level)
	assert.Equal(t, []string{"fact one", "fact two"}, saved.Facts)
	assert.Contains(t, saved.ImagePrompt, "volcanoes")
	require.NotEmpty(t, saved.ImageObjectKey)
	assert.True(t, strings.HasPrefix(saved.ImageObjectKey, "u1/"))
	assert.Equal(t, []byte("png-bytes"), files.objects[saved.ImageObjectKey])
}

func TestCreateRequiresTopic(t *testing.T) {
	h := NewHandler(newFakeDocs(), newFakeFiles(), &fakeGen{}, "m")

	w := httptest.NewRecorder()
	h.Create(w, authedRequest("POST", "/api/infographics", `{"topic":""}`, "u1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateResearchFailureIsBadGateway(t *testing.T) {
	gen := &fakeGen{researchErr: &gemini.GenerationError{Op: "research", Err: errors.New("model down")}}
	h := NewHandler(newFakeDocs(), newFakeFiles(), gen, "m")

	w := httptest.NewRecorder()
	h.Create(w, authedRequest("POST", "/api/infographics", `{"topic":"volcanoes"}`, "u1"))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Research failed")
}

func TestEditAppendsVersion(t *testing.T) {
	docs, files := newFakeDocs(), newFakeFiles()
	id := seedDoc(docs, files, "u1")
	h := NewHandler(docs, files, &fakeGen{}, "m")

	r := withURLParam(authedRequest("POST", "/api/infographics/"+id+"/edit", `{"instruction":"make it blue"}`, "u1"), "id", id)
	w := httptest.NewRecorder()
	h.Edit(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	doc := docs.docs[id]
	require.Len(t, doc.Versions, 1)
	assert.Equal(t, "u1/current.png", doc.Versions[0].ObjectKey)
	assert.Equal(t, "make it blue", doc.Versions[0].Instruction)
	assert.NotEqual(t, "u1/current.png", doc.ImageObjectKey)
	assert.Equal(t, []byte("edited-bytes"), files.objects[doc.ImageObjectKey])
}

func TestEditRequiresInstruction(t *testing.T) {
	docs, files := newFakeDocs(), newFakeFiles()
	id := seedDoc(docs, files, "u1")
	h := NewHandler(docs, files, &fakeGen{}, "m")

	r := withURLParam(authedRequest("POST", "/api/infographics/"+id+"/edit", `{}`, "u1"), "id", id)
	w := httptest.NewRecorder()
	h.Edit(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnimateStoresVideo(t *testing.T) {
	docs, files := newFakeDocs(), newFakeFiles()
	id := seedDoc(docs, files, "u1")
	gen := &fakeGen{}
	h := NewHandler(docs, files, gen, "m")

	r := withURLParam(authedRequest("POST", "/api/infographics/"+id+"/animate", "", "u1"), "id", id)
	w := httptest.NewRecorder()
	h.Animate(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	// The image travels to the generator as a data uri of the stored bytes.
	assert.Equal(t, gemini.EncodeDataURI([]byte("png-bytes"), "image/png"), gen.animatedWith)
	require.NotEmpty(t, docs.lastSet)
	assert.Equal(t, []byte("mp4-bytes"), files.objects[docs.lastSet])
}

func TestAnimateFailureIsBadGateway(t *testing.T) {
	docs, files := newFakeDocs(), newFakeFiles()
	id := seedDoc(docs, files, "u1")
	gen := &fakeGen{animateErr: &gemini.GenerationError{Op: "animate", Err: errors.New("job lost")}}
	h := NewHandler(docs, files, gen, "m")

	r := withURLParam(authedRequest("POST", "/api/infographics/"+id+"/animate", "", "u1"), "id", id)
	w := httptest.NewRecorder()
	h.Animate(w, r)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDeleteRemovesAssets(t *testing.T) {
	docs, files := newFakeDocs(), newFakeFiles()
	id := seedDoc(docs, files, "u1")
	docs.docs[id].VideoObjectKey = "u1/video.mp4"
	docs.docs[id].Versions = []models.ImageVersion{{ObjectKey: "u1/old.png"}}
	h := NewHandler(docs, files, &fakeGen{}, "m")

	r := withURLParam(authedRequest("DELETE", "/api/infographics/"+id, "", "u1"), "id", id)
	w := httptest.NewRecorder()
	h.Delete(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, docs.docs)
	assert.ElementsMatch(t, []string{"u1/current.png", "u1/video.mp4", "u1/old.png"}, files.removed)
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	h := NewHandler(newFakeDocs(), newFakeFiles(), &fakeGen{}, "m")

	r := withURLParam(authedRequest("GET", "/api/infographics/missing", "", "u1"), "id", "missing")
	w := httptest.NewRecorder()
	h.Get(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
