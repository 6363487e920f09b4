package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeparser/api/http/presenter"
	"github.com/artem13815/resumeparser/pkg/resume"
)

type fakeParser struct {
	parsed resume.ParsedResume
	err    error
	paths  []string
}

func (p *fakeParser) ParseFile(_ context.Context, path string) (resume.ParsedResume, error) {
	p.paths = append(p.paths, path)
	return p.parsed, p.err
}

func (p *fakeParser) ParseText(text string) resume.ParsedResume {
	return resume.ParsedResume{RawText: text}
}

type fakeRepo struct {
	stored   []resume.ParsedResume
	files    []string
	queries  []resume.SearchQuery
	results  []resume.SearchResult
	records  map[int64]resume.Record
	stats    resume.Stats
	failWith error
}

func (r *fakeRepo) Store(_ context.Context, p resume.ParsedResume, sourceFile string) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	r.stored = append(r.stored, p)
	r.files = append(r.files, sourceFile)
	return int64(len(r.stored)), nil
}

func (r *fakeRepo) Search(_ context.Context, q resume.SearchQuery) ([]resume.SearchResult, error) {
	r.queries = append(r.queries, q)
	return r.results, r.failWith
}

func (r *fakeRepo) Get(_ context.Context, id int64) (resume.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return resume.Record{}, resume.ErrNotFound
	}
	return rec, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) (resume.Record, error) {
	rec, err := r.Get(ctx, id)
	if err == nil {
		delete(r.records, id)
	}
	return rec, err
}

func (r *fakeRepo) Stats(context.Context) (resume.Stats, error) {
	return r.stats, r.failWith
}

func sp(s string) *string { return &s }

func newTestApp(t *testing.T, p *fakeParser, repo *fakeRepo) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	h := NewResumesHandler(p, repo, dir, 1<<20)
	h.now = func() time.Time { return time.Unix(1700000000, 0) }

	app := fiber.New(fiber.Config{ErrorHandler: presenter.ErrorHandler})
	app.Post("/upload", h.Upload)
	app.Get("/search", h.Search)
	app.Get("/api/stats", h.Stats)
	app.Get("/resumes/:id", h.Get)
	app.Delete("/resumes/:id", h.Delete)
	return app, dir
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, w.WriteField("comment", "no file"))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doUpload(t *testing.T, app *fiber.App, field, filename string, content []byte) (int, map[string]any) {
	t.Helper()
	body, ct := multipartBody(t, field, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", ct)
	return doJSON(t, app, req)
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestUpload_Success(t *testing.T) {
	p := &fakeParser{parsed: resume.ParsedResume{
		Contact:    resume.ContactInfo{Name: sp("Jane Doe"), Email: sp("jane@example.com")},
		Skills:     []string{"Python", "Java", "Go", "React", "Sql", "Docker"},
		Education:  []resume.EducationEntry{{Degree: sp("Bachelor")}},
		Experience: []resume.ExperienceEntry{{Title: sp("Senior Developer")}, {Title: sp("Intern")}},
	}}
	repo := &fakeRepo{}
	app, dir := newTestApp(t, p, repo)

	code, body := doUpload(t, app, "resume", "jane.pdf", []byte("%PDF-1.4"))

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Resume parsed successfully! Resume ID: 1", body["message"])
	assert.EqualValues(t, 1, body["resume_id"])
	data := body["extracted_data"].(map[string]any)
	assert.Equal(t, "Jane Doe", data["name"])
	assert.Equal(t, "jane@example.com", data["email"])
	assert.EqualValues(t, 6, data["skills_count"])
	assert.Len(t, data["skills"], 5)
	assert.EqualValues(t, 1, data["education_count"])
	assert.EqualValues(t, 2, data["experience_count"])

	require.Len(t, p.paths, 1)
	assert.Equal(t, dir, filepath.Dir(p.paths[0]))
	assert.Regexp(t, `^resume_1700000000000000000_[0-9a-f]{8}_jane\.pdf$`, filepath.Base(p.paths[0]))
	assert.Equal(t, p.paths, repo.files)
	_, err := os.Stat(p.paths[0])
	assert.NoError(t, err)
}

func TestUpload_AcceptsFileField(t *testing.T) {
	app, _ := newTestApp(t, &fakeParser{}, &fakeRepo{})

	code, _ := doUpload(t, app, "file", "cv.docx", []byte("PK"))

	assert.Equal(t, http.StatusOK, code)
}

func TestUpload_MissingFile(t *testing.T) {
	app, _ := newTestApp(t, &fakeParser{}, &fakeRepo{})

	code, body := doUpload(t, app, "", "", nil)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No file uploaded", body["error"])
}

func TestUpload_EmptyFilename(t *testing.T) {
	app, _ := newTestApp(t, &fakeParser{}, &fakeRepo{})

	code, body := doUpload(t, app, "resume", "", []byte("x"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No file selected", body["error"])
}

func TestUpload_UnsupportedTypeNeverParsed(t *testing.T) {
	p := &fakeParser{}
	repo := &fakeRepo{}
	app, dir := newTestApp(t, p, repo)

	code, body := doUpload(t, app, "resume", "notes.txt", []byte("hello"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Unsupported file type. Use PDF, DOC or DOCX", body["error"])
	assert.Empty(t, p.paths)
	assert.Empty(t, repo.stored)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpload_TooLarge(t *testing.T) {
	p := &fakeParser{}
	app, _ := newTestApp(t, p, &fakeRepo{})

	code, _ := doUpload(t, app, "resume", "big.pdf", bytes.Repeat([]byte("a"), 2<<20))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Empty(t, p.paths)
}

func TestUpload_ParseFailureHidesDetails(t *testing.T) {
	p := &fakeParser{err: &resume.ExtractionError{Path: "/secret/path/x.pdf", Err: io.ErrUnexpectedEOF}}
	app, _ := newTestApp(t, p, &fakeRepo{})

	code, body := doUpload(t, app, "resume", "x.pdf", []byte("%PDF"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Processing failed", body["error"])
}

func TestSearch_BySkills(t *testing.T) {
	repo := &fakeRepo{results: []resume.SearchResult{{ID: 3, Skills: []string{"Python"}}}}
	app, _ := newTestApp(t, &fakeParser{}, repo)

	code, body := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/search?skills=python,%20react,,&q=jane", nil))

	require.Equal(t, http.StatusOK, code)
	require.Len(t, repo.queries, 1)
	assert.Equal(t, []string{"python", "react"}, repo.queries[0].Skills)
	assert.Equal(t, "jane", repo.queries[0].Query)
	assert.EqualValues(t, 1, body["count"])
	assert.Equal(t, "jane", body["query"])
	assert.Equal(t, []any{"python", "react"}, body["skills_filter"])
}

func TestSearch_NoFilters(t *testing.T) {
	repo := &fakeRepo{results: []resume.SearchResult{}}
	app, _ := newTestApp(t, &fakeParser{}, repo)

	code, body := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/search", nil))

	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["query"])
	assert.Nil(t, body["skills_filter"])
	assert.Equal(t, []any{}, body["results"])
	assert.Equal(t, resume.SearchQuery{}, repo.queries[0])
}

func TestStats(t *testing.T) {
	repo := &fakeRepo{stats: resume.Stats{TotalResumes: 2, TotalEducation: 3, TotalExperience: 4, Database: "localhost:5432/resumes"}}
	app, _ := newTestApp(t, &fakeParser{}, repo)

	code, body := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusOK, code)
	st := body["stats"].(map[string]any)
	assert.EqualValues(t, 2, st["total_resumes"])
	assert.EqualValues(t, 3, st["total_education_records"])
	assert.EqualValues(t, 4, st["total_experience_records"])
	assert.Equal(t, "localhost:5432/resumes", st["database_file"])
}

func TestGetAndDelete(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "resume_1_abc_cv.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF"), 0o600))
	repo := &fakeRepo{records: map[int64]resume.Record{5: {ID: 5, Name: sp("Jane Doe"), SourceFile: src}}}
	app, _ := newTestApp(t, &fakeParser{}, repo)

	code, body := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/resumes/5", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Jane Doe", body["name"])

	code, _ = doJSON(t, app, httptest.NewRequest(http.MethodDelete, "/resumes/5", nil))
	assert.Equal(t, http.StatusNoContent, code)
	_, err := os.Stat(src)
	assert.ErrorIs(t, err, os.ErrNotExist)

	code, body = doJSON(t, app, httptest.NewRequest(http.MethodGet, "/resumes/5", nil))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "resume not found", body["error"])

	code, _ = doJSON(t, app, httptest.NewRequest(http.MethodDelete, "/resumes/5", nil))
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, app, httptest.NewRequest(http.MethodGet, "/resumes/abc", nil))
	assert.Equal(t, http.StatusBadRequest, code)
}
