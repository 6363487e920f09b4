package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/resumeparser/api/http/presenter"
	"github.com/artem13815/resumeparser/pkg/resume"
)

// uploadField is the multipart field used by the upload form; "file" is accepted as well.
const uploadField = "resume"

type ResumesHandler struct {
	parser   resume.ParserUseCase
	repo     resume.Repository
	maxBytes int64
	baseDir  string
	now      func() time.Time
}

func NewResumesHandler(parser resume.ParserUseCase, repo resume.Repository, baseDir string, maxBytes int64) *ResumesHandler {
	if baseDir == "" {
		baseDir = "uploads"
	}
	if maxBytes <= 0 {
		maxBytes = 15 << 20 // 15MB
	}
	return &ResumesHandler{
		parser:   parser,
		repo:     repo,
		maxBytes: maxBytes,
		baseDir:  baseDir,
		now:      time.Now,
	}
}

type extractedData struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	SkillsCount     int      `json:"skills_count"`
	Skills          []string `json:"skills"`
	EducationCount  int      `json:"education_count"`
	ExperienceCount int      `json:"experience_count"`
}

type uploadResponse struct {
	Success       bool          `json:"success"`
	Message       string        `json:"message"`
	ResumeID      int64         `json:"resume_id"`
	ExtractedData extractedData `json:"extracted_data"`
}

// Upload принимает файл резюме, сохраняет его на диск, извлекает поля и пишет их в БД.
// @Summary     Загрузить и распарсить резюме
// @Description Принимает PDF/DOC/DOCX, извлекает контакты, навыки, образование и опыт.
// @Tags        Резюме
// @Accept      multipart/form-data
// @Produce     json
// @Param       resume formData file true "Файл резюме (PDF/DOC/DOCX)"
// @Success     200 {object} uploadResponse
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /resumes [post]
func (h *ResumesHandler) Upload(c *fiber.Ctx) error {
	fh, problem := h.formFile(c)
	if fh == nil {
		return presenter.Error(c, http.StatusBadRequest, problem)
	}
	if _, err := resume.DetectFormat(fh.Filename); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Unsupported file type. Use PDF, DOC or DOCX")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("file too large: limit is %d bytes", h.maxBytes))
	}

	if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
		log.Printf("upload: prepare storage: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Processing failed")
	}
	dst := filepath.Join(h.baseDir, h.storedName(fh.Filename))
	if err := c.SaveFile(fh, dst); err != nil {
		log.Printf("upload: store file: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Processing failed")
	}

	parsed, err := h.parser.ParseFile(c.UserContext(), dst)
	if err != nil {
		log.Printf("upload: parse %s: %v", filepath.Base(dst), err)
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			return presenter.Error(c, http.StatusBadRequest, "Unsupported file type. Use PDF, DOC or DOCX")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Processing failed")
	}
	id, err := h.repo.Store(c.UserContext(), parsed, dst)
	if err != nil {
		log.Printf("upload: store resume: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Processing failed")
	}

	return presenter.JSON(c, http.StatusOK, uploadResponse{
		Success:  true,
		Message:  fmt.Sprintf("Resume parsed successfully! Resume ID: %d", id),
		ResumeID: id,
		ExtractedData: extractedData{
			Name:            parsed.Contact.Name,
			Email:           parsed.Contact.Email,
			SkillsCount:     len(parsed.Skills),
			Skills:          firstN(parsed.Skills, 5),
			EducationCount:  len(parsed.Education),
			ExperienceCount: len(parsed.Experience),
		},
	})
}

// formFile distinguishes a request without a file part from a part with an empty file name.
// When no usable file is present it returns nil and the client-facing reason.
func (h *ResumesHandler) formFile(c *fiber.Ctx) (*multipart.FileHeader, string) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, "No file uploaded"
	}
	for _, field := range []string{uploadField, "file"} {
		if files := form.File[field]; len(files) > 0 && files[0] != nil {
			if files[0].Filename == "" {
				return nil, "No file selected"
			}
			return files[0], ""
		}
		// multipart parts with an empty filename are parsed as plain values
		if _, ok := form.Value[field]; ok {
			return nil, "No file selected"
		}
	}
	return nil, "No file uploaded"
}

// storedName builds "resume_<unixnano>_<id>_<basename>"; the random id keeps two uploads
// of the same file within one clock tick apart.
func (h *ResumesHandler) storedName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("resume_%d_%s_%s", h.now().UnixNano(), suffix, base)
}

type searchResponse struct {
	Success      bool                  `json:"success"`
	Count        int                   `json:"count"`
	Query        *string               `json:"query"`
	SkillsFilter []string              `json:"skills_filter"`
	Results      []resume.SearchResult `json:"results"`
}

// Search ищет резюме по тексту или по списку навыков.
// @Summary     Поиск резюме
// @Description Параметр skills (через запятую) имеет приоритет над q. Без параметров возвращает все резюме.
// @Tags        Резюме
// @Produce     json
// @Param       q      query string false "Подстрока имени или текста резюме"
// @Param       skills query string false "Навыки через запятую, например python,react"
// @Success     200 {object} searchResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /resumes [get]
func (h *ResumesHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	skills := splitSkills(c.Query("skills"))

	results, err := h.repo.Search(c.UserContext(), resume.SearchQuery{Query: q, Skills: skills})
	if err != nil {
		log.Printf("search: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "search failed")
	}
	resp := searchResponse{
		Success:      true,
		Count:        len(results),
		SkillsFilter: skills,
		Results:      results,
	}
	if q != "" {
		resp.Query = &q
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Stats возвращает количество резюме и дочерних записей.
// @Summary Статистика хранилища
// @Tags    Резюме
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /stats [get]
func (h *ResumesHandler) Stats(c *fiber.Ctx) error {
	st, err := h.repo.Stats(c.UserContext())
	if err != nil {
		log.Printf("stats: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to read stats")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"stats":   st,
	})
}

// Get возвращает резюме вместе с образованием и опытом.
// @Summary Получить резюме
// @Tags    Резюме
// @Produce json
// @Param   id path int true "ID резюме"
// @Success 200 {object} resume.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /resumes/{id} [get]
func (h *ResumesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.repo.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		log.Printf("get resume %d: %v", id, err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// Delete удаляет резюме, его дочерние записи и исходный файл.
// @Summary  Удалить резюме
// @Tags     Резюме
// @Param    id path int true "ID резюме"
// @Security BearerAuth
// @Success  204 {object} nil
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /resumes/{id} [delete]
func (h *ResumesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.repo.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "resume not found")
		}
		log.Printf("delete resume %d: %v", id, err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete resume")
	}
	if rec.SourceFile != "" {
		if err := os.Remove(rec.SourceFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("delete resume %d: remove file: %v", id, err)
		}
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
