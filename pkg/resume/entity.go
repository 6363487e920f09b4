package resume

import (
	"context"
	"errors"
	"time"
)

// Common errors returned by the parser and repositories.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format: use PDF or DOCX")
	ErrNotFound          = errors.New("resume not found")
)

// ContactInfo: контактные данные кандидата. Любое поле может отсутствовать.
type ContactInfo struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	LinkedIn *string `json:"linkedin"`
}

type EducationEntry struct {
	Degree      *string `json:"degree"`
	Institution *string `json:"institution"`
	Year        *string `json:"year"`
	GPA         *string `json:"gpa"`
}

type ExperienceEntry struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Duration    *string `json:"duration"`
	Description *string `json:"description"`
}

// ParsedResume is the result of running every field extractor over one document.
// It is built once per file and handed straight to the store.
type ParsedResume struct {
	Contact    ContactInfo       `json:"contact_info"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	RawText    string            `json:"raw_text"`
}

// Record: сохранённое резюме вместе с дочерними записями.
type Record struct {
	ID         int64             `json:"id"`
	Name       *string           `json:"name"`
	Email      *string           `json:"email"`
	Phone      *string           `json:"phone"`
	Address    *string           `json:"address"`
	LinkedIn   *string           `json:"linkedin"`
	Skills     []string          `json:"skills"`
	RawText    string            `json:"raw_text"`
	SourceFile string            `json:"source_file,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
}

// SearchResult is a parent row joined with its children's degree and title strings.
type SearchResult struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	LinkedIn  *string   `json:"linkedin"`
	Skills    []string  `json:"skills"`
	RawText   string    `json:"raw_text"`
	CreatedAt time.Time `json:"created_at"`
	Degrees   *string   `json:"degrees"`
	JobTitles *string   `json:"job_titles"`
}

// SearchQuery selects resumes. Skills wins over Query; both empty returns everything.
type SearchQuery struct {
	Query  string
	Skills []string
}

// Stats: агрегированные счётчики хранилища.
type Stats struct {
	TotalResumes    int64  `json:"total_resumes"`
	TotalEducation  int64  `json:"total_education_records"`
	TotalExperience int64  `json:"total_experience_records"`
	Database        string `json:"database_file"`
}

// Repository: порт хранения распарсенных резюме.
type Repository interface {
	Store(ctx context.Context, p ParsedResume, sourceFile string) (int64, error)
	Search(ctx context.Context, q SearchQuery) ([]SearchResult, error)
	Get(ctx context.Context, id int64) (Record, error)
	// Delete returns the removed record so callers can clean up the stored file.
	Delete(ctx context.Context, id int64) (Record, error)
	Stats(ctx context.Context) (Stats, error)
}

func strPtr(s string) *string { return &s }
