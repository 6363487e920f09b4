package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumeparser/pkg/nlp"
	"github.com/artem13815/resumeparser/pkg/resume"
)

// ResumeRepository хранит распарсенные резюме, их образование и опыт.
type ResumeRepository struct {
	pool     *pgxpool.Pool
	database string
}

// NewResumeRepository expects the schema to be migrated already (see storage/postgres.Connect).
// database is the label reported by Stats.
func NewResumeRepository(pool *pgxpool.Pool, database string) *ResumeRepository {
	return &ResumeRepository{pool: pool, database: database}
}

var _ resume.Repository = (*ResumeRepository)(nil)

// Store inserts the parent row and every child row in one transaction.
func (r *ResumeRepository) Store(ctx context.Context, p resume.ParsedResume, sourceFile string) (int64, error) {
	p = sanitizeParsed(p)
	skills, err := encodeSkills(p.Skills)
	if err != nil {
		return 0, err
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	c := p.Contact
	err = tx.QueryRow(ctx, `
INSERT INTO resumes (name, email, phone, address, linkedin, skills, raw_text, source_file)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`, c.Name, c.Email, c.Phone, c.Address, c.LinkedIn, skills, p.RawText, sourceFile).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert resume: %w", err)
	}

	for _, e := range p.Education {
		_, err = tx.Exec(ctx, `
INSERT INTO education (resume_id, degree, institution, year, gpa)
VALUES ($1, $2, $3, $4, $5)
`, id, e.Degree, e.Institution, e.Year, e.GPA)
		if err != nil {
			return 0, fmt.Errorf("insert education: %w", err)
		}
	}
	for _, x := range p.Experience {
		_, err = tx.Exec(ctx, `
INSERT INTO experience (resume_id, title, company, duration, description)
VALUES ($1, $2, $3, $4, $5)
`, id, x.Title, x.Company, x.Duration, x.Description)
		if err != nil {
			return 0, fmt.Errorf("insert experience: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit resume: %w", err)
	}
	return id, nil
}

const searchSelect = `
SELECT r.id, r.name, r.email, r.phone, r.address, r.linkedin, r.skills, r.raw_text, r.created_at,
	(SELECT string_agg(e.degree, ',' ORDER BY e.id) FROM education e WHERE e.resume_id = r.id) AS degrees,
	(SELECT string_agg(x.title, ',' ORDER BY x.id) FROM experience x WHERE x.resume_id = r.id) AS job_titles
FROM resumes r`

const searchOrder = `
ORDER BY r.created_at DESC, r.id DESC`

// Search matches skills against the serialized skill list (each skill quoted, so only whole
// labels match) or free text against name and raw text. Newest first.
func (r *ResumeRepository) Search(ctx context.Context, q resume.SearchQuery) ([]resume.SearchResult, error) {
	sql, args := buildSearch(q)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search resumes: %w", err)
	}
	defer rows.Close()

	res := make([]resume.SearchResult, 0)
	for rows.Next() {
		var (
			s      resume.SearchResult
			skills string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.LinkedIn,
			&skills, &s.RawText, &s.CreatedAt, &s.Degrees, &s.JobTitles); err != nil {
			return nil, err
		}
		s.Skills = decodeSkills(skills)
		s.CreatedAt = s.CreatedAt.UTC()
		res = append(res, s)
	}
	return res, rows.Err()
}

func buildSearch(q resume.SearchQuery) (string, []any) {
	if len(q.Skills) > 0 {
		conds := make([]string, 0, len(q.Skills))
		args := make([]any, 0, len(q.Skills))
		for i, s := range q.Skills {
			conds = append(conds, fmt.Sprintf("r.skills ILIKE $%d", i+1))
			args = append(args, `%"`+escapeLike(nlp.NormalizeSkill(s))+`"%`)
		}
		return searchSelect + "\nWHERE " + strings.Join(conds, " OR ") + searchOrder, args
	}
	if q.Query != "" {
		return searchSelect + "\nWHERE r.raw_text ILIKE $1 OR r.name ILIKE $1" + searchOrder,
			[]any{"%" + escapeLike(q.Query) + "%"}
	}
	return searchSelect + searchOrder, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func (r *ResumeRepository) Get(ctx context.Context, id int64) (resume.Record, error) {
	return r.get(ctx, r.pool, id)
}

// Delete removes the resume; education and experience rows go with it via ON DELETE CASCADE.
func (r *ResumeRepository) Delete(ctx context.Context, id int64) (resume.Record, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return resume.Record{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rec, err := r.get(ctx, tx, id)
	if err != nil {
		return resume.Record{}, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id); err != nil {
		return resume.Record{}, fmt.Errorf("delete resume: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return resume.Record{}, fmt.Errorf("commit delete: %w", err)
	}
	return rec, nil
}

func (r *ResumeRepository) Stats(ctx context.Context) (resume.Stats, error) {
	st := resume.Stats{Database: r.database}
	err := r.pool.QueryRow(ctx, `
SELECT
	(SELECT COUNT(*) FROM resumes),
	(SELECT COUNT(*) FROM education),
	(SELECT COUNT(*) FROM experience)
`).Scan(&st.TotalResumes, &st.TotalEducation, &st.TotalExperience)
	if err != nil {
		return resume.Stats{}, fmt.Errorf("count resumes: %w", err)
	}
	return st, nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *ResumeRepository) get(ctx context.Context, q querier, id int64) (resume.Record, error) {
	var (
		rec     resume.Record
		skills  string
		created time.Time
	)
	err := q.QueryRow(ctx, `
SELECT id, name, email, phone, address, linkedin, skills, raw_text, source_file, created_at
FROM resumes WHERE id = $1
`, id).Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Phone, &rec.Address, &rec.LinkedIn,
		&skills, &rec.RawText, &rec.SourceFile, &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Record{}, resume.ErrNotFound
		}
		return resume.Record{}, err
	}
	rec.Skills = decodeSkills(skills)
	rec.CreatedAt = created.UTC()

	rows, err := q.Query(ctx, `
SELECT degree, institution, year, gpa FROM education WHERE resume_id = $1 ORDER BY id
`, id)
	if err != nil {
		return resume.Record{}, err
	}
	rec.Education, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (resume.EducationEntry, error) {
		var e resume.EducationEntry
		err := row.Scan(&e.Degree, &e.Institution, &e.Year, &e.GPA)
		return e, err
	})
	if err != nil {
		return resume.Record{}, err
	}

	rows, err = q.Query(ctx, `
SELECT title, company, duration, description FROM experience WHERE resume_id = $1 ORDER BY id
`, id)
	if err != nil {
		return resume.Record{}, err
	}
	rec.Experience, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (resume.ExperienceEntry, error) {
		var x resume.ExperienceEntry
		err := row.Scan(&x.Title, &x.Company, &x.Duration, &x.Description)
		return x, err
	})
	if err != nil {
		return resume.Record{}, err
	}
	return rec, nil
}

func encodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("encode skills: %w", err)
	}
	return string(b), nil
}

// sanitizeText drops NUL and invalid UTF-8, both of which Postgres TEXT rejects.
// PDF fonts without a ToUnicode map can decode to either.
func sanitizeText(s string) string {
	return strings.ToValidUTF8(strings.ReplaceAll(s, "\x00", ""), "")
}

func sanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := sanitizeText(*s)
	return &v
}

// sanitizeParsed returns a copy safe to insert; the caller's slices are not modified.
func sanitizeParsed(p resume.ParsedResume) resume.ParsedResume {
	c := p.Contact
	p.Contact = resume.ContactInfo{
		Name:     sanitizePtr(c.Name),
		Email:    sanitizePtr(c.Email),
		Phone:    sanitizePtr(c.Phone),
		Address:  sanitizePtr(c.Address),
		LinkedIn: sanitizePtr(c.LinkedIn),
	}
	p.RawText = sanitizeText(p.RawText)

	skills := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		skills[i] = sanitizeText(s)
	}
	p.Skills = skills

	edu := make([]resume.EducationEntry, len(p.Education))
	for i, e := range p.Education {
		edu[i] = resume.EducationEntry{
			Degree:      sanitizePtr(e.Degree),
			Institution: sanitizePtr(e.Institution),
			Year:        sanitizePtr(e.Year),
			GPA:         sanitizePtr(e.GPA),
		}
	}
	p.Education = edu

	exp := make([]resume.ExperienceEntry, len(p.Experience))
	for i, x := range p.Experience {
		exp[i] = resume.ExperienceEntry{
			Title:       sanitizePtr(x.Title),
			Company:     sanitizePtr(x.Company),
			Duration:    sanitizePtr(x.Duration),
			Description: sanitizePtr(x.Description),
		}
	}
	p.Experience = exp
	return p
}

// decodeSkills tolerates malformed blobs by returning an empty list.
func decodeSkills(blob string) []string {
	out := []string{}
	if blob == "" {
		return out
	}
	if err := json.Unmarshal([]byte(blob), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
