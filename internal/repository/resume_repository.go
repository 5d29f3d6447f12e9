package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

const resumeColumns = `id, user_id, title, full_name, email, phone, location,
	linkedin_url, website_url, personal_summary, work_experience, education,
	skills, additional_sections, is_active, created_at, updated_at`

type resumeRepository struct {
	db *sql.DB
}

func NewResumeRepository(db *sql.DB) domain.ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) ListActive(ctx context.Context, ownerID uuid.UUID) ([]*domain.Resume, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM resumes
		WHERE user_id = $1 AND is_active = true
		ORDER BY updated_at DESC`, resumeColumns)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []*domain.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}

	if resumes == nil {
		resumes = []*domain.Resume{}
	}
	return resumes, nil
}

func (r *resumeRepository) GetActiveByID(ctx context.Context, id, ownerID uuid.UUID) (*domain.Resume, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM resumes
		WHERE id = $1 AND user_id = $2 AND is_active = true`, resumeColumns)

	resume, err := scanResume(r.db.QueryRowContext(ctx, query, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return resume, nil
}

func (r *resumeRepository) Create(ctx context.Context, ownerID uuid.UUID, resume *domain.Resume) (*domain.Resume, error) {
	created := *resume
	created.ID = uuid.New()
	created.UserID = ownerID
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	row, err := ToRow(&created)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO resumes (id, user_id, title, full_name, email, phone, location,
			linkedin_url, website_url, personal_summary, work_experience, education,
			skills, additional_sections, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.UserID, row.Title, row.FullName, row.Email, row.Phone,
		row.Location, row.LinkedinURL, row.WebsiteURL, row.PersonalSummary,
		row.WorkExperience, row.Education, row.Skills, row.AdditionalSections,
		row.IsActive, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}

	return &created, nil
}

// Update fetches the current row, merges the patch over it, and writes the
// merged resume back. Nil patch fields are left untouched.
func (r *resumeRepository) Update(ctx context.Context, id, ownerID uuid.UUID, patch *domain.ResumePatch) (*domain.Resume, error) {
	existing, err := r.GetActiveByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	patch.Apply(existing)
	existing.BeforeSave()
	existing.NormalizeCollections()
	existing.UpdatedAt = time.Now().UTC()

	row, err := ToRow(existing)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE resumes
		SET title = $3, full_name = $4, email = $5, phone = $6, location = $7,
			linkedin_url = $8, website_url = $9, personal_summary = $10,
			work_experience = $11, education = $12, skills = $13,
			additional_sections = $14, updated_at = $15
		WHERE id = $1 AND user_id = $2 AND is_active = true`

	result, err := r.db.ExecContext(ctx, query,
		row.ID, row.UserID, row.Title, row.FullName, row.Email, row.Phone,
		row.Location, row.LinkedinURL, row.WebsiteURL, row.PersonalSummary,
		row.WorkExperience, row.Education, row.Skills, row.AdditionalSections,
		row.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}

	return existing, nil
}

// SoftDelete flips is_active; the row is never physically removed by user
// action.
func (r *resumeRepository) SoftDelete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		UPDATE resumes
		SET is_active = false, updated_at = $3
		WHERE id = $1 AND user_id = $2 AND is_active = true`

	result, err := r.db.ExecContext(ctx, query, id, ownerID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(s rowScanner) (*domain.Resume, error) {
	row := &ResumeRow{}
	var (
		fullName, email, phone, location sql.NullString
		linkedin, website, summary       sql.NullString
		work, education, skills, extra   []byte
	)

	err := s.Scan(
		&row.ID, &row.UserID, &row.Title,
		&fullName, &email, &phone, &location,
		&linkedin, &website, &summary,
		&work, &education, &skills, &extra,
		&row.IsActive, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	row.FullName = fullName.String
	row.Email = email.String
	row.Phone = phone.String
	row.Location = location.String
	row.LinkedinURL = linkedin.String
	row.WebsiteURL = website.String
	row.PersonalSummary = summary.String
	row.WorkExperience = work
	row.Education = education
	row.Skills = skills
	row.AdditionalSections = extra

	return FromRow(row)
}
