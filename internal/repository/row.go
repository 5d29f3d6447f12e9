package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

// ResumeRow mirrors one row of the resumes table. Personal info is
// flattened into scalar columns; child collections live in jsonb columns,
// with projects and certifications folded into additional_sections.
type ResumeRow struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Title              string
	FullName           string
	Email              string
	Phone              string
	Location           string
	LinkedinURL        string
	WebsiteURL         string
	PersonalSummary    string
	WorkExperience     []byte
	Education          []byte
	Skills             []byte
	AdditionalSections []byte
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type additionalSections struct {
	Projects       []domain.Project       `json:"projects"`
	Certifications []domain.Certification `json:"certifications"`
}

// ToRow flattens a resume into its storage shape.
func ToRow(r *domain.Resume) (*ResumeRow, error) {
	work, err := json.Marshal(orEmpty(r.Experience))
	if err != nil {
		return nil, fmt.Errorf("encode work_experience: %w", err)
	}
	edu, err := json.Marshal(orEmpty(r.Education))
	if err != nil {
		return nil, fmt.Errorf("encode education: %w", err)
	}
	skills, err := json.Marshal(orEmpty(r.Skills))
	if err != nil {
		return nil, fmt.Errorf("encode skills: %w", err)
	}
	additional, err := json.Marshal(additionalSections{
		Projects:       orEmpty(r.Projects),
		Certifications: orEmpty(r.Certifications),
	})
	if err != nil {
		return nil, fmt.Errorf("encode additional_sections: %w", err)
	}

	return &ResumeRow{
		ID:                 r.ID,
		UserID:             r.UserID,
		Title:              r.Title,
		FullName:           r.PersonalInfo.FullName,
		Email:              r.PersonalInfo.Email,
		Phone:              r.PersonalInfo.Phone,
		Location:           r.PersonalInfo.Location,
		LinkedinURL:        r.PersonalInfo.LinkedIn,
		WebsiteURL:         r.PersonalInfo.WebsiteURL,
		PersonalSummary:    r.PersonalInfo.Summary,
		WorkExperience:     work,
		Education:          edu,
		Skills:             skills,
		AdditionalSections: additional,
		IsActive:           true,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}, nil
}

// FromRow rebuilds a resume from its storage shape. Absent optional columns
// come back as empty strings and empty (never nil) collections.
func FromRow(row *ResumeRow) (*domain.Resume, error) {
	r := domain.NewResume()
	r.ID = row.ID
	r.UserID = row.UserID
	r.Title = row.Title
	r.PersonalInfo = domain.PersonalInfo{
		FullName:   row.FullName,
		Email:      row.Email,
		Phone:      row.Phone,
		Location:   row.Location,
		LinkedIn:   row.LinkedinURL,
		WebsiteURL: row.WebsiteURL,
		Summary:    row.PersonalSummary,
	}
	r.CreatedAt = row.CreatedAt
	r.UpdatedAt = row.UpdatedAt

	if err := decodeColumn(row.WorkExperience, &r.Experience, "work_experience"); err != nil {
		return nil, err
	}
	if err := decodeColumn(row.Education, &r.Education, "education"); err != nil {
		return nil, err
	}
	if err := decodeColumn(row.Skills, &r.Skills, "skills"); err != nil {
		return nil, err
	}

	additional, err := decodeAdditionalSections(row.AdditionalSections)
	if err != nil {
		return nil, err
	}
	r.Projects = orEmpty(additional.Projects)
	r.Certifications = orEmpty(additional.Certifications)

	r.NormalizeCollections()
	return r, nil
}

// decodeAdditionalSections tolerates both encodings the backing store has
// used over time: a jsonb object, or a text column holding the JSON of the
// same object. The ambiguity is resolved here and never leaks past the
// storage boundary.
func decodeAdditionalSections(raw []byte) (additionalSections, error) {
	var sections additionalSections
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return sections, nil
	}

	payload := raw
	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return sections, fmt.Errorf("%w: additional_sections: %v", domain.ErrMalformedRecord, err)
		}
		payload = []byte(encoded)
	}

	if err := json.Unmarshal(payload, &sections); err != nil {
		return sections, fmt.Errorf("%w: additional_sections: %v", domain.ErrMalformedRecord, err)
	}
	return sections, nil
}

func decodeColumn[T any](raw []byte, dst *[]T, column string) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*dst = []T{}
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedRecord, column, err)
	}
	if *dst == nil {
		*dst = []T{}
	}
	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
