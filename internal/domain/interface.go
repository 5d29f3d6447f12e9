package domain

import (
	"context"

	"github.com/google/uuid"
)

// ResumePatch carries a partial update; nil fields are left untouched by
// the storage layer.
type ResumePatch struct {
	Title          *string          `json:"title,omitempty"`
	PersonalInfo   *PersonalInfo    `json:"personal_info,omitempty"`
	Experience     *[]Experience    `json:"experience,omitempty"`
	Education      *[]Education     `json:"education,omitempty"`
	Projects       *[]Project       `json:"projects,omitempty"`
	Skills         *[]Skill         `json:"skills,omitempty"`
	Certifications *[]Certification `json:"certifications,omitempty"`
}

// Apply merges the patch into the resume.
func (p *ResumePatch) Apply(r *Resume) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.PersonalInfo != nil {
		r.PersonalInfo = *p.PersonalInfo
	}
	if p.Experience != nil {
		r.Experience = *p.Experience
	}
	if p.Education != nil {
		r.Education = *p.Education
	}
	if p.Projects != nil {
		r.Projects = *p.Projects
	}
	if p.Skills != nil {
		r.Skills = *p.Skills
	}
	if p.Certifications != nil {
		r.Certifications = *p.Certifications
	}
}

// ResumeRepository is the canonical store. Every operation is scoped to the
// owner; rows with is_active=false are invisible to all reads.
type ResumeRepository interface {
	ListActive(ctx context.Context, ownerID uuid.UUID) ([]*Resume, error)
	GetActiveByID(ctx context.Context, id, ownerID uuid.UUID) (*Resume, error)
	Create(ctx context.Context, ownerID uuid.UUID, resume *Resume) (*Resume, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, patch *ResumePatch) (*Resume, error)
	SoftDelete(ctx context.Context, id, ownerID uuid.UUID) error
}

// DraftStore holds the serialized working resume for in-progress-edit
// recovery. Never the system of record.
type DraftStore interface {
	Save(ctx context.Context, ownerID uuid.UUID, resume *Resume) error
	// Load returns (nil, nil) when no draft exists and ErrMalformedRecord
	// when a stored draft cannot be decoded.
	Load(ctx context.Context, ownerID uuid.UUID) (*Resume, error)
	Clear(ctx context.Context, ownerID uuid.UUID) error
}
