package handler

import (
	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

// ResumeRequest is the create payload. Collections default to empty when
// omitted.
type ResumeRequest struct {
	Title          string                 `json:"title" binding:"required"`
	PersonalInfo   domain.PersonalInfo    `json:"personal_info"`
	Experience     []domain.Experience    `json:"experience"`
	Education      []domain.Education     `json:"education"`
	Projects       []domain.Project       `json:"projects"`
	Skills         []domain.Skill         `json:"skills"`
	Certifications []domain.Certification `json:"certifications"`
}

func (r *ResumeRequest) ToResume() *domain.Resume {
	resume := domain.NewResume()
	resume.Title = r.Title
	resume.PersonalInfo = r.PersonalInfo
	if r.Experience != nil {
		resume.Experience = r.Experience
	}
	if r.Education != nil {
		resume.Education = r.Education
	}
	if r.Projects != nil {
		resume.Projects = r.Projects
	}
	if r.Skills != nil {
		resume.Skills = r.Skills
	}
	if r.Certifications != nil {
		resume.Certifications = r.Certifications
	}
	return resume
}

// UpdateResumeRequest is the partial-update payload; absent fields leave the
// stored value alone.
type UpdateResumeRequest struct {
	Title          *string                 `json:"title"`
	PersonalInfo   *domain.PersonalInfo    `json:"personal_info"`
	Experience     *[]domain.Experience    `json:"experience"`
	Education      *[]domain.Education     `json:"education"`
	Projects       *[]domain.Project       `json:"projects"`
	Skills         *[]domain.Skill         `json:"skills"`
	Certifications *[]domain.Certification `json:"certifications"`
}

func (r *UpdateResumeRequest) ToPatch() *domain.ResumePatch {
	return &domain.ResumePatch{
		Title:          r.Title,
		PersonalInfo:   r.PersonalInfo,
		Experience:     r.Experience,
		Education:      r.Education,
		Projects:       r.Projects,
		Skills:         r.Skills,
		Certifications: r.Certifications,
	}
}

// DraftRequest wraps the working resume the client autosaves.
type DraftRequest struct {
	Resume domain.Resume `json:"resume" binding:"required"`
}
