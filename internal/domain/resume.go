package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SummaryLimit is the soft cap on the personal summary, surfaced to the UI
// as a character counter. Longer summaries are kept, not truncated.
const SummaryLimit = 300

// Resume is the root aggregate. Child collections are owned exclusively by
// the resume and keep their insertion order for display.
type Resume struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Title          string          `json:"title" validate:"required"`
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type PersonalInfo struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	LinkedIn   string `json:"linkedin,omitempty"`
	WebsiteURL string `json:"websiteUrl,omitempty"`
	Summary    string `json:"summary"`
}

type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company" validate:"required"`
	Position    string   `json:"position" validate:"required"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
	Location    string   `json:"location"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GPA         string `json:"gpa,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
}

type Certification struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	Issuer        string `json:"issuer" validate:"required"`
	DateObtained  string `json:"dateObtained" validate:"required"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	CredentialID  string `json:"credentialId,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty"`
}

// Skill has no required category; skills without one group under "Other"
// at projection time. Duplicate names are permitted.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category,omitempty"`
}

// NewResume returns an empty working resume with all collections
// initialized, the shape the form controller starts from.
func NewResume() *Resume {
	return &Resume{
		Experience:     []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Skills:         []Skill{},
		Certifications: []Certification{},
	}
}

// NewEntityID generates a synthetic id for a child entity. Random ids avoid
// the collision two same-tick inserts would hit with timestamp-derived ids.
func NewEntityID() string {
	return uuid.NewString()
}

// BeforeSave trims and sanitizes string fields ahead of validation and
// persistence.
func (r *Resume) BeforeSave() {
	sanitizer := NewSecuritySanitizer()

	r.Title = strings.TrimSpace(sanitizer.SanitizeString(r.Title))
	r.PersonalInfo.BeforeSave(sanitizer)

	for i := range r.Experience {
		r.Experience[i].BeforeSave(sanitizer)
	}
	for i := range r.Education {
		r.Education[i].BeforeSave(sanitizer)
	}
	for i := range r.Projects {
		r.Projects[i].BeforeSave(sanitizer)
	}
	for i := range r.Skills {
		r.Skills[i].Name = strings.TrimSpace(sanitizer.SanitizeString(r.Skills[i].Name))
		r.Skills[i].Category = strings.TrimSpace(r.Skills[i].Category)
	}
	for i := range r.Certifications {
		r.Certifications[i].BeforeSave(sanitizer)
	}
}

func (p *PersonalInfo) BeforeSave(s *SecuritySanitizer) {
	p.FullName = strings.TrimSpace(s.SanitizeString(p.FullName))
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Location = strings.TrimSpace(s.SanitizeString(p.Location))
	p.LinkedIn = strings.TrimSpace(p.LinkedIn)
	p.WebsiteURL = strings.TrimSpace(p.WebsiteURL)
	p.Summary = strings.TrimSpace(s.SanitizeString(p.Summary))
}

func (e *Experience) BeforeSave(s *SecuritySanitizer) {
	e.Company = strings.TrimSpace(s.SanitizeString(e.Company))
	e.Position = strings.TrimSpace(s.SanitizeString(e.Position))
	e.Location = strings.TrimSpace(s.SanitizeString(e.Location))
	e.StartDate = strings.TrimSpace(e.StartDate)
	e.EndDate = strings.TrimSpace(e.EndDate)

	lines := make([]string, 0, len(e.Description))
	for _, line := range e.Description {
		cleaned := strings.TrimSpace(s.SanitizeString(line))
		if cleaned != "" {
			lines = append(lines, cleaned)
		}
	}
	e.Description = lines
}

func (e *Education) BeforeSave(s *SecuritySanitizer) {
	e.Institution = strings.TrimSpace(s.SanitizeString(e.Institution))
	e.Degree = strings.TrimSpace(s.SanitizeString(e.Degree))
	e.Field = strings.TrimSpace(s.SanitizeString(e.Field))
	e.StartDate = strings.TrimSpace(e.StartDate)
	e.EndDate = strings.TrimSpace(e.EndDate)
	e.GPA = strings.TrimSpace(e.GPA)
}

func (p *Project) BeforeSave(s *SecuritySanitizer) {
	p.Name = strings.TrimSpace(s.SanitizeString(p.Name))
	p.Description = strings.TrimSpace(s.SanitizeString(p.Description))
	p.StartDate = strings.TrimSpace(p.StartDate)
	p.EndDate = strings.TrimSpace(p.EndDate)
	p.GithubURL = strings.TrimSpace(p.GithubURL)
	p.LiveURL = strings.TrimSpace(p.LiveURL)

	techs := make([]string, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		if cleaned := strings.TrimSpace(s.SanitizeString(t)); cleaned != "" {
			techs = append(techs, cleaned)
		}
	}
	p.Technologies = techs
}

func (c *Certification) BeforeSave(s *SecuritySanitizer) {
	c.Name = strings.TrimSpace(s.SanitizeString(c.Name))
	c.Issuer = strings.TrimSpace(s.SanitizeString(c.Issuer))
	c.DateObtained = strings.TrimSpace(c.DateObtained)
	c.ExpiryDate = strings.TrimSpace(c.ExpiryDate)
	c.CredentialID = strings.TrimSpace(c.CredentialID)
	c.CredentialURL = strings.TrimSpace(c.CredentialURL)
}

// CanSubmit reports the invariant a resume must satisfy to leave draft
// state: title, full name and email all non-empty.
func (r *Resume) CanSubmit() error {
	var errs ValidationErrors

	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, NewValidationError("title", "Resume title is required", ErrRequired))
	}
	if strings.TrimSpace(r.PersonalInfo.FullName) == "" {
		errs = append(errs, NewValidationError("full_name", "Full name is required", ErrRequired))
	}
	if strings.TrimSpace(r.PersonalInfo.Email) == "" {
		errs = append(errs, NewValidationError("email", "Email is required", ErrRequired))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizeCollections replaces nil child slices with empty ones so callers
// and the storage codec never see nil collections.
func (r *Resume) NormalizeCollections() {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
}

// Validate checks the aggregate against its struct tags.
func (r *Resume) Validate() error {
	return ValidateStruct(r)
}

func (e *Experience) Validate() error    { return ValidateStruct(e) }
func (e *Education) Validate() error     { return ValidateStruct(e) }
func (p *Project) Validate() error       { return ValidateStruct(p) }
func (c *Certification) Validate() error { return ValidateStruct(c) }
func (s *Skill) Validate() error         { return ValidateStruct(s) }
