package form

import (
	"strings"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

// Entity sub-forms. Each collection step edits one entry at a time through
// a scratch buffer: Open seeds the buffer (blank for add, a copy of the
// existing entry for edit), Submit validates and commits it back to the
// collection, Cancel throws it away. The collection itself only changes on
// Submit or Remove.

// upsertByID replaces the entry whose id matches, or appends when the id is
// empty or unknown.
func upsertByID[T any](items []T, entry T, id string, idOf func(T) string) []T {
	if id != "" {
		for i, item := range items {
			if idOf(item) == id {
				items[i] = entry
				return items
			}
		}
	}
	return append(items, entry)
}

// --- Experience ---

// OpenExperienceForm opens the experience sub-form. With an empty id it
// starts a blank entry; otherwise it loads the matching entry for editing
// and reports whether it was found.
func (c *Controller) OpenExperienceForm(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == "" {
		c.experienceForm = subForm[domain.Experience]{open: true, buf: domain.Experience{Description: []string{}}}
		return true
	}
	for _, exp := range c.resume.Experience {
		if exp.ID == id {
			c.experienceForm = subForm[domain.Experience]{open: true, editingID: id, buf: exp}
			return true
		}
	}
	return false
}

// ExperienceForm returns the open flag and the current buffer contents.
func (c *Controller) ExperienceForm() (bool, domain.Experience) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.experienceForm.open, c.experienceForm.buf
}

// SetExperienceForm replaces the buffer contents while the form is open.
func (c *Controller) SetExperienceForm(entry domain.Experience) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.experienceForm.open {
		c.experienceForm.buf = entry
	}
}

// SubmitExperienceForm validates the buffer and commits it to the
// collection, replacing the original entry when editing.
func (c *Controller) SubmitExperienceForm() error {
	c.mu.Lock()
	form := c.experienceForm
	c.mu.Unlock()

	entry := form.buf
	entry.ID = form.editingID
	if entry.ID == "" {
		entry.ID = domain.NewEntityID()
	}
	if entry.Current {
		entry.EndDate = ""
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.resume.Experience = upsertByID(c.resume.Experience, entry, form.editingID,
		func(e domain.Experience) string { return e.ID })
	c.experienceForm = subForm[domain.Experience]{}
	c.mu.Unlock()
	c.scheduleAutosave()
	return nil
}

// CancelExperienceForm closes the form and discards the buffer.
func (c *Controller) CancelExperienceForm() {
	c.mu.Lock()
	c.experienceForm = subForm[domain.Experience]{}
	c.mu.Unlock()
}

// RemoveExperience deletes the entry with the given id.
func (c *Controller) RemoveExperience(id string) {
	c.mu.Lock()
	c.resume.Experience = removeByID(c.resume.Experience, id,
		func(e domain.Experience) string { return e.ID })
	c.mu.Unlock()
	c.scheduleAutosave()
}

// --- Education ---

func (c *Controller) OpenEducationForm(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == "" {
		c.educationForm = subForm[domain.Education]{open: true}
		return true
	}
	for _, edu := range c.resume.Education {
		if edu.ID == id {
			c.educationForm = subForm[domain.Education]{open: true, editingID: id, buf: edu}
			return true
		}
	}
	return false
}

func (c *Controller) EducationForm() (bool, domain.Education) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.educationForm.open, c.educationForm.buf
}

func (c *Controller) SetEducationForm(entry domain.Education) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.educationForm.open {
		c.educationForm.buf = entry
	}
}

func (c *Controller) SubmitEducationForm() error {
	c.mu.Lock()
	form := c.educationForm
	c.mu.Unlock()

	entry := form.buf
	entry.ID = form.editingID
	if entry.ID == "" {
		entry.ID = domain.NewEntityID()
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.resume.Education = upsertByID(c.resume.Education, entry, form.editingID,
		func(e domain.Education) string { return e.ID })
	c.educationForm = subForm[domain.Education]{}
	c.mu.Unlock()
	c.scheduleAutosave()
	return nil
}

func (c *Controller) CancelEducationForm() {
	c.mu.Lock()
	c.educationForm = subForm[domain.Education]{}
	c.mu.Unlock()
}

func (c *Controller) RemoveEducation(id string) {
	c.mu.Lock()
	c.resume.Education = removeByID(c.resume.Education, id,
		func(e domain.Education) string { return e.ID })
	c.mu.Unlock()
	c.scheduleAutosave()
}

// --- Projects ---

func (c *Controller) OpenProjectForm(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == "" {
		c.projectForm = subForm[domain.Project]{open: true, buf: domain.Project{Technologies: []string{}}}
		return true
	}
	for _, p := range c.resume.Projects {
		if p.ID == id {
			c.projectForm = subForm[domain.Project]{open: true, editingID: id, buf: p}
			return true
		}
	}
	return false
}

func (c *Controller) ProjectForm() (bool, domain.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectForm.open, c.projectForm.buf
}

func (c *Controller) SetProjectForm(entry domain.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.projectForm.open {
		c.projectForm.buf = entry
	}
}

func (c *Controller) SubmitProjectForm() error {
	c.mu.Lock()
	form := c.projectForm
	c.mu.Unlock()

	entry := form.buf
	entry.ID = form.editingID
	if entry.ID == "" {
		entry.ID = domain.NewEntityID()
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.resume.Projects = upsertByID(c.resume.Projects, entry, form.editingID,
		func(p domain.Project) string { return p.ID })
	c.projectForm = subForm[domain.Project]{}
	c.mu.Unlock()
	c.scheduleAutosave()
	return nil
}

func (c *Controller) CancelProjectForm() {
	c.mu.Lock()
	c.projectForm = subForm[domain.Project]{}
	c.mu.Unlock()
}

func (c *Controller) RemoveProject(id string) {
	c.mu.Lock()
	c.resume.Projects = removeByID(c.resume.Projects, id,
		func(p domain.Project) string { return p.ID })
	c.mu.Unlock()
	c.scheduleAutosave()
}

// --- Certifications ---

func (c *Controller) OpenCertificationForm(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id == "" {
		c.certificationForm = subForm[domain.Certification]{open: true}
		return true
	}
	for _, cert := range c.resume.Certifications {
		if cert.ID == id {
			c.certificationForm = subForm[domain.Certification]{open: true, editingID: id, buf: cert}
			return true
		}
	}
	return false
}

func (c *Controller) CertificationForm() (bool, domain.Certification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.certificationForm.open, c.certificationForm.buf
}

func (c *Controller) SetCertificationForm(entry domain.Certification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.certificationForm.open {
		c.certificationForm.buf = entry
	}
}

func (c *Controller) SubmitCertificationForm() error {
	c.mu.Lock()
	form := c.certificationForm
	c.mu.Unlock()

	entry := form.buf
	entry.ID = form.editingID
	if entry.ID == "" {
		entry.ID = domain.NewEntityID()
	}
	entry.Name = strings.TrimSpace(entry.Name)
	if err := entry.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.resume.Certifications = upsertByID(c.resume.Certifications, entry, form.editingID,
		func(cert domain.Certification) string { return cert.ID })
	c.certificationForm = subForm[domain.Certification]{}
	c.mu.Unlock()
	c.scheduleAutosave()
	return nil
}

func (c *Controller) CancelCertificationForm() {
	c.mu.Lock()
	c.certificationForm = subForm[domain.Certification]{}
	c.mu.Unlock()
}

func (c *Controller) RemoveCertification(id string) {
	c.mu.Lock()
	c.resume.Certifications = removeByID(c.resume.Certifications, id,
		func(cert domain.Certification) string { return cert.ID })
	c.mu.Unlock()
	c.scheduleAutosave()
}
