// Package form owns the in-progress resume a user edits across the
// seven-step wizard: step transitions with per-step validation, scratch
// buffers for nested entity sub-forms, and debounced draft autosave.
package form

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

// Wizard steps.
const (
	StepPersonalDetails = 1
	StepExperience      = 2
	StepEducation       = 3
	StepSkills          = 4
	StepProjects        = 5
	StepCertifications  = 6
	StepReview          = 7

	TotalSteps = 7
)

// StepTitle returns the display title for a wizard step.
func StepTitle(step int) string {
	switch step {
	case StepPersonalDetails:
		return "Personal Details"
	case StepExperience:
		return "Experience"
	case StepEducation:
		return "Education"
	case StepSkills:
		return "Skills"
	case StepProjects:
		return "Projects"
	case StepCertifications:
		return "Certifications"
	case StepReview:
		return "Review & Submit"
	default:
		return "Step"
	}
}

// AutosaveStatus is the transient save indicator shown next to the step
// header.
type AutosaveStatus string

const (
	StatusNone   AutosaveStatus = ""
	StatusSaving AutosaveStatus = "saving"
	StatusSaved  AutosaveStatus = "saved"
	StatusError  AutosaveStatus = "error"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Options tune the controller's timers. Zero values fall back to the
// production defaults.
type Options struct {
	AutosaveDebounce time.Duration // trailing-edge debounce for draft writes
	StatusTTL        time.Duration // how long "saved"/"error" stays visible
	Logger           zerolog.Logger
}

const (
	defaultDebounce  = time.Second
	defaultStatusTTL = 2 * time.Second
)

// Controller holds the working resume for one editing session. All state
// mutation happens in response to discrete user events; the mutex only
// serializes those events against the autosave timer callback.
type Controller struct {
	mu sync.Mutex

	ownerID uuid.UUID
	drafts  domain.DraftStore
	log     zerolog.Logger

	resume *domain.Resume
	step   int
	errors map[string]string

	experienceForm    subForm[domain.Experience]
	educationForm     subForm[domain.Education]
	projectForm       subForm[domain.Project]
	certificationForm subForm[domain.Certification]

	debounce    time.Duration
	statusTTL   time.Duration
	saveTimer   *time.Timer
	statusTimer *time.Timer
	status      AutosaveStatus
}

// subForm is the scratch buffer for one entity being created or edited. The
// buffer never touches the collection until Submit.
type subForm[T any] struct {
	open      bool
	editingID string
	buf       T
}

// NewController starts an editing session for the given owner. A stored
// draft, if present and decodable, seeds the working resume; malformed
// drafts are logged and discarded in favor of the empty default.
func NewController(ctx context.Context, ownerID uuid.UUID, drafts domain.DraftStore, opts Options) *Controller {
	if opts.AutosaveDebounce <= 0 {
		opts.AutosaveDebounce = defaultDebounce
	}
	if opts.StatusTTL <= 0 {
		opts.StatusTTL = defaultStatusTTL
	}

	c := &Controller{
		ownerID:   ownerID,
		drafts:    drafts,
		log:       opts.Logger,
		resume:    domain.NewResume(),
		step:      StepPersonalDetails,
		errors:    map[string]string{},
		debounce:  opts.AutosaveDebounce,
		statusTTL: opts.StatusTTL,
	}

	if drafts != nil {
		draft, err := drafts.Load(ctx, ownerID)
		switch {
		case err != nil:
			c.log.Warn().Err(err).Msg("discarding unreadable resume draft")
		case draft != nil:
			draft.UserID = ownerID
			c.resume = draft
		}
	}

	return c
}

// Step returns the current wizard step, 1..7.
func (c *Controller) Step() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Errors returns a copy of the current per-field error map.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		m[k] = v
	}
	return m
}

// Resume returns a copy of the working resume.
func (c *Controller) Resume() domain.Resume {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *c.resume
}

// Status returns the transient autosave indicator.
func (c *Controller) Status() AutosaveStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Next validates the current step. On success it advances (clamped at the
// review step) and clears the error map; on failure it stays put and
// populates field errors.
func (c *Controller) Next() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	errs := c.validateStep(c.step)
	if len(errs) > 0 {
		c.errors = errs
		return false
	}

	c.errors = map[string]string{}
	if c.step < TotalSteps {
		c.step++
	}
	return true
}

// Previous always succeeds, clamped at the first step.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step > StepPersonalDetails {
		c.step--
	}
}

// GoToStep jumps directly without validation; the step indicator uses this.
func (c *Controller) GoToStep(step int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if step < StepPersonalDetails {
		step = StepPersonalDetails
	}
	if step > TotalSteps {
		step = TotalSteps
	}
	c.step = step
}

func (c *Controller) validateStep(step int) map[string]string {
	errs := map[string]string{}

	if step == StepPersonalDetails {
		if strings.TrimSpace(c.resume.Title) == "" {
			errs["title"] = "Resume title is required"
		}
		info := c.resume.PersonalInfo
		if strings.TrimSpace(info.FullName) == "" {
			errs["full_name"] = "Full name is required"
		}
		switch {
		case strings.TrimSpace(info.Email) == "":
			errs["email"] = "Email is required"
		case !emailPattern.MatchString(info.Email):
			errs["email"] = "Valid email is required"
		}
		if strings.TrimSpace(info.Phone) == "" {
			errs["phone"] = "Phone number is required"
		}
	}

	return errs
}

// SetTitle updates the resume title, clears its field error, and schedules
// an autosave.
func (c *Controller) SetTitle(title string) {
	c.mu.Lock()
	c.resume.Title = title
	delete(c.errors, "title")
	c.mu.Unlock()
	c.scheduleAutosave()
}

// SetPersonalInfo replaces the personal info block, clears related field
// errors, and schedules an autosave.
func (c *Controller) SetPersonalInfo(info domain.PersonalInfo) {
	c.mu.Lock()
	c.resume.PersonalInfo = info
	for _, field := range []string{"full_name", "email", "phone"} {
		delete(c.errors, field)
	}
	c.mu.Unlock()
	c.scheduleAutosave()
}

// AddSkill trims the input and appends a skill with a fresh id. Empty input
// is a no-op; duplicate names are allowed.
func (c *Controller) AddSkill(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}

	c.mu.Lock()
	c.resume.Skills = append(c.resume.Skills, domain.Skill{
		ID:   domain.NewEntityID(),
		Name: trimmed,
	})
	c.mu.Unlock()
	c.scheduleAutosave()
	return true
}

// RemoveSkill deletes the skill with the given id, if present.
func (c *Controller) RemoveSkill(id string) {
	c.mu.Lock()
	c.resume.Skills = removeByID(c.resume.Skills, id, func(s domain.Skill) string { return s.ID })
	c.mu.Unlock()
	c.scheduleAutosave()
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	kept := items[:0:0]
	for _, item := range items {
		if idOf(item) != id {
			kept = append(kept, item)
		}
	}
	if kept == nil {
		kept = []T{}
	}
	return kept
}

// scheduleAutosave restarts the trailing-edge debounce timer. Rapid
// mutations within the window collapse into a single draft write carrying
// the final state. Drafts are only written once the resume has a title.
func (c *Controller) scheduleAutosave() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.drafts == nil {
		return
	}
	if c.saveTimer != nil {
		c.saveTimer.Stop()
	}
	c.saveTimer = time.AfterFunc(c.debounce, c.persistDraft)
}

func (c *Controller) persistDraft() {
	c.mu.Lock()
	if strings.TrimSpace(c.resume.Title) == "" {
		c.mu.Unlock()
		return
	}
	c.setStatusLocked(StatusSaving)
	snapshot := *c.resume
	c.mu.Unlock()

	err := c.drafts.Save(context.Background(), c.ownerID, &snapshot)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.log.Error().Err(err).Msg("autosave draft failed")
		c.setStatusLocked(StatusError)
		return
	}
	c.setStatusLocked(StatusSaved)
}

func (c *Controller) setStatusLocked(status AutosaveStatus) {
	c.status = status
	if c.statusTimer != nil {
		c.statusTimer.Stop()
		c.statusTimer = nil
	}
	if status == StatusSaved || status == StatusError {
		c.statusTimer = time.AfterFunc(c.statusTTL, func() {
			c.mu.Lock()
			c.status = StatusNone
			c.mu.Unlock()
		})
	}
}

// Flush forces any pending autosave to run immediately.
func (c *Controller) Flush() {
	c.mu.Lock()
	pending := c.saveTimer != nil && c.saveTimer.Stop()
	c.saveTimer = nil
	c.mu.Unlock()

	if pending {
		c.persistDraft()
	}
}

// Submit hands the finished resume to the store's create operation. It is
// only permitted once title, full name and email are all present; on
// success the local draft is cleared.
func (c *Controller) Submit(ctx context.Context, repo domain.ResumeRepository) (*domain.Resume, error) {
	c.mu.Lock()
	if c.saveTimer != nil {
		c.saveTimer.Stop()
		c.saveTimer = nil
	}
	snapshot := *c.resume
	c.mu.Unlock()

	if err := snapshot.CanSubmit(); err != nil {
		if verrs, ok := err.(domain.ValidationErrors); ok {
			c.mu.Lock()
			c.errors = verrs.FieldMap()
			c.mu.Unlock()
		}
		return nil, err
	}

	snapshot.BeforeSave()
	created, err := repo.Create(ctx, c.ownerID, &snapshot)
	if err != nil {
		return nil, err
	}

	if c.drafts != nil {
		if err := c.drafts.Clear(ctx, c.ownerID); err != nil {
			c.log.Warn().Err(err).Msg("failed to clear resume draft after submit")
		}
	}
	return created, nil
}
