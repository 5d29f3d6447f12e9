// Package view turns a resume into render-ready structures shared by the
// HTML and PDF targets: section ordering with presence filtering, skill
// grouping and column layout, and date display rules.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

// DefaultSkillCategory collects skills whose category is blank.
const DefaultSkillCategory = "Other"

// SkillColumnSize is how many skills stack in one layout column.
const SkillColumnSize = 5

// DateStyle selects how stored date strings are shown.
type DateStyle int

const (
	// DateRaw shows the stored string as-is; the HTML target uses this.
	DateRaw DateStyle = iota
	// DateMonthYear reformats parseable dates as "Jan 2006"; the PDF
	// target uses this.
	DateMonthYear
)

// Format applies the style to one stored date string.
func (s DateStyle) Format(date string) string {
	if s == DateMonthYear {
		return FormatDisplayDate(date)
	}
	return date
}

// FormatDisplayDate renders a stored date as "Jan 2006". Inputs in
// "2006-01" or "2006-01-02" form are reformatted; anything else comes back
// unchanged, and empty stays empty.
func FormatDisplayDate(date string) string {
	if date == "" {
		return ""
	}
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return date
}

// FormatDateRange joins a start and end date for display. An entry marked
// current always ends in "Present", even when an end date lingers from an
// earlier edit.
func FormatDateRange(start, end string, current bool, style DateStyle) string {
	start = style.Format(start)
	end = style.Format(end)

	switch {
	case current && start != "":
		return start + " - Present"
	case current:
		return "Present"
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	case end != "":
		return end
	default:
		return "Present"
	}
}

// SkillGroup is one category with its skills in insertion order.
type SkillGroup struct {
	Category string
	Skills   []domain.Skill
}

// GroupSkillsByCategory buckets skills by category, defaulting blank
// categories to "Other". Groups appear in order of each category's first
// occurrence; skills keep their order within a group.
func GroupSkillsByCategory(skills []domain.Skill) []SkillGroup {
	groups := []SkillGroup{}
	index := map[string]int{}

	for _, skill := range skills {
		category := strings.TrimSpace(skill.Category)
		if category == "" {
			category = DefaultSkillCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, SkillGroup{Category: category})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}

	return groups
}

// SkillColumns flattens the grouped skills back into one list (bucket
// order, insertion order within each bucket) and slices it into layout
// columns of SkillColumnSize, the last column holding the remainder.
// Chunking happens across category boundaries, never per group.
func SkillColumns(groups []SkillGroup) [][]domain.Skill {
	flat := []domain.Skill{}
	for _, g := range groups {
		flat = append(flat, g.Skills...)
	}

	columns := [][]domain.Skill{}
	for start := 0; start < len(flat); start += SkillColumnSize {
		end := start + SkillColumnSize
		if end > len(flat) {
			end = len(flat)
		}
		columns = append(columns, flat[start:end])
	}
	return columns
}

// SectionKind identifies one block of the rendered document.
type SectionKind string

const (
	SectionHeader         SectionKind = "header"
	SectionSummary        SectionKind = "summary"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionProjects       SectionKind = "projects"
	SectionExperience     SectionKind = "experience"
	SectionCertifications SectionKind = "certifications"
)

// sectionOrder is the fixed top-to-bottom layout both render targets share.
var sectionOrder = []SectionKind{
	SectionHeader,
	SectionSummary,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionExperience,
	SectionCertifications,
}

// Sections returns the section kinds present on this resume, in render
// order. The header always appears; every other section is dropped when its
// backing data is empty.
func Sections(r *domain.Resume) []SectionKind {
	present := []SectionKind{}
	for _, kind := range sectionOrder {
		switch kind {
		case SectionHeader:
			present = append(present, kind)
		case SectionSummary:
			if strings.TrimSpace(r.PersonalInfo.Summary) != "" {
				present = append(present, kind)
			}
		case SectionEducation:
			if len(r.Education) > 0 {
				present = append(present, kind)
			}
		case SectionSkills:
			if len(r.Skills) > 0 {
				present = append(present, kind)
			}
		case SectionProjects:
			if len(r.Projects) > 0 {
				present = append(present, kind)
			}
		case SectionExperience:
			if len(r.Experience) > 0 {
				present = append(present, kind)
			}
		case SectionCertifications:
			if len(r.Certifications) > 0 {
				present = append(present, kind)
			}
		}
	}
	return present
}

// Document is the render-ready projection both targets consume. All dates
// are already formatted; all optional parts are already filtered out.
type Document struct {
	Name     string
	Contacts []Contact
	Sections []Section
}

// Contact is one header line item, some with a short display label in place
// of the raw value.
type Contact struct {
	Label string
	Value string
	Link  string
}

// Section is one rendered block with exactly one of its payload fields
// populated, per Kind.
type Section struct {
	Kind           SectionKind
	Title          string
	Summary        string
	Experience     []ExperienceItem
	Education      []EducationItem
	SkillColumns   [][]string
	Projects       []ProjectItem
	Certifications []CertificationItem
}

type ExperienceItem struct {
	Position    string
	Company     string
	Location    string
	DateRange   string
	Description []string
}

type EducationItem struct {
	Degree      string
	Field       string
	Institution string
	GPA         string
	Status      string
}

type ProjectItem struct {
	Name         string
	Description  string
	Technologies []string
	DateRange    string
	GithubURL    string
}

type CertificationItem struct {
	Name         string
	Issuer       string
	DateObtained string
	ExpiryDate   string
	CredentialID string
}

// BuildDocument projects a resume into its display form under the given
// date style.
func BuildDocument(r *domain.Resume, style DateStyle) *Document {
	doc := &Document{
		Name:     r.PersonalInfo.FullName,
		Contacts: buildContacts(&r.PersonalInfo),
	}

	for _, kind := range Sections(r) {
		switch kind {
		case SectionHeader:
			// Name and contacts render outside the section list.
		case SectionSummary:
			doc.Sections = append(doc.Sections, Section{
				Kind:    kind,
				Title:   "Summary",
				Summary: r.PersonalInfo.Summary,
			})
		case SectionEducation:
			doc.Sections = append(doc.Sections, Section{
				Kind:      kind,
				Title:     "Education",
				Education: buildEducation(r.Education, style),
			})
		case SectionSkills:
			doc.Sections = append(doc.Sections, Section{
				Kind:         kind,
				Title:        "Skills",
				SkillColumns: buildSkillColumns(r.Skills),
			})
		case SectionProjects:
			doc.Sections = append(doc.Sections, Section{
				Kind:     kind,
				Title:    "Projects",
				Projects: buildProjects(r.Projects, style),
			})
		case SectionExperience:
			doc.Sections = append(doc.Sections, Section{
				Kind:       kind,
				Title:      "Experience",
				Experience: buildExperience(r.Experience, style),
			})
		case SectionCertifications:
			doc.Sections = append(doc.Sections, Section{
				Kind:           kind,
				Title:          "Certifications",
				Certifications: buildCertifications(r.Certifications, style),
			})
		}
	}

	return doc
}

// buildContacts assembles the header line, skipping whatever the user left
// blank. Profile links collapse to short labels.
func buildContacts(info *domain.PersonalInfo) []Contact {
	contacts := []Contact{}
	if info.Email != "" {
		contacts = append(contacts, Contact{Value: info.Email})
	}
	if info.Phone != "" {
		contacts = append(contacts, Contact{Value: info.Phone})
	}
	if info.Location != "" {
		contacts = append(contacts, Contact{Value: info.Location})
	}
	if info.LinkedIn != "" {
		contacts = append(contacts, Contact{Label: "LinkedIn", Value: "LinkedIn", Link: info.LinkedIn})
	}
	if info.WebsiteURL != "" {
		contacts = append(contacts, Contact{Label: "Portfolio", Value: "Portfolio", Link: info.WebsiteURL})
	}
	return contacts
}

func buildExperience(entries []domain.Experience, style DateStyle) []ExperienceItem {
	items := make([]ExperienceItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, ExperienceItem{
			Position:    e.Position,
			Company:     e.Company,
			Location:    e.Location,
			DateRange:   FormatDateRange(e.StartDate, e.EndDate, e.Current, style),
			Description: nonEmptyLines(e.Description),
		})
	}
	return items
}

func buildEducation(entries []domain.Education, style DateStyle) []EducationItem {
	items := make([]EducationItem, 0, len(entries))
	for _, e := range entries {
		status := "In Progress"
		if e.EndDate != "" {
			status = "Graduated " + style.Format(e.EndDate)
		}
		items = append(items, EducationItem{
			Degree:      e.Degree,
			Field:       e.Field,
			Institution: e.Institution,
			GPA:         e.GPA,
			Status:      status,
		})
	}
	return items
}

func buildSkillColumns(skills []domain.Skill) [][]string {
	columns := [][]string{}
	for _, column := range SkillColumns(GroupSkillsByCategory(skills)) {
		names := make([]string, 0, len(column))
		for _, s := range column {
			names = append(names, s.Name)
		}
		columns = append(columns, names)
	}
	return columns
}

func buildProjects(entries []domain.Project, style DateStyle) []ProjectItem {
	items := make([]ProjectItem, 0, len(entries))
	for _, p := range entries {
		item := ProjectItem{
			Name:         p.Name,
			Description:  p.Description,
			Technologies: p.Technologies,
			GithubURL:    p.GithubURL,
		}
		// Project dates show only as a complete range; a lone start date
		// stays hidden.
		if p.StartDate != "" && p.EndDate != "" {
			item.DateRange = style.Format(p.StartDate) + " - " + style.Format(p.EndDate)
		}
		items = append(items, item)
	}
	return items
}

func buildCertifications(entries []domain.Certification, style DateStyle) []CertificationItem {
	items := make([]CertificationItem, 0, len(entries))
	for _, c := range entries {
		item := CertificationItem{
			Name:         c.Name,
			Issuer:       c.Issuer,
			DateObtained: style.Format(c.DateObtained),
			CredentialID: c.CredentialID,
		}
		if c.ExpiryDate != "" {
			item.ExpiryDate = fmt.Sprintf("Expires %s", style.Format(c.ExpiryDate))
		}
		items = append(items, item)
	}
	return items
}

func nonEmptyLines(lines []string) []string {
	kept := []string{}
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return kept
}
