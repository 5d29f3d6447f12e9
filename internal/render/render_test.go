package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

func renderableResume() *domain.Resume {
	r := domain.NewResume()
	r.Title = "Backend Engineer"
	r.PersonalInfo = domain.PersonalInfo{
		FullName: "Dana Whitfield",
		Email:    "dana@example.com",
		Phone:    "+1 555 0100",
		Summary:  "Builds resilient services.",
	}
	r.Experience = []domain.Experience{{
		ID:          "exp-1",
		Company:     "Acme",
		Position:    "Engineer",
		StartDate:   "2021-03",
		Current:     true,
		Description: []string{"Owned the billing pipeline"},
	}}
	r.Skills = []domain.Skill{
		{ID: "sk-1", Name: "Go", Category: "Languages"},
		{ID: "sk-2", Name: "Docker"},
	}
	return r
}

func TestHTMLContainsNameAndSections(t *testing.T) {
	html, err := HTML(renderableResume())
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Dana Whitfield")
	assert.Contains(t, out, "dana@example.com")
	assert.Contains(t, out, "Builds resilient services.")
	assert.Contains(t, out, "Owned the billing pipeline")
	assert.Contains(t, out, "<li>Go</li>")
	assert.Contains(t, out, "<li>Docker</li>")
}

func TestHTMLSkillsFlattenAcrossCategories(t *testing.T) {
	r := domain.NewResume()
	r.PersonalInfo.FullName = "Dana Whitfield"
	for i := 0; i < 6; i++ {
		r.Skills = append(r.Skills, domain.Skill{Name: "lang", Category: "Languages"})
	}
	for i := 0; i < 6; i++ {
		r.Skills = append(r.Skills, domain.Skill{Name: "tool", Category: "Tools"})
	}

	html, err := HTML(r)
	require.NoError(t, err)

	// Three columns of [5,5,2], not four per-category columns.
	assert.Equal(t, 3, strings.Count(string(html), "<ul>"))
}

func TestHTMLRendersProjectLinkAndCompletedRangeOnly(t *testing.T) {
	r := domain.NewResume()
	r.PersonalInfo.FullName = "Dana Whitfield"
	r.Projects = []domain.Project{{
		Name:        "Billing",
		Description: "Usage-based billing service",
		StartDate:   "2022-01",
		GithubURL:   "https://github.com/acme/billing",
	}}

	html, err := HTML(r)
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, `href="https://github.com/acme/billing"`)
	assert.NotContains(t, out, "2022-01 - ")
	assert.NotContains(t, out, "Present")
}

func TestHTMLShowsRawDates(t *testing.T) {
	html, err := HTML(renderableResume())
	require.NoError(t, err)

	assert.Contains(t, string(html), "2021-03 - Present")
	assert.NotContains(t, string(html), "Mar 2021")
}

func TestHTMLOmitsEmptySections(t *testing.T) {
	r := domain.NewResume()
	r.PersonalInfo.FullName = "Dana Whitfield"

	html, err := HTML(r)
	require.NoError(t, err)

	out := string(html)
	assert.NotContains(t, out, "Education")
	assert.NotContains(t, out, "Projects")
	assert.NotContains(t, out, "Certifications")
}

func TestHTMLEscapesMarkup(t *testing.T) {
	r := domain.NewResume()
	r.PersonalInfo.FullName = `<b>Dana</b>`

	html, err := HTML(r)
	require.NoError(t, err)

	assert.NotContains(t, string(html), "<b>Dana</b>")
}

func TestPDFProducesValidDocument(t *testing.T) {
	pdf, err := PDF(renderableResume())
	require.NoError(t, err)

	require.True(t, len(pdf) > 0)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestPDFHandlesMinimalResume(t *testing.T) {
	r := domain.NewResume()
	r.PersonalInfo.FullName = "Dana Whitfield"

	pdf, err := PDF(r)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}
