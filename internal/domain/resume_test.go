package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanSubmitRequiresTitleNameAndEmail(t *testing.T) {
	r := NewResume()

	err := r.CanSubmit()
	require.Error(t, err)

	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	fields := verrs.FieldMap()
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "email")
}

func TestCanSubmitIgnoresWhitespaceOnlyValues(t *testing.T) {
	r := NewResume()
	r.Title = "   "
	r.PersonalInfo.FullName = "\t"
	r.PersonalInfo.Email = " "

	err := r.CanSubmit()
	require.Error(t, err)
	assert.Len(t, err.(ValidationErrors), 3)
}

func TestCanSubmitPassesWithRequiredFields(t *testing.T) {
	r := NewResume()
	r.Title = "Backend Engineer"
	r.PersonalInfo.FullName = "Dana Whitfield"
	r.PersonalInfo.Email = "dana@example.com"

	assert.NoError(t, r.CanSubmit())
}

func TestBeforeSaveStripsMarkupAndTrims(t *testing.T) {
	r := NewResume()
	r.Title = "  <em>Backend</em> Engineer  "
	r.PersonalInfo.FullName = " Dana <script>alert(1)</script>Whitfield "
	r.Skills = []Skill{{Name: " <b>Go</b> ", Category: " Languages "}}
	r.Experience = []Experience{{
		Company:     " Acme ",
		Position:    "Engineer",
		Description: []string{" shipped it ", "   ", ""},
	}}

	r.BeforeSave()

	assert.Equal(t, "Backend Engineer", r.Title)
	assert.Equal(t, "Dana Whitfield", r.PersonalInfo.FullName)
	assert.Equal(t, "Go", r.Skills[0].Name)
	assert.Equal(t, "Languages", r.Skills[0].Category)
	assert.Equal(t, "Acme", r.Experience[0].Company)
	assert.Equal(t, []string{"shipped it"}, r.Experience[0].Description)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	e := Experience{Position: "Engineer"}

	err := e.Validate()
	require.Error(t, err)

	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, "company", verrs[0].Field)
	assert.Equal(t, ErrRequired, verrs[0].Type)
}

func TestValidateEmailFormat(t *testing.T) {
	p := PersonalInfo{Email: "nope"}
	err := ValidateStruct(&p)
	require.Error(t, err)

	verrs := err.(ValidationErrors)
	require.Len(t, verrs, 1)
	assert.Equal(t, "email", verrs[0].Field)
	assert.Equal(t, ErrInvalidField, verrs[0].Type)

	p.Email = ""
	assert.NoError(t, ValidateStruct(&p))
}

func TestNormalizeCollectionsReplacesNilSlices(t *testing.T) {
	r := &Resume{}
	r.NormalizeCollections()

	assert.NotNil(t, r.Experience)
	assert.NotNil(t, r.Education)
	assert.NotNil(t, r.Projects)
	assert.NotNil(t, r.Skills)
	assert.NotNil(t, r.Certifications)
}

func TestNewEntityIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewEntityID()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestFieldMapFirstErrorWins(t *testing.T) {
	errs := ValidationErrors{
		NewValidationError("title", "first", ErrRequired),
		NewValidationError("title", "second", ErrInvalidField),
	}

	assert.Equal(t, map[string]string{"title": "first"}, errs.FieldMap())
}
