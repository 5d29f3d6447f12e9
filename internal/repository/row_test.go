package repository

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

func sampleResume() *domain.Resume {
	r := domain.NewResume()
	r.ID = uuid.New()
	r.UserID = uuid.New()
	r.Title = "Backend Engineer"
	r.PersonalInfo = domain.PersonalInfo{
		FullName: "Dana Whitfield",
		Email:    "dana@example.com",
		Phone:    "+1 555 0100",
		Location: "Berlin",
		LinkedIn: "https://linkedin.com/in/dana",
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
	r.Education = []domain.Education{{
		ID:          "edu-1",
		Institution: "TU Berlin",
		Degree:      "BSc",
		Field:       "Computer Science",
		EndDate:     "2020-07",
	}}
	r.Skills = []domain.Skill{{ID: "sk-1", Name: "Go", Category: "Languages"}}
	r.Projects = []domain.Project{{
		ID:          "prj-1",
		Name:        "Billing",
		Description: "Usage-based billing service",
		StartDate:   "2022-01",
	}}
	r.Certifications = []domain.Certification{{
		ID:           "cert-1",
		Name:         "CKA",
		Issuer:       "CNCF",
		DateObtained: "2023-05",
	}}
	r.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	r.UpdatedAt = r.CreatedAt
	return r
}

func TestRowRoundTrip(t *testing.T) {
	original := sampleResume()

	row, err := ToRow(original)
	require.NoError(t, err)

	decoded, err := FromRow(row)
	require.NoError(t, err)

	assert.Equal(t, original, decoded)
}

func TestToRowFlattensPersonalInfo(t *testing.T) {
	row, err := ToRow(sampleResume())
	require.NoError(t, err)

	assert.Equal(t, "Dana Whitfield", row.FullName)
	assert.Equal(t, "dana@example.com", row.Email)
	assert.Equal(t, "https://linkedin.com/in/dana", row.LinkedinURL)
	assert.True(t, row.IsActive)
}

func TestFromRowAcceptsStringEncodedAdditionalSections(t *testing.T) {
	original := sampleResume()
	row, err := ToRow(original)
	require.NoError(t, err)

	asObject, err := FromRow(row)
	require.NoError(t, err)

	// The same payload stored as a JSON string must decode identically.
	quoted, err := json.Marshal(string(row.AdditionalSections))
	require.NoError(t, err)
	row.AdditionalSections = quoted

	asString, err := FromRow(row)
	require.NoError(t, err)

	assert.Equal(t, asObject.Projects, asString.Projects)
	assert.Equal(t, asObject.Certifications, asString.Certifications)
}

func TestFromRowEmptyColumnsYieldEmptyCollections(t *testing.T) {
	row := &ResumeRow{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Empty",
	}

	decoded, err := FromRow(row)
	require.NoError(t, err)

	assert.NotNil(t, decoded.Experience)
	assert.NotNil(t, decoded.Education)
	assert.NotNil(t, decoded.Skills)
	assert.NotNil(t, decoded.Projects)
	assert.NotNil(t, decoded.Certifications)
	assert.Empty(t, decoded.Experience)
}

func TestFromRowNullColumnsYieldEmptyCollections(t *testing.T) {
	row := &ResumeRow{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		Title:              "Null columns",
		WorkExperience:     []byte("null"),
		Education:          []byte("null"),
		Skills:             []byte("null"),
		AdditionalSections: []byte("null"),
	}

	decoded, err := FromRow(row)
	require.NoError(t, err)
	assert.Empty(t, decoded.Experience)
	assert.Empty(t, decoded.Projects)
}

func TestFromRowMalformedColumnReportsMalformedRecord(t *testing.T) {
	row := &ResumeRow{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		Title:          "Broken",
		WorkExperience: []byte("{not json"),
	}

	_, err := FromRow(row)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedRecord))
}

func TestFromRowMalformedAdditionalSectionsReportsMalformedRecord(t *testing.T) {
	row := &ResumeRow{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		Title:              "Broken extras",
		AdditionalSections: []byte(`"{not json"`),
	}

	_, err := FromRow(row)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedRecord))
}
