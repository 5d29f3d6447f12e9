package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

type stubRepo struct {
	resumes map[uuid.UUID]*domain.Resume
	deleted []uuid.UUID
	err     error
}

func newStubRepo() *stubRepo {
	return &stubRepo{resumes: map[uuid.UUID]*domain.Resume{}}
}

func (s *stubRepo) ListActive(_ context.Context, ownerID uuid.UUID) ([]*domain.Resume, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []*domain.Resume{}
	for _, r := range s.resumes {
		if r.UserID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRepo) GetActiveByID(_ context.Context, id, ownerID uuid.UUID) (*domain.Resume, error) {
	if s.err != nil {
		return nil, s.err
	}
	r, ok := s.resumes[id]
	if !ok || r.UserID != ownerID {
		return nil, nil
	}
	return r, nil
}

func (s *stubRepo) Create(_ context.Context, ownerID uuid.UUID, resume *domain.Resume) (*domain.Resume, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *resume
	created.ID = uuid.New()
	created.UserID = ownerID
	s.resumes[created.ID] = &created
	return &created, nil
}

func (s *stubRepo) Update(_ context.Context, id, ownerID uuid.UUID, patch *domain.ResumePatch) (*domain.Resume, error) {
	r, ok := s.resumes[id]
	if !ok || r.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	patch.Apply(r)
	return r, nil
}

func (s *stubRepo) SoftDelete(_ context.Context, id, ownerID uuid.UUID) error {
	r, ok := s.resumes[id]
	if !ok || r.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(s.resumes, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type stubDrafts struct {
	clears int
}

func (s *stubDrafts) Save(context.Context, uuid.UUID, *domain.Resume) error { return nil }
func (s *stubDrafts) Load(context.Context, uuid.UUID) (*domain.Resume, error) {
	return nil, nil
}
func (s *stubDrafts) Clear(context.Context, uuid.UUID) error {
	s.clears++
	return nil
}

func submittableResume() *domain.Resume {
	r := domain.NewResume()
	r.Title = "Backend Engineer"
	r.PersonalInfo.FullName = "Dana Whitfield"
	r.PersonalInfo.Email = "dana@example.com"
	return r
}

func newTestService(repo domain.ResumeRepository, drafts domain.DraftStore) ResumeService {
	return NewResumeService(repo, drafts, zerolog.Nop())
}

func TestCreateRejectsIncompleteResume(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, nil)

	r := domain.NewResume()
	r.Title = "Only a title"

	_, err := svc.Create(context.Background(), uuid.New(), r)
	require.Error(t, err)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.FieldMap()
	assert.Contains(t, fields, "full_name")
	assert.Contains(t, fields, "email")
	assert.Empty(t, repo.resumes)
}

func TestCreateSanitizesAndClearsDraft(t *testing.T) {
	repo := newStubRepo()
	drafts := &stubDrafts{}
	svc := newTestService(repo, drafts)

	r := submittableResume()
	r.Title = "  Backend <script>alert(1)</script>Engineer  "

	created, err := svc.Create(context.Background(), uuid.New(), r)
	require.NoError(t, err)

	assert.NotContains(t, created.Title, "<script>")
	assert.Equal(t, 1, drafts.clears)
}

func TestGetMissingResumeReturnsNotFound(t *testing.T) {
	svc := newTestService(newStubRepo(), nil)

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetIsOwnerScoped(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, nil)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner, submittableResume())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), created.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := svc.Get(context.Background(), created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUpdateRejectsEmptyTitle(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, nil)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner, submittableResume())
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(context.Background(), created.ID, owner, &domain.ResumePatch{Title: &empty})
	require.Error(t, err)

	var verrs domain.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestUpdateAppliesPatch(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, nil)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner, submittableResume())
	require.NoError(t, err)

	title := "Platform Engineer"
	updated, err := svc.Update(context.Background(), created.ID, owner, &domain.ResumePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", updated.Title)
}

func TestDeleteRemovesFromListing(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, nil)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner, submittableResume())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, owner))

	resumes, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, resumes)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID, owner), domain.ErrNotFound)
}

func TestRenderHTMLMissingResume(t *testing.T) {
	svc := newTestService(newStubRepo(), nil)

	_, err := svc.RenderHTML(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenderPDFProducesDocument(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, nil)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), owner, submittableResume())
	require.NoError(t, err)

	pdf, err := svc.RenderPDF(context.Background(), created.ID, owner)
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
}
