package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
	"github.com/beepdt/Ai-Resume-Builder/internal/render"
)

// ResumeService is the application surface over the resume store and the
// render targets.
type ResumeService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Resume, error)
	Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.Resume, error)
	Create(ctx context.Context, ownerID uuid.UUID, resume *domain.Resume) (*domain.Resume, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, patch *domain.ResumePatch) (*domain.Resume, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	RenderHTML(ctx context.Context, id, ownerID uuid.UUID) ([]byte, error)
	RenderPDF(ctx context.Context, id, ownerID uuid.UUID) ([]byte, error)
}

type resumeService struct {
	repo   domain.ResumeRepository
	drafts domain.DraftStore
	logger zerolog.Logger
}

func NewResumeService(repo domain.ResumeRepository, drafts domain.DraftStore, logger zerolog.Logger) ResumeService {
	return &resumeService{
		repo:   repo,
		drafts: drafts,
		logger: logger.With().Str("component", "resume_service").Logger(),
	}
}

func (s *resumeService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Resume, error) {
	return s.repo.ListActive(ctx, ownerID)
}

func (s *resumeService) Get(ctx context.Context, id, ownerID uuid.UUID) (*domain.Resume, error) {
	resume, err := s.repo.GetActiveByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, domain.ErrNotFound
	}
	return resume, nil
}

// Create sanitizes and validates before handing off to the store, and
// clears any leftover draft on success.
func (s *resumeService) Create(ctx context.Context, ownerID uuid.UUID, resume *domain.Resume) (*domain.Resume, error) {
	if err := resume.CanSubmit(); err != nil {
		return nil, err
	}

	resume.BeforeSave()
	resume.NormalizeCollections()
	if err := resume.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, ownerID, resume)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", ownerID.String()).Msg("failed to create resume")
		return nil, err
	}

	if s.drafts != nil {
		if err := s.drafts.Clear(ctx, ownerID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", ownerID.String()).Msg("failed to clear draft after create")
		}
	}

	s.logger.Info().Str("resume_id", created.ID.String()).Str("user_id", ownerID.String()).Msg("resume created")
	return created, nil
}

func (s *resumeService) Update(ctx context.Context, id, ownerID uuid.UUID, patch *domain.ResumePatch) (*domain.Resume, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, domain.ValidationErrors{
			domain.NewValidationError("title", "Resume title is required", domain.ErrRequired),
		}
	}

	updated, err := s.repo.Update(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("resume_id", id.String()).Msg("resume updated")
	return updated, nil
}

func (s *resumeService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, id, ownerID); err != nil {
		return err
	}
	s.logger.Info().Str("resume_id", id.String()).Msg("resume deactivated")
	return nil
}

func (s *resumeService) RenderHTML(ctx context.Context, id, ownerID uuid.UUID) ([]byte, error) {
	resume, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return render.HTML(resume)
}

func (s *resumeService) RenderPDF(ctx context.Context, id, ownerID uuid.UUID) ([]byte, error) {
	resume, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return render.PDF(resume)
}
