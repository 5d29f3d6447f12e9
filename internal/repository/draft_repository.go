package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/beepdt/Ai-Resume-Builder/internal/domain"
)

// Drafts expire on their own after a quiet week unless configured
// otherwise; the form wizard clears them explicitly on submit.
const defaultDraftTTL = 7 * 24 * time.Hour

type draftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore returns a Redis-backed store for in-progress resume drafts,
// one draft per user under a fixed key. A non-positive ttl falls back to
// the default week.
func NewDraftStore(client *redis.Client, ttl time.Duration) domain.DraftStore {
	if ttl <= 0 {
		ttl = defaultDraftTTL
	}
	return &draftRepository{client: client, ttl: ttl}
}

func draftKey(ownerID uuid.UUID) string {
	return "resume:draft:" + ownerID.String()
}

func (d *draftRepository) Save(ctx context.Context, ownerID uuid.UUID, resume *domain.Resume) error {
	data, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := d.client.Set(ctx, draftKey(ownerID), data, d.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (d *draftRepository) Load(ctx context.Context, ownerID uuid.UUID) (*domain.Resume, error) {
	data, err := d.client.Get(ctx, draftKey(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	resume := domain.NewResume()
	if err := json.Unmarshal(data, resume); err != nil {
		return nil, fmt.Errorf("%w: draft: %v", domain.ErrMalformedRecord, err)
	}
	resume.NormalizeCollections()
	return resume, nil
}

func (d *draftRepository) Clear(ctx context.Context, ownerID uuid.UUID) error {
	if err := d.client.Del(ctx, draftKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
