package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fitgarden/models"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "draft:"

// DraftStore persists in-progress drafts for the lifetime of the
// dialog. Drafts expire on their own when abandoned.
type DraftStore interface {
	Save(ctx context.Context, draft *models.AgendamentoDraft) error
	// Load returns (nil, nil) when the draft is missing or expired.
	Load(ctx context.Context, draftID string) (*models.AgendamentoDraft, error)
	Delete(ctx context.Context, draftID string) error
}

// RedisDraftStore keeps drafts in Redis with a sliding TTL.
type RedisDraftStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *models.AgendamentoDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.Client.Set(ctx, draftKeyPrefix+draft.DraftID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Load(ctx context.Context, draftID string) (*models.AgendamentoDraft, error) {
	data, err := s.Client.Get(ctx, draftKeyPrefix+draftID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	var draft models.AgendamentoDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, draftID string) error {
	return s.Client.Del(ctx, draftKeyPrefix+draftID).Err()
}
