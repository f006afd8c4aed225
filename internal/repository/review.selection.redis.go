package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joshuarp/withdraw-review/internal/domain/vo"
	"github.com/redis/go-redis/v9"
)

const defaultSelectionPrefix = "withdraw-review:selection"

type ReviewSelectionRedisRepository struct {
	client *redis.Client
	prefix string
}

func NewReviewSelectionRedisRepository(client *redis.Client) *ReviewSelectionRedisRepository {
	return &ReviewSelectionRedisRepository{client: client, prefix: defaultSelectionPrefix}
}

func (r *ReviewSelectionRedisRepository) key(operatorID, selectionID string) string {
	return strings.Join([]string{r.prefix, operatorID, selectionID}, ":")
}

// SaveSelection stores the selection under the operator until it expires.
func (r *ReviewSelectionRedisRepository) SaveSelection(ctx context.Context, operatorID string, selection vo.ReviewSelection) error {
	ttl := time.Until(selection.ExpiresAt)
	if ttl <= 0 {
		return errors.New("repository: selection already expired")
	}

	payload, err := json.Marshal(selection)
	if err != nil {
		return fmt.Errorf("repository: failed to encode selection: %w", err)
	}

	if err := r.client.Set(ctx, r.key(operatorID, selection.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("repository: failed to save selection: %w", err)
	}

	return nil
}

// TakeSelection removes and returns the selection in one step, so a
// selection can back at most one decision.
func (r *ReviewSelectionRedisRepository) TakeSelection(ctx context.Context, operatorID, selectionID string) (vo.ReviewSelection, error) {
	payload, err := r.client.GetDel(ctx, r.key(operatorID, selectionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return vo.ReviewSelection{}, vo.ErrSelectionNotFound
		}
		return vo.ReviewSelection{}, fmt.Errorf("repository: failed to take selection: %w", err)
	}

	var selection vo.ReviewSelection
	if err := json.Unmarshal(payload, &selection); err != nil {
		return vo.ReviewSelection{}, fmt.Errorf("repository: failed to decode selection: %w", err)
	}

	return selection, nil
}

func (r *ReviewSelectionRedisRepository) DiscardSelection(ctx context.Context, operatorID, selectionID string) error {
	if err := r.client.Del(ctx, r.key(operatorID, selectionID)).Err(); err != nil {
		return fmt.Errorf("repository: failed to discard selection: %w", err)
	}
	return nil
}
