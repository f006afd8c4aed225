package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	defaultLockTTL = 30 * time.Second

	statusInProgress = "in_progress"
	statusCompleted  = "completed"
)

func normalizeRequest(request Request) (scope, key, hash string, err error) {
	scope = strings.TrimSpace(request.Scope)
	if scope == "" {
		return "", "", "", errors.New("idempotency: scope is required")
	}

	key = strings.TrimSpace(request.Key)
	if key == "" {
		return "", "", "", errors.New("idempotency: key is required")
	}

	hash = strings.TrimSpace(request.RequestHash)
	if hash == "" {
		return "", "", "", errors.New("idempotency: request hash is required")
	}

	return scope, key, hash, nil
}

type SQLXStore struct {
	db *sqlx.DB
}

func NewSQLXStore(db *sqlx.DB) *SQLXStore {
	return &SQLXStore{db: db}
}

func (s *SQLXStore) Acquire(ctx context.Context, request Request) (Decision, error) {
	if s == nil || s.db == nil {
		return Decision{}, errors.New("idempotency: store is not initialized")
	}

	scope, key, hash, err := normalizeRequest(request)
	if err != nil {
		return Decision{}, err
	}

	lockTTL := request.LockTTL
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}

	now := time.Now().UTC()
	lockUntil := now.Add(lockTTL)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	const selectQuery = `
SELECT request_hash, status, response_status, response_body, response_content_type, locked_until
FROM review_idempotency
WHERE scope = $1 AND idempotency_key = $2
FOR UPDATE`

	var existing storedKey
	err = tx.GetContext(ctx, &existing, selectQuery, scope, key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		const insertQuery = `
INSERT INTO review_idempotency (
	scope, idempotency_key, request_hash, status, locked_until, created_at, updated_at
) VALUES ($1, $2, $3, 'in_progress', $4, now(), now())`

		if _, err := tx.ExecContext(ctx, insertQuery, scope, key, hash, lockUntil); err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to insert key: %w", err)
		}
	case err != nil:
		return Decision{}, fmt.Errorf("idempotency: failed to query key: %w", err)
	}

	decision := Decision{Type: DecisionAcquired}
	if err == nil {
		decision = existing.decide(hash, now)
	}

	if err == nil && decision.Type == DecisionAcquired {
		const reacquireQuery = `
UPDATE review_idempotency
SET status = 'in_progress', locked_until = $3, updated_at = now()
WHERE scope = $1 AND idempotency_key = $2`

		if _, err := tx.ExecContext(ctx, reacquireQuery, scope, key, lockUntil); err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to reacquire key: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to commit %s decision: %w", decision.Type, err)
	}

	return decision, nil
}

type storedKey struct {
	RequestHash    string         `db:"request_hash"`
	Status         string         `db:"status"`
	ResponseStatus sql.NullInt64  `db:"response_status"`
	ResponseBody   []byte         `db:"response_body"`
	ResponseType   sql.NullString `db:"response_content_type"`
	LockedUntil    time.Time      `db:"locked_until"`
}

// decide maps a stored key to what the caller must do. An in-progress key
// whose lock has lapsed is handed to the new caller.
func (k storedKey) decide(hash string, now time.Time) Decision {
	switch {
	case k.RequestHash != hash:
		return Decision{Type: DecisionConflict}
	case k.Status == statusCompleted:
		decision := Decision{
			Type: DecisionReplay,
			Body: append([]byte(nil), k.ResponseBody...),
		}
		if k.ResponseStatus.Valid {
			decision.StatusCode = int(k.ResponseStatus.Int64)
		}
		if k.ResponseType.Valid {
			decision.ContentType = k.ResponseType.String
		}
		return decision
	case k.Status == statusInProgress && k.LockedUntil.After(now):
		return Decision{Type: DecisionInProgress}
	default:
		return Decision{Type: DecisionAcquired}
	}
}

func (s *SQLXStore) Complete(ctx context.Context, request Request, response StoredResponse) error {
	if s == nil || s.db == nil {
		return errors.New("idempotency: store is not initialized")
	}

	scope, key, hash, err := normalizeRequest(request)
	if err != nil {
		return err
	}

	contentType := strings.TrimSpace(response.ContentType)

	const updateQuery = `
UPDATE review_idempotency
SET
	status = 'completed',
	response_status = $4,
	response_body = $5,
	response_content_type = $6,
	locked_until = now(),
	completed_at = now(),
	updated_at = now()
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3`

	result, err := s.db.ExecContext(ctx, updateQuery, scope, key, hash, response.StatusCode, response.Body, contentType)
	if err != nil {
		return fmt.Errorf("idempotency: failed to persist response: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("idempotency: failed to read affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("idempotency: key not found for completion")
	}

	return nil
}

func (s *SQLXStore) Release(ctx context.Context, request Request) error {
	if s == nil || s.db == nil {
		return errors.New("idempotency: store is not initialized")
	}

	scope, key, hash, err := normalizeRequest(request)
	if err != nil {
		return err
	}

	const deleteQuery = `
DELETE FROM review_idempotency
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3 AND status = 'in_progress'`

	if _, err := s.db.ExecContext(ctx, deleteQuery, scope, key, hash); err != nil {
		return fmt.Errorf("idempotency: failed to release key: %w", err)
	}
	return nil
}
