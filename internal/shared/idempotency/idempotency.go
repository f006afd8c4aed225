// Package idempotency lets a review decision be retried with the same key
// without being applied twice: the first response is stored and replayed.
package idempotency

import (
	"context"
	"time"
)

type DecisionType string

const (
	DecisionAcquired   DecisionType = "acquired"
	DecisionReplay     DecisionType = "replay"
	DecisionInProgress DecisionType = "in_progress"
	DecisionConflict   DecisionType = "conflict"
)

type Request struct {
	Scope       string
	Key         string
	RequestHash string
	LockTTL     time.Duration
}

type Decision struct {
	Type        DecisionType
	StatusCode  int
	Body        []byte
	ContentType string
}

type StoredResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

type Store interface {
	Acquire(ctx context.Context, request Request) (Decision, error)
	Complete(ctx context.Context, request Request, response StoredResponse) error
	// Release drops an acquired key that was never completed so the same
	// request can be retried at once.
	Release(ctx context.Context, request Request) error
}
