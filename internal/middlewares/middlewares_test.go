package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	middlewaremocks "github.com/joshuarp/withdraw-review/internal/mock/middlewares"
	idempotencymocks "github.com/joshuarp/withdraw-review/internal/mock/shared/idempotency"
	jwtmocks "github.com/joshuarp/withdraw-review/internal/mock/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	sharedidempotency "github.com/joshuarp/withdraw-review/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/withdraw-review/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/withdraw-review/internal/shared/ratelimit"
)

func doRequest(app *fiber.App, method, path string, body []byte, headers map[string]string) (*http.Response, map[string]interface{}, []byte, error) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if len(body) > 0 {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	if err != nil {
		return nil, nil, nil, err
	}
	defer resp.Body.Close()
	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, nil, err
	}

	parsed := map[string]interface{}{}
	_ = json.Unmarshal(rawBody, &parsed)

	return resp, parsed, rawBody, nil
}

type HTTPJWTMiddlewareSuite struct {
	suite.Suite

	tokenManager *jwtmocks.TokenManager
	revocations  *middlewaremocks.SessionRevocationChecker
	app          *fiber.App
}

func (s *HTTPJWTMiddlewareSuite) SetupTest() {
	s.tokenManager = jwtmocks.NewTokenManager(s.T())
	s.revocations = middlewaremocks.NewSessionRevocationChecker(s.T())
	s.app = fiber.New()
	s.app.Use(NewHTTPJWTMiddleware(s.tokenManager, s.revocations))
	s.app.Get("/secure", func(c fiber.Ctx) error {
		claims := ClaimsFromContext(c)
		return c.JSON(fiber.Map{
			"operator_id": OperatorIDFromContext(c),
			"subject":     claims.Subject,
			"session_id":  claims.ID,
		})
	})
	s.app.Post("/api/v1/auth/login", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}

func (s *HTTPJWTMiddlewareSuite) TestNewHTTPJWTMiddleware_TableDriven() {
	claims := &sharedjwt.Claims{Subject: "operator-1", ID: "session-1"}
	bearer := map[string]string{fiber.HeaderAuthorization: "Bearer token-123"}

	tests := []struct {
		name       string
		method     string
		path       string
		headers    map[string]string
		setupMock  func()
		wantStatus int
		wantError  string
		wantBody   map[string]interface{}
	}{
		{
			name:       "sign in passes without a token",
			method:     http.MethodPost,
			path:       "/api/v1/auth/login",
			wantStatus: fiber.StatusOK,
			wantBody:   map[string]interface{}{"ok": true},
		},
		{
			name:       "no authorization header",
			wantStatus: fiber.StatusUnauthorized,
			wantError:  "missing or invalid authorization header",
		},
		{
			name:       "basic scheme",
			headers:    map[string]string{fiber.HeaderAuthorization: "Basic b3A6cHc="},
			wantStatus: fiber.StatusUnauthorized,
			wantError:  "missing or invalid authorization header",
		},
		{
			name:       "bearer without token",
			headers:    map[string]string{fiber.HeaderAuthorization: "Bearer   "},
			wantStatus: fiber.StatusUnauthorized,
			wantError:  "missing or invalid authorization header",
		},
		{
			name:    "token rejected by verifier",
			headers: bearer,
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(nil, sharedjwt.ErrIncompleteClaims)
			},
			wantStatus: fiber.StatusUnauthorized,
			wantError:  "invalid token",
		},
		{
			name:    "signed out session",
			headers: bearer,
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(claims, nil)
				s.revocations.EXPECT().IsSessionRevoked(mock.Anything, "session-1").Return(true, nil)
			},
			wantStatus: fiber.StatusUnauthorized,
			wantError:  "session has been signed out",
		},
		{
			name:    "revocation lookup failure",
			headers: bearer,
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(claims, nil)
				s.revocations.EXPECT().IsSessionRevoked(mock.Anything, "session-1").Return(false, errors.New("redis down"))
			},
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name:    "scheme is case insensitive",
			headers: map[string]string{fiber.HeaderAuthorization: "bearer token-123"},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(claims, nil)
				s.revocations.EXPECT().IsSessionRevoked(mock.Anything, "session-1").Return(false, nil)
			},
			wantStatus: fiber.StatusOK,
			wantBody: map[string]interface{}{
				"operator_id": "operator-1",
				"subject":     "operator-1",
				"session_id":  "session-1",
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			method, path := tc.method, tc.path
			if method == "" {
				method, path = http.MethodGet, "/secure"
			}

			resp, payload, _, err := doRequest(s.app, method, path, nil, tc.headers)
			require.NoError(s.T(), err)
			require.NotNil(s.T(), resp)
			assert.Equal(s.T(), tc.wantStatus, resp.StatusCode)
			if tc.wantStatus == fiber.StatusUnauthorized {
				assert.Equal(s.T(), `Bearer realm="withdraw-review"`, resp.Header.Get(fiber.HeaderWWWAuthenticate))
			}
			if tc.wantError != "" {
				assert.Equal(s.T(), tc.wantError, payload["error"])
			}
			for key, value := range tc.wantBody {
				assert.Equal(s.T(), value, payload[key])
			}
		})
	}
}

func TestHTTPJWTMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(HTTPJWTMiddlewareSuite))
}

type HTTPReviewIdempotencyMiddlewareSuite struct {
	suite.Suite

	store *idempotencymocks.Store
	app   *fiber.App
}

func (s *HTTPReviewIdempotencyMiddlewareSuite) SetupTest() {
	s.store = idempotencymocks.NewStore(s.T())
	s.app = fiber.New()
}

func (s *HTTPReviewIdempotencyMiddlewareSuite) TestNewHTTPReviewIdempotencyMiddleware_TableDriven() {
	keyed := map[string]string{IdempotencyKeyHeader: "idem-1"}
	acquired := sharedidempotency.Decision{Type: sharedidempotency.DecisionAcquired}
	matchRequest := mock.MatchedBy(func(r sharedidempotency.Request) bool {
		return r.Scope == "review:operator-1" && r.Key == "idem-1" && r.RequestHash != ""
	})

	tests := []struct {
		name          string
		nilStore      bool
		operatorID    string
		headers       map[string]string
		handlerStatus int
		setupMock     func(store *idempotencymocks.Store)
		wantStatus    int
		wantError     string
		wantBody      string
		wantLog       string
	}{
		{
			name:       "store not available",
			nilStore:   true,
			operatorID: "operator-1",
			headers:    keyed,
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "idempotency store is not available",
		},
		{
			name:       "missing authenticated operator",
			headers:    keyed,
			wantStatus: fiber.StatusUnauthorized,
			wantError:  "missing authenticated operator",
		},
		{
			name:       "without idempotency key the handler runs directly",
			operatorID: "operator-1",
			wantStatus: fiber.StatusOK,
			wantBody:   `{"status":"approved"}`,
		},
		{
			name:       "acquire failed",
			operatorID: "operator-1",
			headers:    keyed,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(sharedidempotency.Decision{}, errors.New("db down"))
			},
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "failed to acquire idempotency key",
		},
		{
			name:       "stored response is replayed without running the handler",
			operatorID: "operator-1",
			headers:    keyed,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(sharedidempotency.Decision{
					Type:        sharedidempotency.DecisionReplay,
					StatusCode:  fiber.StatusOK,
					Body:        []byte(`{"status":"replayed"}`),
					ContentType: fiber.MIMEApplicationJSON,
				}, nil)
			},
			wantStatus: fiber.StatusOK,
			wantBody:   `{"status":"replayed"}`,
		},
		{
			name:       "request still in progress",
			operatorID: "operator-1",
			headers:    keyed,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionInProgress}, nil)
			},
			wantStatus: fiber.StatusConflict,
			wantError:  "request is already in progress",
		},
		{
			name:       "key reused with another payload",
			operatorID: "operator-1",
			headers:    keyed,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionConflict}, nil)
			},
			wantStatus: fiber.StatusConflict,
			wantError:  "idempotency key reused with different payload",
		},
		{
			name:       "unknown decision",
			operatorID: "operator-1",
			headers:    keyed,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(sharedidempotency.Decision{Type: "unknown"}, nil)
			},
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "invalid idempotency state",
		},
		{
			name:       "response persisted",
			operatorID: "operator-1",
			headers:    keyed,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(acquired, nil)
				store.EXPECT().Complete(mock.Anything, matchRequest, mock.MatchedBy(func(r sharedidempotency.StoredResponse) bool {
					return r.StatusCode == fiber.StatusOK && string(r.Body) == `{"status":"approved"}`
				})).Return(nil)
			},
			wantStatus: fiber.StatusOK,
			wantBody:   `{"status":"approved"}`,
		},
		{
			name:       "persist failed",
			operatorID: "operator-1",
			headers:    keyed,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(acquired, nil)
				store.EXPECT().Complete(mock.Anything, matchRequest, mock.Anything).Return(errors.New("db down"))
			},
			wantStatus: fiber.StatusInternalServerError,
			wantError:  "failed to persist idempotency response",
		},
		{
			name:          "server error releases the key",
			operatorID:    "operator-1",
			headers:       keyed,
			handlerStatus: fiber.StatusInternalServerError,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(acquired, nil)
				store.EXPECT().Release(mock.Anything, matchRequest).Return(nil)
			},
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   `{"status":"approved"}`,
		},
		{
			name:          "failed release is logged",
			operatorID:    "operator-1",
			headers:       keyed,
			handlerStatus: fiber.StatusInternalServerError,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(acquired, nil)
				store.EXPECT().Release(mock.Anything, matchRequest).Return(errors.New("redis down"))
			},
			wantStatus: fiber.StatusInternalServerError,
			wantBody:   `{"status":"approved"}`,
			wantLog:    "idempotency release failed",
		},
		{
			name:          "client error is stored for replay",
			operatorID:    "operator-1",
			headers:       keyed,
			handlerStatus: fiber.StatusBadRequest,
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, matchRequest).Return(acquired, nil)
				store.EXPECT().Complete(mock.Anything, matchRequest, mock.MatchedBy(func(r sharedidempotency.StoredResponse) bool {
					return r.StatusCode == fiber.StatusBadRequest
				})).Return(nil)
			},
			wantStatus: fiber.StatusBadRequest,
			wantBody:   `{"status":"approved"}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()

			var store sharedidempotency.Store
			if !tc.nilStore {
				if tc.setupMock != nil {
					tc.setupMock(s.store)
				}
				store = s.store
			}

			handlerStatus := tc.handlerStatus
			if handlerStatus == 0 {
				handlerStatus = fiber.StatusOK
			}

			s.app.Use(func(c fiber.Ctx) error {
				if tc.operatorID != "" {
					c.Locals(LocalOperatorID, tc.operatorID)
				}
				return c.Next()
			})
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))
			s.app.Post("/approvals/sel-1", NewHTTPReviewIdempotencyMiddleware(store, logger), func(c fiber.Ctx) error {
				return c.Status(handlerStatus).JSON(fiber.Map{"status": "approved"})
			})

			resp, payload, raw, err := doRequest(s.app, http.MethodPost, "/approvals/sel-1", []byte(`{"gift_card_number":"GC-1"}`), tc.headers)
			require.NoError(s.T(), err)
			require.NotNil(s.T(), resp)
			assert.Equal(s.T(), tc.wantStatus, resp.StatusCode)
			if tc.wantError != "" {
				assert.Equal(s.T(), tc.wantError, payload["error"])
			}
			if tc.wantBody != "" {
				assert.JSONEq(s.T(), tc.wantBody, string(raw))
			}
			if tc.wantLog != "" {
				assert.Contains(s.T(), logs.String(), tc.wantLog)
				assert.Contains(s.T(), logs.String(), "key=idem-1")
			} else {
				assert.NotContains(s.T(), logs.String(), "idempotency release failed")
			}
		})
	}
}

func (s *HTTPReviewIdempotencyMiddlewareSuite) TestReviewRequestHash_TableDriven() {
	tests := []struct {
		name       string
		method     string
		path       string
		operatorID string
		body       []byte
		other      []byte
		assertFn   func(string, string)
	}{
		{
			name:       "same payload produces same hash",
			method:     "post",
			path:       " /approvals/sel-1 ",
			operatorID: " operator-1 ",
			body:       []byte(`{"gift_card_number":"GC-1"}`),
			other:      []byte(`{"gift_card_number":"GC-1"}`),
			assertFn: func(left, right string) {
				assert.Equal(s.T(), left, right)
			},
		},
		{
			name:       "different payload produces different hash",
			method:     "POST",
			path:       "/approvals/sel-1",
			operatorID: "operator-1",
			body:       []byte(`{"gift_card_number":"GC-1"}`),
			other:      []byte(`{"gift_card_number":"GC-2"}`),
			assertFn: func(left, right string) {
				assert.NotEqual(s.T(), left, right)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			first := reviewRequestHash(tc.method, tc.path, tc.operatorID, tc.body)
			second := reviewRequestHash(tc.method, tc.path, tc.operatorID, tc.other)
			tc.assertFn(first, second)
		})
	}
}

func TestHTTPReviewIdempotencyMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(HTTPReviewIdempotencyMiddlewareSuite))
}

type stubRateLimiter struct {
	result    sharedratelimit.Result
	err       error
	lastKey   string
	resetKeys []string
}

func (s *stubRateLimiter) Allow(_ context.Context, key string) (sharedratelimit.Result, error) {
	s.lastKey = key
	return s.result, s.err
}

func (s *stubRateLimiter) Reset(_ context.Context, key string) error {
	s.resetKeys = append(s.resetKeys, key)
	return nil
}

func (s *stubRateLimiter) Close() error {
	return nil
}

func TestHTTPRateLimitMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name          string
		limiter       *stubRateLimiter
		keyExtractor  func(c fiber.Ctx) string
		expectedCode  int
		expectedError string
		assertHeaders bool
		expectedKey   string
	}{
		{
			name:          "allows request and sets headers",
			limiter:       &stubRateLimiter{result: sharedratelimit.Result{Allowed: true, Limit: 20, Remaining: 19, ResetAt: time.Unix(200, 0)}},
			keyExtractor:  func(c fiber.Ctx) string { return "review:operator:test-operator" },
			expectedCode:  fiber.StatusOK,
			assertHeaders: true,
			expectedKey:   "review:operator:test-operator",
		},
		{
			name:          "rejects when limit exceeded",
			limiter:       &stubRateLimiter{result: sharedratelimit.Result{Allowed: false, Limit: 20, Remaining: 0, RetryAfter: 5 * time.Second, ResetAt: time.Unix(250, 0)}},
			keyExtractor:  func(c fiber.Ctx) string { return "review:operator:test-operator" },
			expectedCode:  fiber.StatusTooManyRequests,
			expectedError: "rate limit exceeded",
			expectedKey:   "review:operator:test-operator",
		},
		{
			name:          "returns internal error when limiter fails",
			limiter:       &stubRateLimiter{err: errors.New("boom")},
			keyExtractor:  func(c fiber.Ctx) string { return "review:operator:test-operator" },
			expectedCode:  fiber.StatusInternalServerError,
			expectedError: "internal server error",
			expectedKey:   "review:operator:test-operator",
		},
		{
			name:          "passes through when limiter is nil",
			limiter:       nil,
			keyExtractor:  func(c fiber.Ctx) string { return "review:operator:test-operator" },
			expectedCode:  fiber.StatusOK,
			expectedError: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(func(c fiber.Ctx) error {
				c.Locals(LocalOperatorID, "test-operator")
				return c.Next()
			})

			var limiter sharedratelimit.Limiter
			if tc.limiter != nil {
				limiter = tc.limiter
			}

			app.Use(NewHTTPRateLimitMiddleware(RateLimitConfig{
				Limiter:      limiter,
				KeyExtractor: tc.keyExtractor,
			}))

			app.Get("/limited", func(c fiber.Ctx) error {
				return c.JSON(fiber.Map{"ok": true})
			})

			resp, payload, _, err := doRequest(app, http.MethodGet, "/limited", nil, nil)
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tc.expectedCode, resp.StatusCode)

			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, payload["error"])
			}

			if tc.assertHeaders {
				assert.Equal(t, "20", resp.Header.Get("X-RateLimit-Limit"))
				assert.Equal(t, "19", resp.Header.Get("X-RateLimit-Remaining"))
			}

			if tc.limiter != nil {
				assert.Equal(t, tc.expectedKey, tc.limiter.lastKey)
			}
		})
	}
}

func TestRateLimitKeyExtractors_TableDriven(t *testing.T) {
	tests := []struct {
		name       string
		operatorID string
		extractor  func(c fiber.Ctx) string
		expected   string
	}{
		{name: "operator bucket", operatorID: "operator-1", extractor: PerOperatorKeyExtractor("review"), expected: "review:operator:operator-1"},
		{name: "operator bucket falls back to ip", extractor: PerOperatorKeyExtractor("review"), expected: "review:ip:"},
		{name: "ip bucket ignores operator", operatorID: "operator-1", extractor: PerIPKeyExtractor("login"), expected: "login:ip:"},
		{name: "default prefers operator", operatorID: "operator-1", extractor: nil, expected: "operator:operator-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			limiter := &stubRateLimiter{result: sharedratelimit.Result{Allowed: true}}

			app := fiber.New()
			app.Use(func(c fiber.Ctx) error {
				if tc.operatorID != "" {
					c.Locals(LocalOperatorID, tc.operatorID)
				}
				return c.Next()
			})
			app.Use(NewHTTPRateLimitMiddleware(RateLimitConfig{Limiter: limiter, KeyExtractor: tc.extractor}))
			app.Get("/limited", func(c fiber.Ctx) error {
				return c.SendStatus(fiber.StatusNoContent)
			})

			resp, _, _, err := doRequest(app, http.MethodGet, "/limited", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
			if strings.HasSuffix(tc.expected, ":ip:") {
				assert.True(t, strings.HasPrefix(limiter.lastKey, tc.expected), limiter.lastKey)
				return
			}
			assert.Equal(t, tc.expected, limiter.lastKey)
		})
	}
}

func TestHTTPRateLimitMiddleware_ResetOnSuccess(t *testing.T) {
	tests := []struct {
		name           string
		resetOnSuccess bool
		status         int
		expectedResets []string
	}{
		{name: "successful sign in clears the bucket", resetOnSuccess: true, status: fiber.StatusOK, expectedResets: []string{"login:ip:0.0.0.0"}},
		{name: "failed sign in keeps counting", resetOnSuccess: true, status: fiber.StatusUnauthorized},
		{name: "reset disabled", status: fiber.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			limiter := &stubRateLimiter{result: sharedratelimit.Result{Allowed: true}}

			app := fiber.New()
			app.Post("/auth/login", NewHTTPRateLimitMiddleware(RateLimitConfig{
				Limiter:        limiter,
				KeyExtractor:   func(fiber.Ctx) string { return "login:ip:0.0.0.0" },
				ResetOnSuccess: tc.resetOnSuccess,
			}), func(c fiber.Ctx) error {
				return c.SendStatus(tc.status)
			})

			resp, _, _, err := doRequest(app, http.MethodPost, "/auth/login", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.expectedResets, limiter.resetKeys)
		})
	}
}

func TestRetryAfterSeconds_TableDriven(t *testing.T) {
	tests := []struct {
		name   string
		input  time.Duration
		expect int
	}{
		{name: "zero waits one second", input: 0, expect: 1},
		{name: "rounds up partial seconds", input: 1500 * time.Millisecond, expect: 2},
		{name: "whole seconds kept", input: 5 * time.Second, expect: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, retryAfterSeconds(tc.input))
		})
	}
}

func TestHTTPRequestResponseLogMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name        string
		handler     fiber.Handler
		expectLevel string
		expectCode  float64
	}{
		{name: "success logs info", handler: func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }, expectLevel: "INFO", expectCode: 200},
		{name: "client error logs warn", handler: func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) }, expectLevel: "WARN", expectCode: 404},
		{name: "server error logs error", handler: func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusInternalServerError) }, expectLevel: "ERROR", expectCode: 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			app := fiber.New()
			app.Use(NewHTTPRequestIDMiddleware())
			app.Use(func(c fiber.Ctx) error {
				c.Locals(LocalOperatorID, "operator-1")
				return c.Next()
			})
			app.Use(NewHTTPRequestResponseLogMiddleware(logger))
			app.Get("/withdrawals/pending", tc.handler)

			_, _, _, err := doRequest(app, http.MethodGet, "/withdrawals/pending", nil, nil)
			require.NoError(t, err)

			var record map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
			assert.Equal(t, "http_request", record["msg"])
			assert.Equal(t, tc.expectLevel, record["level"])
			assert.Equal(t, tc.expectCode, record["status"])
			assert.Equal(t, "operator-1", record["operator_id"])
			assert.NotEmpty(t, record["request_id"])
		})
	}
}

func TestHTTPRecoveryMiddleware_LogsPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	app := fiber.New()
	app.Use(NewHTTPRecoveryMiddleware(logger))
	app.Get("/boom", func(fiber.Ctx) error {
		panic("selection store exploded")
	})

	resp, _, _, err := doRequest(app, http.MethodGet, "/boom", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "selection store exploded")
}
