package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func newSQLXMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mockDB, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return sqlx.NewDb(sqlDB, "sqlmock"), mockDB
}

var (
	selectKeyQuery   = regexp.QuoteMeta("SELECT request_hash, status, response_status, response_body, response_content_type, locked_until")
	insertKeyQuery   = regexp.QuoteMeta("INSERT INTO review_idempotency")
	reacquireQuery   = regexp.QuoteMeta("UPDATE review_idempotency\nSET status = 'in_progress'")
	completeKeyQuery = regexp.QuoteMeta("UPDATE review_idempotency\nSET\n\tstatus = 'completed'")
	releaseKeyQuery  = regexp.QuoteMeta("DELETE FROM review_idempotency")
	idempotencyCols  = []string{"request_hash", "status", "response_status", "response_body", "response_content_type", "locked_until"}
)

type SQLXStoreSuite struct{ suite.Suite }

func (s *SQLXStoreSuite) TestAcquire_TableDriven() {
	request := Request{Scope: "review:operator-1", Key: "idem-1", RequestHash: "hash-1"}

	tests := []struct {
		name      string
		request   Request
		setupMock func(sqlmock.Sqlmock)
		assertion func(Decision, error)
	}{
		{
			name:    "scope required",
			request: Request{Key: "k", RequestHash: "h"},
			assertion: func(_ Decision, err error) {
				assert.ErrorContains(s.T(), err, "scope is required")
			},
		},
		{
			name:    "key required",
			request: Request{Scope: "s", RequestHash: "h"},
			assertion: func(_ Decision, err error) {
				assert.ErrorContains(s.T(), err, "key is required")
			},
		},
		{
			name:    "new key acquired",
			request: request,
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectBegin()
				mockDB.ExpectQuery(selectKeyQuery).WithArgs("review:operator-1", "idem-1").WillReturnError(sql.ErrNoRows)
				mockDB.ExpectExec(insertKeyQuery).WithArgs("review:operator-1", "idem-1", "hash-1", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(1, 1))
				mockDB.ExpectCommit()
			},
			assertion: func(decision Decision, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), DecisionAcquired, decision.Type)
			},
		},
		{
			name:    "different payload conflicts",
			request: request,
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectBegin()
				mockDB.ExpectQuery(selectKeyQuery).WillReturnRows(sqlmock.NewRows(idempotencyCols).
					AddRow("other-hash", "in_progress", nil, nil, nil, time.Now().Add(time.Minute)))
				mockDB.ExpectCommit()
			},
			assertion: func(decision Decision, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), DecisionConflict, decision.Type)
			},
		},
		{
			name:    "completed key replays",
			request: request,
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectBegin()
				mockDB.ExpectQuery(selectKeyQuery).WillReturnRows(sqlmock.NewRows(idempotencyCols).
					AddRow("hash-1", "completed", int64(200), []byte(`{"applied":true}`), "application/json", time.Now()))
				mockDB.ExpectCommit()
			},
			assertion: func(decision Decision, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), DecisionReplay, decision.Type)
				assert.Equal(s.T(), 200, decision.StatusCode)
				assert.JSONEq(s.T(), `{"applied":true}`, string(decision.Body))
				assert.Equal(s.T(), "application/json", decision.ContentType)
			},
		},
		{
			name:    "locked key is in progress",
			request: request,
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectBegin()
				mockDB.ExpectQuery(selectKeyQuery).WillReturnRows(sqlmock.NewRows(idempotencyCols).
					AddRow("hash-1", "in_progress", nil, nil, nil, time.Now().Add(time.Minute)))
				mockDB.ExpectCommit()
			},
			assertion: func(decision Decision, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), DecisionInProgress, decision.Type)
			},
		},
		{
			name:    "expired lock is reacquired",
			request: request,
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectBegin()
				mockDB.ExpectQuery(selectKeyQuery).WillReturnRows(sqlmock.NewRows(idempotencyCols).
					AddRow("hash-1", "in_progress", nil, nil, nil, time.Now().Add(-time.Minute)))
				mockDB.ExpectExec(reacquireQuery).WithArgs("review:operator-1", "idem-1", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
				mockDB.ExpectCommit()
			},
			assertion: func(decision Decision, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), DecisionAcquired, decision.Type)
			},
		},
		{
			name:    "begin failure",
			request: request,
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectBegin().WillReturnError(errors.New("down"))
			},
			assertion: func(_ Decision, err error) {
				assert.ErrorContains(s.T(), err, "failed to start transaction")
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			if tc.setupMock != nil {
				tc.setupMock(mockDB)
			}

			decision, err := NewSQLXStore(db).Acquire(context.Background(), tc.request)
			tc.assertion(decision, err)
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func (s *SQLXStoreSuite) TestComplete_TableDriven() {
	request := Request{Scope: "review:operator-1", Key: "idem-1", RequestHash: "hash-1"}
	response := StoredResponse{StatusCode: 200, Body: []byte(`{}`), ContentType: " application/json "}

	tests := []struct {
		name      string
		setupMock func(sqlmock.Sqlmock)
		assertion func(error)
	}{
		{
			name: "persisted",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(completeKeyQuery).
					WithArgs("review:operator-1", "idem-1", "hash-1", 200, []byte(`{}`), "application/json").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertion: func(err error) { assert.NoError(s.T(), err) },
		},
		{
			name: "missing key",
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(completeKeyQuery).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertion: func(err error) { assert.ErrorContains(s.T(), err, "key not found for completion") },
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			tc.setupMock(mockDB)

			tc.assertion(NewSQLXStore(db).Complete(context.Background(), request, response))
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func (s *SQLXStoreSuite) TestRelease_TableDriven() {
	tests := []struct {
		name      string
		request   Request
		setupMock func(sqlmock.Sqlmock)
		assertion func(error)
	}{
		{
			name:    "deletes in progress key",
			request: Request{Scope: "review:operator-1", Key: " idem-1 ", RequestHash: "hash-1"},
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(releaseKeyQuery).
					WithArgs("review:operator-1", "idem-1", "hash-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertion: func(err error) { assert.NoError(s.T(), err) },
		},
		{
			name:    "nothing to release",
			request: Request{Scope: "review:operator-1", Key: "idem-1", RequestHash: "hash-1"},
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(releaseKeyQuery).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertion: func(err error) { assert.NoError(s.T(), err) },
		},
		{
			name:    "delete failed",
			request: Request{Scope: "review:operator-1", Key: "idem-1", RequestHash: "hash-1"},
			setupMock: func(mockDB sqlmock.Sqlmock) {
				mockDB.ExpectExec(releaseKeyQuery).WillReturnError(errors.New("connection reset"))
			},
			assertion: func(err error) { assert.ErrorContains(s.T(), err, "failed to release key") },
		},
		{
			name:      "missing hash",
			request:   Request{Scope: "review:operator-1", Key: "idem-1"},
			setupMock: func(sqlmock.Sqlmock) {},
			assertion: func(err error) { assert.ErrorContains(s.T(), err, "request hash is required") },
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			db, mockDB := newSQLXMock(s.T())
			tc.setupMock(mockDB)

			tc.assertion(NewSQLXStore(db).Release(context.Background(), tc.request))
			require.NoError(s.T(), mockDB.ExpectationsWereMet())
		})
	}
}

func TestSQLXStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLXStoreSuite))
}
