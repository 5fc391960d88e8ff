package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/models"
)

var userRowColumns = []string{"user_id", "username", "password_verifier", "salt", "two_factor_enabled", "two_factor_secret", "created_at"}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA", "c2FsdHNhbHRzYWx0c2FsdA==").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "alice", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA", "c2FsdHNhbHRzYWx0c2FsdA==", false, "", now))

	created, err := repo.CreateUser(context.Background(), models.User{
		Username:         "alice",
		PasswordVerifier: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		Salt:             "c2FsdHNhbHRzYWx0c2FsdA==",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "alice", created.Username)
	assert.False(t, created.TwoFactorEnabled)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	assert.Error(t, err)
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(7, "alice", "verifier", "salt", true, "JBSWY3DPEHPK3PXP", time.Now()))

	found, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
	assert.True(t, found.TwoFactorEnabled)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", found.TwoFactorSecret)
	assert.Equal(t, models.TwoFactorEnabled, found.TwoFactorState())
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByUsername_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("alice").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT user_id").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "alice", "verifier", "salt", false, "", time.Now()))

	found, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_NonRetryableErrorIsNotRetried(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("alice").
		WillReturnError(pgError(pgerrcode.SyntaxError))

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTwoFactorTransitions(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		run     func(UserRepository) error
		args    []driver.Value
		result  sql.Result
		execErr error
		wantErr error
	}{
		{
			name:   "set secret",
			query:  "UPDATE users SET two_factor_secret",
			run:    func(r UserRepository) error { return r.SetTwoFactorSecret(context.Background(), 1, "SECRET") },
			args:   []driver.Value{int64(1), "SECRET"},
			result: sqlmock.NewResult(0, 1),
		},
		{
			name:    "set secret while enabled",
			query:   "UPDATE users SET two_factor_secret",
			run:     func(r UserRepository) error { return r.SetTwoFactorSecret(context.Background(), 1, "SECRET") },
			args:    []driver.Value{int64(1), "SECRET"},
			result:  sqlmock.NewResult(0, 0),
			wantErr: ErrTwoFactorStateConflict,
		},
		{
			name:   "enable",
			query:  "UPDATE users SET two_factor_enabled = TRUE",
			run:    func(r UserRepository) error { return r.EnableTwoFactor(context.Background(), 1, "SECRET") },
			args:   []driver.Value{int64(1), "SECRET"},
			result: sqlmock.NewResult(0, 1),
		},
		{
			name:    "enable with stale secret",
			query:   "UPDATE users SET two_factor_enabled = TRUE",
			run:     func(r UserRepository) error { return r.EnableTwoFactor(context.Background(), 1, "OLD") },
			args:    []driver.Value{int64(1), "OLD"},
			result:  sqlmock.NewResult(0, 0),
			wantErr: ErrTwoFactorStateConflict,
		},
		{
			name:   "disable",
			query:  "UPDATE users SET two_factor_enabled = FALSE",
			run:    func(r UserRepository) error { return r.DisableTwoFactor(context.Background(), 1) },
			args:   []driver.Value{int64(1)},
			result: sqlmock.NewResult(0, 1),
		},
		{
			name:    "disable db error",
			query:   "UPDATE users SET two_factor_enabled = FALSE",
			run:     func(r UserRepository) error { return r.DisableTwoFactor(context.Background(), 1) },
			args:    []driver.Value{int64(1)},
			execErr: errors.New("connection reset"),
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectExec(tt.query).WithArgs(tt.args...)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := tt.run(repo)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteUser(context.Background(), 3))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("DELETE FROM users").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteUser(context.Background(), 3), ErrNoUserWasFound)
	})
}
