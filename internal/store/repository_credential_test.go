package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trustme/internal/logger"
	"github.com/MKhiriev/trustme/models"
)

func newTestCredentialRepo(t *testing.T) (CredentialRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewCredentialRepository(db, logger.Nop()), mock
}

func testField(tag string) models.EncryptedField {
	return models.EncryptedField{Ciphertext: "Y2lwaGVy" + tag, Nonce: "bm9uY2Vub25jZTEy", Tag: "dGFndGFndGFndGFndGFnMQ=="}
}

func testCredential() models.Credential {
	notes := testField("notes")
	return models.Credential{
		UserID:     1,
		WebsiteURL: "https://github.com",
		Username:   testField("user"),
		Password:   testField("pass"),
		Notes:      &notes,
	}
}

func credentialRows() *sqlmock.Rows {
	return sqlmock.NewRows(credentialColumns)
}

func addCredentialRow(rows *sqlmock.Rows, id int64, c models.Credential) *sqlmock.Rows {
	now := time.Now()
	var nc, nn, nt any
	if c.Notes != nil {
		nc, nn, nt = c.Notes.Ciphertext, c.Notes.Nonce, c.Notes.Tag
	}
	return rows.AddRow(
		id, c.UserID, c.WebsiteURL,
		c.Username.Ciphertext, c.Username.Nonce, c.Username.Tag,
		c.Password.Ciphertext, c.Password.Nonce, c.Password.Tag,
		nc, nn, nt,
		now, now,
	)
}

func TestCreateCredential(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	c := testCredential()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO credentials").
		WithArgs(
			c.UserID, c.WebsiteURL,
			c.Username.Ciphertext, c.Username.Nonce, c.Username.Tag,
			c.Password.Ciphertext, c.Password.Nonce, c.Password.Tag,
			c.Notes.Ciphertext, c.Notes.Nonce, c.Notes.Tag,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))

	saved, err := repo.CreateCredential(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(10), saved.ID)
	assert.Equal(t, now, saved.CreatedAt)
	assert.Equal(t, c.Password, saved.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCredential_WithoutNotesStoresNulls(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	c := testCredential()
	c.Notes = nil
	now := time.Now()

	mock.ExpectQuery("INSERT INTO credentials").
		WithArgs(
			c.UserID, c.WebsiteURL,
			c.Username.Ciphertext, c.Username.Nonce, c.Username.Tag,
			c.Password.Ciphertext, c.Password.Nonce, c.Password.Tag,
			nil, nil, nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

	saved, err := repo.CreateCredential(context.Background(), c)
	require.NoError(t, err)
	assert.Nil(t, saved.Notes)
}

func TestCreateCredentials_Batch(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	first, second := testCredential(), testCredential()
	second.WebsiteURL = "https://gitlab.com"
	now := time.Now()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO credentials")
	prep.ExpectQuery().
		WithArgs(sqlmock.AnyArg(), "https://github.com", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))
	prep.ExpectQuery().
		WithArgs(sqlmock.AnyArg(), "https://gitlab.com", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(2, now, now))
	mock.ExpectCommit()

	saved, err := repo.CreateCredentials(context.Background(), []models.Credential{first, second})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, int64(1), saved[0].ID)
	assert.Equal(t, int64(2), saved[1].ID)
	assert.Equal(t, "https://gitlab.com", saved[1].WebsiteURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCredentials_RollsBackOnFailure(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO credentials")
	prep.ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))
	prep.ExpectQuery().
		WillReturnError(errors.New("check constraint violated"))
	mock.ExpectRollback()

	saved, err := repo.CreateCredentials(context.Background(), []models.Credential{testCredential(), testCredential()})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Nil(t, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCredentials_BeginFails(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.CreateCredentials(context.Background(), []models.Credential{testCredential()})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestListCredentials(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	withNotes := testCredential()
	withoutNotes := testCredential()
	withoutNotes.Notes = nil

	rows := credentialRows()
	addCredentialRow(rows, 1, withNotes)
	addCredentialRow(rows, 2, withoutNotes)

	mock.ExpectQuery(regexp.QuoteMeta("FROM credentials WHERE user_id = $1 ORDER BY id")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	list, err := repo.ListCredentials(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	require.NotNil(t, list[0].Notes)
	assert.Equal(t, withNotes.Notes.Ciphertext, list[0].Notes.Ciphertext)
	assert.Nil(t, list[1].Notes)
}

func TestListCredentials_WebsiteFilter(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND website_url ILIKE $2 ORDER BY id")).
		WithArgs(int64(1), "%GitHub%").
		WillReturnRows(credentialRows())

	list, err := repo.ListCredentials(context.Background(), 1, "GitHub")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestListCredentials_RetriesTransientError(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("FROM credentials").WillReturnError(pgError("40001"))
	mock.ExpectQuery("FROM credentials").WillReturnRows(addCredentialRow(credentialRows(), 5, testCredential()))

	list, err := repo.ListCredentials(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCredential(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
			WithArgs(int64(5), int64(1)).
			WillReturnRows(addCredentialRow(credentialRows(), 5, testCredential()))

		c, err := repo.GetCredential(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), c.ID)
		assert.Equal(t, int64(1), c.UserID)
	})

	t.Run("owned by someone else", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
			WithArgs(int64(5), int64(2)).
			WillReturnRows(credentialRows())

		_, err := repo.GetCredential(context.Background(), 2, 5)
		assert.ErrorIs(t, err, ErrCredentialNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectQuery("FROM credentials").WillReturnError(errors.New("boom"))

		_, err := repo.GetCredential(context.Background(), 1, 5)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestUpdateCredential(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	url := "https://new.example.com"
	password := testField("newpass")
	updated := testCredential()
	updated.WebsiteURL = url
	updated.Password = password
	updated.Notes = nil

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE credentials SET website_url = $1, password_ciphertext = $2, password_nonce = $3, password_tag = $4, notes_ciphertext = $5, notes_nonce = $6, notes_tag = $7, updated_at = NOW() WHERE id = $8 AND user_id = $9 RETURNING id")).
		WithArgs(url, password.Ciphertext, password.Nonce, password.Tag, nil, nil, nil, int64(5), int64(1)).
		WillReturnRows(addCredentialRow(credentialRows(), 5, updated))

	c, err := repo.UpdateCredential(context.Background(), 1, 5, models.CredentialPatch{
		WebsiteURL: &url,
		Password:   &password,
		ClearNotes: true,
	})
	require.NoError(t, err)
	assert.Equal(t, url, c.WebsiteURL)
	assert.Equal(t, password, c.Password)
	assert.Nil(t, c.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCredential_NotFound(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	url := "https://new.example.com"

	mock.ExpectQuery("UPDATE credentials").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateCredential(context.Background(), 1, 99, models.CredentialPatch{WebsiteURL: &url})
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestDeleteCredential(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credentials WHERE id = $1 AND user_id = $2")).
			WithArgs(int64(5), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteCredential(context.Background(), 1, 5))
	})

	t.Run("missing or foreign", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectExec("DELETE FROM credentials").
			WithArgs(int64(5), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteCredential(context.Background(), 2, 5), ErrCredentialNotFound)
	})
}
