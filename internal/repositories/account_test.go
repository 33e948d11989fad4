package repositories

import (
	"database/sql"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccountRepo(t *testing.T) (*AccountRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewAccountRepository(db, logger), mock, db
}

func TestAccountCreate_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO authentication").
		WithArgs("alice", "a@x.com", "hashed").
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.Create("alice", "a@x.com", "hashed")
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Empty(t, created.PasswordHash, "hash must not be echoed back")
}

func TestAccountCreate_Duplicate(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	// UNIQUE制約違反（MySQLエラー1062）が重複判定の唯一の根拠
	mock.ExpectExec("INSERT INTO authentication").
		WithArgs("alice", "other@x.com", sqlmock.AnyArg()).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'username'"})

	_, err := repo.Create("alice", "other@x.com", "hashed")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestAccountCreate_StoreError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO authentication").
		WithArgs("alice", "a@x.com", "hashed").
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create("alice", "a@x.com", "hashed")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateAccount)
}

func TestAccountFindAll_ProjectsOutPasswordColumn(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "email"}).
		AddRow(1, "alice", "a@x.com").
		AddRow(2, "bob42", "b@x.com")
	mock.ExpectQuery("SELECT id, username, email FROM authentication").
		WillReturnRows(rows)

	accounts, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "alice", accounts[0].Username)
	assert.Empty(t, accounts[0].PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountFindByEmail_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password"}).
		AddRow(1, "alice", "a@x.com", "$2a$10$somehash")
	mock.ExpectQuery("SELECT id, username, email, password FROM authentication WHERE email = ").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	account, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "$2a$10$somehash", account.PasswordHash)
}

func TestAccountFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, email, password FROM authentication WHERE email = ").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail("nobody@x.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountDelete_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM authentication WHERE id = ").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(1))
}

func TestAccountDelete_NotFound(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM authentication WHERE id = ").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(99), ErrAccountNotFound)
}
