package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"electro-todo/backend/internal/models"
)

var (
	// ErrDuplicateAccount はusernameまたはemailが既に登録済みの場合のエラーです。
	ErrDuplicateAccount = errors.New("username or email already exists")
	// ErrAccountNotFound はアカウントが見つからない場合のエラーです。
	ErrAccountNotFound = errors.New("account not found")
)

// AccountRepository はauthenticationテーブルの操作を行うための構造体です。
type AccountRepository struct {
	DB     *sql.DB
	logger *logrus.Logger
}

// NewAccountRepository は新しいAccountRepositoryインスタンスを作成します。
func NewAccountRepository(db *sql.DB, logger *logrus.Logger) *AccountRepository {
	return &AccountRepository{DB: db, logger: logger}
}

// Create は新しいアカウントを挿入します。
// 重複チェックは事前SELECTではなく、UNIQUE制約違反（MySQLエラー1062）を
// 唯一の根拠とします。並行登録でもすり抜けが起きません。
func (r *AccountRepository) Create(username, email, passwordHash string) (*models.Account, error) {
	query := "INSERT INTO authentication (username, email, password) VALUES (?, ?, ?)"
	result, err := r.DB.Exec(query, username, email, passwordHash)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return nil, ErrDuplicateAccount
		}
		r.logger.Errorf("Failed to insert account: %v", err)
		return nil, fmt.Errorf("could not insert account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	return &models.Account{
		ID:       int(id),
		Username: username,
		Email:    email,
	}, nil
}

// FindAll はすべてのアカウントを取得します。
// password列はSELECTに含めず、ハッシュがレスポンスに乗る余地を残しません。
func (r *AccountRepository) FindAll() ([]*models.Account, error) {
	query := "SELECT id, username, email FROM authentication ORDER BY id"

	rows, err := r.DB.Query(query)
	if err != nil {
		r.logger.Errorf("Failed to query accounts: %v", err)
		return nil, fmt.Errorf("could not query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []*models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.Email); err != nil {
			r.logger.Errorf("Failed to scan account: %v", err)
			return nil, fmt.Errorf("could not scan account: %w", err)
		}
		accounts = append(accounts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// FindByEmail はメールアドレスでアカウントを検索します。ハッシュ照合用にpassword列も含みます。
func (r *AccountRepository) FindByEmail(email string) (*models.Account, error) {
	query := "SELECT id, username, email, password FROM authentication WHERE email = ?"

	var a models.Account
	err := r.DB.QueryRow(query, email).Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		r.logger.Errorf("Failed to query account by email: %v", err)
		return nil, fmt.Errorf("could not query account: %w", err)
	}

	return &a, nil
}

// Delete は指定されたIDのアカウントを削除します。
func (r *AccountRepository) Delete(id int) error {
	result, err := r.DB.Exec("DELETE FROM authentication WHERE id = ?", id)
	if err != nil {
		r.logger.Errorf("Failed to delete account: %v", err)
		return fmt.Errorf("could not delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
