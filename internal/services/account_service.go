// Package services はビジネスロジック層を提供します。
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"electro-todo/backend/internal/models"
	"electro-todo/backend/internal/repositories"
)

// ErrInvalidCredentials は認証失敗時のエラーです。
// 「アカウントが存在しない」と「パスワードが違う」を呼び出し側から区別できないようにします。
var ErrInvalidCredentials = errors.New("invalid credentials")

// AccountService はアカウント関連のビジネスロジックを扱います。
type AccountService struct {
	accountRepo *repositories.AccountRepository
	logger      *logrus.Logger
}

// NewAccountService は新しいAccountServiceを作成します。
func NewAccountService(accountRepo *repositories.AccountRepository, logger *logrus.Logger) *AccountService {
	return &AccountService{accountRepo: accountRepo, logger: logger}
}

// Register はアカウントを登録します。
// 重複はINSERT時のUNIQUE制約違反として repositories.ErrDuplicateAccount で返ります。
func (s *AccountService) Register(req models.AccountRegisterRequest) (*models.Account, error) {
	hashedPassword, err := repositories.HashPassword(req.Password)
	if err != nil {
		s.logger.Errorf("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.accountRepo.Create(req.Username, req.Email, hashedPassword)
}

// Authenticate はメールアドレスとパスワードでアカウントを認証します。
func (s *AccountService) Authenticate(req models.AccountLoginRequest) (*models.Account, error) {
	account, err := s.accountRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := repositories.VerifyPassword(account.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	account.PasswordHash = "" // レスポンスにハッシュを含めない
	return account, nil
}
