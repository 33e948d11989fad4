package repositories

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost はパスワードハッシュのワークファクターです（固定）。
const bcryptCost = 10

// HashPassword は与えられたパスワードをbcryptでハッシュ化します。
// ソルトが毎回変わるため、同じ入力でも出力は毎回異なります。
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// VerifyPassword はハッシュ化されたパスワードと平文のパスワードを比較します。
// 不正な形式のハッシュでもpanicせず、エラー（照合失敗）として扱います。
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
