package services

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"electro-todo/backend/internal/models"
)

// tokenTTL はログイントークンの有効期間です。
const tokenTTL = time.Hour

// JWTService はJWTトークンの生成と検証を扱います。
type JWTService struct {
	secret []byte
}

// claims はトークンに署名するクレームセットです。
type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewJWTService は新しいJWTServiceを作成します。
// secretが空の場合はプロセス起動ごとにランダムな32バイトを生成します。
// その場合、発行済みトークンは再起動後に無効になります。
func NewJWTService(secret string, logger *logrus.Logger) (*JWTService, error) {
	if secret != "" {
		return &JWTService{secret: []byte(secret)}, nil
	}

	random := make([]byte, 32)
	if _, err := rand.Read(random); err != nil {
		return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	logger.Warn("JWT_SECRET not set; generated an in-memory secret, tokens will not survive a restart")
	return &JWTService{secret: random}, nil
}

// GenerateToken は指定されたメールアドレスをクレームに持つJWTトークンを生成します。
func (s *JWTService) GenerateToken(email string) (string, error) {
	now := time.Now()
	c := &claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign JWT token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken はJWTトークンを検証し、クレームを返します。
func (s *JWTService) ValidateToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if c, ok := token.Claims.(*claims); ok && token.Valid {
		return &models.TokenClaims{Email: c.Email}, nil
	}

	return nil, fmt.Errorf("invalid token")
}
