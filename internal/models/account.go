package models

// Account はアカウントのデータベース構造体を表します。
// PasswordHash はJSONに出さない（レスポンスにハッシュを含めないため）。
type Account struct {
	ID           int    `json:"id,omitempty"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// AccountRegisterRequest はアカウント登録リクエストの構造体です。
// bindingタグ: Ginでのリクエストバリデーション用
type AccountRegisterRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"` // 生パスワード
}

// AccountLoginRequest はログインリクエストの構造体です。
type AccountLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"` // 生パスワード
}

// TokenClaims はJWTトークンに含まれるクレームです。
type TokenClaims struct {
	Email string `json:"email"`
}
