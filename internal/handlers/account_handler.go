package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"electro-todo/backend/internal/models"
	"electro-todo/backend/internal/repositories"
	"electro-todo/backend/internal/services"
)

// AccountHandler はアカウント関連のハンドラーを管理します。
type AccountHandler struct {
	accountService *services.AccountService
	accountRepo    *repositories.AccountRepository
	jwtService     *services.JWTService
	logger         *logrus.Logger
}

// NewAccountHandler は新しいAccountHandlerを作成します。
func NewAccountHandler(accountService *services.AccountService, accountRepo *repositories.AccountRepository, jwtService *services.JWTService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		accountRepo:    accountRepo,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// RegisterHandler はアカウント登録を処理します。
// 作成されたレコードは返しません（ハッシュをレスポンスに含めないため）。
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req models.AccountRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	if _, err := h.accountService.Register(req); err != nil {
		if errors.Is(err, repositories.ErrDuplicateAccount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		h.logger.Errorf("Failed to register account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error registering user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// LoginHandler はログインを処理し、成功した場合はJWTトークンを返します。
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req models.AccountLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	account, err := h.accountService.Authenticate(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.logger.Errorf("Failed to authenticate account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
		return
	}

	tokenString, err := h.jwtService.GenerateToken(account.Email)
	if err != nil {
		h.logger.Errorf("Failed to generate JWT token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": tokenString})
}

// GetAccountsHandler はすべてのアカウントを取得します。
// password列はリポジトリ側で射影から外れており、ハッシュは含まれません。
func (h *AccountHandler) GetAccountsHandler(c *gin.Context) {
	accounts, err := h.accountRepo.FindAll()
	if err != nil {
		h.logger.Errorf("Failed to fetch accounts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch accounts from database"})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// DeleteAccountHandler は指定されたIDのアカウントを削除します。
func (h *AccountHandler) DeleteAccountHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.accountRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		h.logger.Errorf("Failed to delete account: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// MeHandler は認証ミドルウェアがコンテキストに設定したクレームを返します。
func (h *AccountHandler) MeHandler(c *gin.Context) {
	email, exists := c.Get("account_email")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email not found in token claims"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}
