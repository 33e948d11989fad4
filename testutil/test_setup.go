// Package testutil はテスト用の共通セットアップを提供します。
package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"electro-todo/backend/internal/config"
	"electro-todo/backend/internal/routes"
)

// TestJWTSecret はテスト用のJWT署名シークレットです。
const TestJWTSecret = "test-jwt-secret"

// NewLogger はテスト出力を汚さないロガーを作成します。
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// SetupTestRouter はsqlmockで裏打ちされたルーターを構築します。
// 実際のMySQLを起動せずにハンドラー〜リポジトリまでを通しでテストできます。
func SetupTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	var cfg config.Config
	cfg.CORS.Origin = "http://localhost:3000"
	cfg.Auth.JWTSecret = TestJWTSecret

	r, err := routes.SetupRouter(cfg, db, NewLogger())
	require.NoError(t, err, "failed to setup router")

	return r, mock, db
}

// DoRequest はJSONボディ付きのリクエストをルーターに投げ、レスポンスを返します。
// body が nil の場合はボディ無しで送ります。
func DoRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonValue, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonValue)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
