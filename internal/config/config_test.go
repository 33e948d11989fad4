package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "127.0.0.1", cfg.DB.Host)
	assert.Equal(t, "http://localhost:3000", cfg.CORS.Origin)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "todo_test")
	t.Setenv("CORS_ORIGIN", "https://todo.example.com")
	t.Setenv("JWT_SECRET", "super-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, "todo_test", cfg.DB.Name)
	assert.Equal(t, "https://todo.example.com", cfg.CORS.Origin)
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
}

func TestDSN_Format(t *testing.T) {
	var cfg Config
	cfg.DB.User = "root"
	cfg.DB.Pass = "pass"
	cfg.DB.Host = "db"
	cfg.DB.Port = "3306"
	cfg.DB.Name = "electrotodo"

	assert.Equal(t, "root:pass@tcp(db:3306)/electrotodo?parseTime=true", cfg.DSN())
}
