// Package config はアプリケーション設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	Server struct {
		Addr string
	}
	DB struct {
		User string
		Pass string
		Host string
		Port string
		Name string
	}
	CORS struct {
		// フロントエンドのオリジン（1つのみ許可）
		Origin string
	}
	Auth struct {
		// JWT署名用シークレット。未設定の場合は起動時にランダム生成される
		JWTSecret string
	}
	Log struct {
		Level string
	}
}

// Load は .env と環境変数から設定を読み込みます。
func Load() (Config, error) {
	// .env はあれば読む（無くてもエラーにしない）
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 歴史的な環境変数名との互換
	_ = v.BindEnv("auth.jwtsecret", "JWT_SECRET")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.name", "electrotodo")
	v.SetDefault("cors.origin", "http://localhost:3000")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("log.level", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// DSN はMySQL接続文字列 (Data Source Name) を構築します。
// 例: user:pass@tcp(db:3306)/dbname?parseTime=true
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.DB.User, c.DB.Pass, c.DB.Host, c.DB.Port, c.DB.Name)
}
