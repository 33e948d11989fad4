// Package routesはroutingを行います。
package routes

import (
	"database/sql"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"electro-todo/backend/internal/config"
	"electro-todo/backend/internal/handlers"
	"electro-todo/backend/internal/repositories"
	"electro-todo/backend/internal/services"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(cfg config.Config, db *sql.DB, logger *logrus.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(logger))

	// バリデーションエラーのメッセージでJSONフィールド名を使う
	registerJSONTagNames()

	// CORS対策（許可するオリジンは設定された1つのみ）
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORS.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// リポジトリ
	todoRepo := repositories.NewTodoRepository(db, logger)
	accountRepo := repositories.NewAccountRepository(db, logger)

	// サービス
	accountService := services.NewAccountService(accountRepo, logger)
	jwtService, err := services.NewJWTService(cfg.Auth.JWTSecret, logger)
	if err != nil {
		return nil, err
	}

	// ハンドラー
	todoHandler := handlers.NewTodoHandler(todoRepo, logger)
	accountHandler := handlers.NewAccountHandler(accountService, accountRepo, jwtService, logger)

	// ルーティング
	r.GET("/api/hello", HelloHandler)
	r.GET("/api/dbcheck", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database connection failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
	})

	r.GET("/api/data", todoHandler.GetTodosHandler)
	r.POST("/api/todos", todoHandler.CreateTodoHandler)
	r.PUT("/api/todos/:id", todoHandler.UpdateTodoHandler)
	r.PUT("/api/todos/:id/complete", todoHandler.CompleteTodoHandler)
	r.DELETE("/api/todos/:id", todoHandler.DeleteTodoHandler)

	r.GET("/api/userData", accountHandler.GetAccountsHandler)
	r.POST("/api/register", accountHandler.RegisterHandler)
	r.POST("/api/login", accountHandler.LoginHandler)
	r.DELETE("/api/deleteAccount/:id", accountHandler.DeleteAccountHandler)

	authorized := r.Group("/")
	authorized.Use(AuthMiddleware(jwtService))
	{
		authorized.GET("/api/me", accountHandler.MeHandler)
	}

	return r, nil
}

// HelloHandler はシンプルなヘルスチェックエンドポイントです。
func HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from Go Backend!"})
}

// registerJSONTagNames はバリデーターにjsonタグのフィールド名を登録します。
func registerJSONTagNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}
