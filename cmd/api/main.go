package main

import (
	"github.com/sirupsen/logrus"

	"electro-todo/backend/internal/config"
	"electro-todo/backend/internal/database"
	"electro-todo/backend/internal/routes"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	// DBに接続（接続できない場合は起動時に失敗させる）
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()
	logger.Info("Successfully connected to MySQL database!")

	if err := database.EnsureSchema(db); err != nil {
		logger.Fatalf("ensure schema: %v", err)
	}

	r, err := routes.SetupRouter(cfg, db, logger)
	if err != nil {
		logger.Fatalf("setup router: %v", err)
	}

	logger.Infof("Server listening on %s...", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.Fatal(err)
	}
}
