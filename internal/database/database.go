// Package database はデータベース接続の初期化とスキーマ作成を行います。
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"electro-todo/backend/internal/config"
)

// Open はデータベース接続プールを初期化します。
// 接続できない場合はエラーを返し、呼び出し側（main）がプロセスを終了します。
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// EnsureSchema は必要なテーブルが存在しない場合に作成します。
// username / email のUNIQUE制約が登録時の重複チェックの唯一の根拠になります。
func EnsureSchema(db *sql.DB) error {
	createTodosSQL := `
		CREATE TABLE IF NOT EXISTS todos (
			id INT AUTO_INCREMENT PRIMARY KEY,
			todo_body VARCHAR(255) NOT NULL,
			description TEXT NULL,
			complete BOOLEAN NOT NULL DEFAULT FALSE,
			finishedat DATETIME NULL
		);`
	if _, err := db.Exec(createTodosSQL); err != nil {
		return fmt.Errorf("failed to create todos table: %w", err)
	}

	createAuthSQL := `
		CREATE TABLE IF NOT EXISTS authentication (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(30) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		);`
	if _, err := db.Exec(createAuthSQL); err != nil {
		return fmt.Errorf("failed to create authentication table: %w", err)
	}

	return nil
}
