// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"electro-todo/backend/internal/models"
)

var (
	// ErrTodoNotFound はTodoが見つからない場合のエラーです。
	ErrTodoNotFound = errors.New("todo not found")
	// ErrEmptyUpdate は部分更新で更新対象フィールドが1つも無い場合のエラーです。
	ErrEmptyUpdate = errors.New("no fields to update")
)

// TodoRepository はtodosテーブルの操作を行うための構造体です。
type TodoRepository struct {
	DB     *sql.DB
	logger *logrus.Logger
}

// NewTodoRepository は新しいTodoRepositoryインスタンスを作成します。
func NewTodoRepository(db *sql.DB, logger *logrus.Logger) *TodoRepository {
	return &TodoRepository{DB: db, logger: logger}
}

// FindAll はすべてのTodoを保存順（ID昇順）で取得します。
func (r *TodoRepository) FindAll() ([]*models.Todo, error) {
	query := "SELECT id, todo_body, description, complete, finishedat FROM todos ORDER BY id"

	rows, err := r.DB.Query(query)
	if err != nil {
		r.logger.Errorf("Failed to query todos: %v", err)
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.TodoBody, &t.Description, &t.Complete, &t.FinishedAt); err != nil {
			r.logger.Errorf("Failed to scan todo: %v", err)
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}

// FindByID は指定されたIDのTodoを取得します。
func (r *TodoRepository) FindByID(id int) (*models.Todo, error) {
	query := "SELECT id, todo_body, description, complete, finishedat FROM todos WHERE id = ?"

	var t models.Todo
	err := r.DB.QueryRow(query, id).Scan(&t.ID, &t.TodoBody, &t.Description, &t.Complete, &t.FinishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		r.logger.Errorf("Failed to query todo by ID: %v", err)
		return nil, fmt.Errorf("could not query todo: %w", err)
	}

	return &t, nil
}

// Create は新しいTodoを挿入し、保存された行を返します。
// complete は FALSE、finishedat は NULL で作成されます。
func (r *TodoRepository) Create(todoBody string, description *string) (*models.Todo, error) {
	query := "INSERT INTO todos (todo_body, description) VALUES (?, ?)"

	result, err := r.DB.Exec(query, todoBody, description)
	if err != nil {
		r.logger.Errorf("Failed to insert todo: %v", err)
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	// MySQLにはRETURNINGが無いため、挿入後にSELECTして確定状態を返す
	return r.FindByID(int(id))
}

// UpdateFields は指定されたフィールドのみを更新し、更新後の行を返します。
// fields に更新対象が1つも無い場合は ErrEmptyUpdate を返します。
func (r *TodoRepository) UpdateFields(id int, fields models.TodoUpdateRequest) (*models.Todo, error) {
	if !fields.HasFields() {
		return nil, ErrEmptyUpdate
	}

	builder := sq.Update("todos")
	if fields.TodoBody != nil {
		builder = builder.Set("todo_body", *fields.TodoBody)
	}
	if fields.Description != nil {
		builder = builder.Set("description", *fields.Description)
	}
	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("could not build update query: %w", err)
	}

	result, err := r.DB.Exec(query, args...)
	if err != nil {
		r.logger.Errorf("Failed to update todo: %v", err)
		return nil, fmt.Errorf("could not update todo: %w", err)
	}

	if err := requireMatch(result); err != nil {
		return nil, err
	}

	return r.FindByID(id)
}

// SetComplete は完了状態を変更し、更新後の行を返します。
// trueへ遷移するとき finishedat に現在時刻を設定し、falseへ戻すときはNULLに戻します。
func (r *TodoRepository) SetComplete(id int, complete bool) (*models.Todo, error) {
	var finishedAt *time.Time
	if complete {
		now := time.Now()
		finishedAt = &now
	}

	query := "UPDATE todos SET complete = ?, finishedat = ? WHERE id = ?"
	result, err := r.DB.Exec(query, complete, finishedAt, id)
	if err != nil {
		r.logger.Errorf("Failed to update complete status: %v", err)
		return nil, fmt.Errorf("could not update complete status: %w", err)
	}

	if err := requireMatch(result); err != nil {
		return nil, err
	}

	return r.FindByID(id)
}

// Delete は指定されたIDのTodoを削除し、削除された行を返します。
func (r *TodoRepository) Delete(id int) (*models.Todo, error) {
	// 削除前に行を取得しておく（レスポンスで削除された行を返すため）
	t, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.DB.Exec("DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		r.logger.Errorf("Failed to delete todo: %v", err)
		return nil, fmt.Errorf("could not delete todo: %w", err)
	}

	if err := requireMatch(result); err != nil {
		return nil, err
	}

	return t, nil
}

// requireMatch は更新・削除が1行も対象にしなかった場合に ErrTodoNotFound を返します。
func requireMatch(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
