// Package modelsはTodoとAccountを定義します。
package models

import "time"

// Todo はToDoタスクのデータベース構造体を表します。
// JSONタグ: クライアントとの通信用
type Todo struct {
	ID          int        `json:"id,omitempty"`        // 主キー（自動採番）
	TodoBody    string     `json:"todo_body"`           // タスク本文（必須）
	Description *string    `json:"description"`         // 補足説明（任意、NULL可）
	Complete    bool       `json:"complete"`            // 完了状態
	FinishedAt  *time.Time `json:"finishedat"`          // 完了日時（completeがtrueの間のみ非NULL）
}

// TodoCreateRequest はTodo作成リクエストの構造体です。
// bindingタグ: Ginでのリクエストバリデーション用
type TodoCreateRequest struct {
	TodoBody    string  `json:"todo_body" binding:"required"`
	Description *string `json:"description"`
}

// TodoUpdateRequest はTodo部分更新リクエストの構造体です。
// どちらのフィールドも任意ですが、少なくとも1つは必要です（ハンドラーで検証）。
type TodoUpdateRequest struct {
	TodoBody    *string `json:"todo_body" binding:"omitempty,min=1"`
	Description *string `json:"description"`
}

// HasFields は更新対象のフィールドが1つ以上含まれるかを返します。
func (r TodoUpdateRequest) HasFields() bool {
	return r.TodoBody != nil || r.Description != nil
}

// TodoCompleteRequest は完了状態変更リクエストの構造体です。
// ポインタにすることで complete:false と「未指定」を区別します。
type TodoCompleteRequest struct {
	Complete *bool `json:"complete" binding:"required"`
}
