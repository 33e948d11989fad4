package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"electro-todo/backend/internal/models"
	"electro-todo/backend/internal/repositories"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoRepo *repositories.TodoRepository
	logger   *logrus.Logger
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoRepo *repositories.TodoRepository, logger *logrus.Logger) *TodoHandler {
	return &TodoHandler{todoRepo: todoRepo, logger: logger}
}

// GetTodosHandler はすべてのTodoを取得します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	todos, err := h.todoRepo.FindAll()
	if err != nil {
		h.logger.Errorf("Failed to fetch todos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos from database"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// CreateTodoHandler は新しいTodoを作成し、DBに保存します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var req models.TodoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	createdTodo, err := h.todoRepo.Create(req.TodoBody, req.Description)
	if err != nil {
		h.logger.Errorf("Failed to create todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save todo to database"})
		return
	}
	c.JSON(http.StatusCreated, createdTodo)
}

// UpdateTodoHandler は指定されたIDのTodoを部分更新します。
// 更新対象フィールドが1つも無い場合は400を返します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.TodoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}
	if !req.HasFields() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of todo_body or description is required"})
		return
	}

	updatedTodo, err := h.todoRepo.UpdateFields(id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo with specified ID not found"})
			return
		}
		h.logger.Errorf("Failed to update todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo in database"})
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// CompleteTodoHandler は指定されたIDのTodoの完了状態を変更します。
func (h *TodoHandler) CompleteTodoHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.TodoCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Complete status is missing"})
		return
	}

	updatedTodo, err := h.todoRepo.SetComplete(id, *req.Complete)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo with specified ID not found"})
			return
		}
		h.logger.Errorf("Failed to update complete status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update complete status"})
		return
	}
	c.JSON(http.StatusOK, updatedTodo)
}

// DeleteTodoHandler は指定されたIDのTodoを削除し、削除された行を返します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deletedTodo, err := h.todoRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo with specified ID not found"})
			return
		}
		h.logger.Errorf("Failed to delete todo: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo from database"})
		return
	}
	c.JSON(http.StatusOK, deletedTodo)
}

// pathID はパスパラメータ :id を整数として解析します。
// 解析できない場合は400を返し、falseを返します。
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return 0, false
	}
	return id, true
}
