package services

import (
	"errors"
	"fmt"

	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/internal/repository"
	"gorm.io/gorm"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoService handles the standalone todo checklist. The repository is
// injected so the same service runs against the database or the in-memory
// demo store.
type TodoService struct {
	todoRepo repository.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
	}
}

// ListTodos returns all todos.
func (s *TodoService) ListTodos() ([]models.Todo, error) {
	todos, err := s.todoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// CreateTodo creates a new, uncompleted todo.
func (s *TodoService) CreateTodo(title, description string) (*models.Todo, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	todo := &models.Todo{
		Title:       title,
		Description: description,
	}

	if err := s.todoRepo.Create(todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// UpdateTodoInput carries partial todo updates.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// UpdateTodo updates the provided fields of a todo.
func (s *TodoService) UpdateTodo(id uint64, input UpdateTodoInput) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	return todo, nil
}

// DeleteTodo removes a todo.
func (s *TodoService) DeleteTodo(id uint64) error {
	if err := s.todoRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// ToggleTodo flips a todo's completed flag.
func (s *TodoService) ToggleTodo(id uint64) (*models.Todo, error) {
	todo, err := s.todoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}

	todo.Completed = !todo.Completed

	if err := s.todoRepo.Update(todo); err != nil {
		return nil, fmt.Errorf("failed to toggle todo: %w", err)
	}

	return todo, nil
}
