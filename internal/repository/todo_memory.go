package repository

import (
	"sync"
	"time"

	"github.com/taskflow-dev/taskflow-api/internal/models"
	"gorm.io/gorm"
)

// MemoryTodoRepository keeps todos in process memory. Contents are lost on
// restart; intended for demos and tests. All access is mutex-guarded so the
// store is safe under concurrent requests.
type MemoryTodoRepository struct {
	mu     sync.Mutex
	todos  []models.Todo
	nextID uint64
}

// NewMemoryTodoRepository creates an empty in-memory TodoRepository
func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{nextID: 1}
}

// List returns all todos in insertion order
func (r *MemoryTodoRepository) List() ([]models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Todo, len(r.todos))
	copy(out, r.todos)
	return out, nil
}

// Create assigns an ID and stores the todo
func (r *MemoryTodoRepository) Create(todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	todo.ID = r.nextID
	todo.CreatedAt = now
	todo.UpdatedAt = now
	r.nextID++

	r.todos = append(r.todos, *todo)
	return nil
}

// FindByID finds a todo by ID. Returns gorm.ErrRecordNotFound when absent
// so callers map missing records the same way as the database-backed store.
func (r *MemoryTodoRepository) FindByID(id uint64) (*models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.todos {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// Update replaces the stored todo with the given value
func (r *MemoryTodoRepository) Update(todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.todos {
		if t.ID == todo.ID {
			todo.UpdatedAt = time.Now()
			r.todos[i] = *todo
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Delete removes a todo by ID
func (r *MemoryTodoRepository) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.todos {
		if t.ID == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
