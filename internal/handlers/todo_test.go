package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow-api/internal/models"
)

func TestTodoLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", "alice@example.com")

	w := env.do(t, http.MethodPost, "/api/todos", map[string]any{
		"title":       "Buy milk",
		"description": "Two liters",
	}, user)
	require.Equal(t, http.StatusCreated, w.Code)

	var todo models.Todo
	decodeBody(t, w, &todo)
	require.NotZero(t, todo.ID)
	require.Equal(t, "Buy milk", todo.Title)
	require.False(t, todo.Completed)

	w = env.do(t, http.MethodGet, "/api/todos", nil, user)
	require.Equal(t, http.StatusOK, w.Code)

	var todos []models.Todo
	decodeBody(t, w, &todos)
	require.Len(t, todos, 1)
	require.Equal(t, todo.ID, todos[0].ID)

	path := fmt.Sprintf("/api/todos/%d", todo.ID)

	w = env.do(t, http.MethodPut, path, map[string]any{
		"description": "Three liters",
		"completed":   true,
	}, user)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &todo)
	require.Equal(t, "Buy milk", todo.Title)
	require.Equal(t, "Three liters", todo.Description)
	require.True(t, todo.Completed)

	w = env.do(t, http.MethodPatch, path+"/toggle", nil, user)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &todo)
	require.False(t, todo.Completed)

	w = env.do(t, http.MethodPatch, path+"/toggle", nil, user)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &todo)
	require.True(t, todo.Completed)

	w = env.do(t, http.MethodDelete, path, nil, user)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/todos", nil, user)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &todos)
	require.Empty(t, todos)
}

func TestTodoValidation(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", "alice@example.com")

	w := env.do(t, http.MethodPost, "/api/todos", map[string]any{
		"description": "No title",
	}, user)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/todos", map[string]any{"title": "Real"}, user)
	require.Equal(t, http.StatusCreated, w.Code)

	var todo models.Todo
	decodeBody(t, w, &todo)

	// Clearing the title is rejected, other fields still update.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/todos/%d", todo.ID), map[string]any{
		"title": "",
	}, user)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodoNotFound(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", "alice@example.com")

	w := env.do(t, http.MethodPut, "/api/todos/42", map[string]any{"completed": true}, user)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPatch, "/api/todos/42/toggle", nil, user)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/api/todos/42", nil, user)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/api/todos/abc", nil, user)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodosRequireAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/todos", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
