package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow-api/internal/auth"
	"github.com/taskflow-dev/taskflow-api/internal/constants"
	"github.com/taskflow-dev/taskflow-api/internal/database"
	"github.com/taskflow-dev/taskflow-api/internal/middleware"
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/internal/repository"
	"github.com/taskflow-dev/taskflow-api/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full handler stack against an in-memory database, with
// the same route table the server uses.
type testEnv struct {
	db     *gorm.DB
	tokens *auth.Manager
	router *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.ProjectLabel{},
		&models.Task{},
		&models.Todo{},
	))

	database.SetDB(db)

	tokens := auth.NewManager("test-secret")

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	authService := services.NewAuthService(userRepo, tokens, "http://localhost:5173")
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)
	todoService := services.NewTodoService(todoRepo)

	authHandler := NewAuthHandler(authService)
	projectHandler := NewProjectHandler(projectService)
	taskHandler := NewTaskHandler(taskService)
	todoHandler := NewTodoHandler(todoService)

	r := gin.New()
	api := r.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.GET("/verify-email/:token", authHandler.VerifyEmail)
	authRoutes.POST("/forgot-password", authHandler.ForgotPassword)
	authRoutes.POST("/reset-password", authHandler.ResetPassword)
	authRoutes.GET("/profile", middleware.RequireAuth(tokens), authHandler.GetProfile)
	authRoutes.PUT("/profile", middleware.RequireAuth(tokens), authHandler.UpdateProfile)

	projects := api.Group("/projects")
	projects.Use(middleware.RequireAuth(tokens))
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.ListProjects)
	projects.GET("/:id", projectHandler.GetProject)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)
	projects.PUT("/:id/members", projectHandler.UpdateMemberRole)

	tasks := api.Group("/tasks")
	tasks.Use(middleware.RequireAuth(tokens))
	tasks.POST("", taskHandler.CreateTask)
	tasks.GET("", taskHandler.ListTasks)
	tasks.POST("/reorder", taskHandler.ReorderTasks)
	tasks.GET("/:id", taskHandler.GetTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	todos := api.Group("/todos")
	todos.Use(middleware.RequireAuth(tokens))
	todos.GET("", todoHandler.ListTodos)
	todos.POST("", todoHandler.CreateTodo)
	todos.PUT("/:id", todoHandler.UpdateTodo)
	todos.DELETE("/:id", todoHandler.DeleteTodo)
	todos.PATCH("/:id/toggle", todoHandler.ToggleTodo)

	return &testEnv{db: db, tokens: tokens, router: r}
}

// createUser inserts a user directly, bypassing the register endpoint.
// MinCost keeps the hashing fast; these users log in with "password123".
func (e *testEnv) createUser(t *testing.T, username, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		AuthProvider: models.AuthProviderLocal,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) userByEmail(t *testing.T, email string) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, e.db.Where("email = ?", email).First(&user).Error)
	return &user
}

func (e *testEnv) bearer(t *testing.T, userID uint64) string {
	t.Helper()

	token, err := e.tokens.Generate(userID, auth.PurposeAccess, constants.AccessTokenDuration)
	require.NoError(t, err)
	return "Bearer " + token
}

// do performs a request against the test router. A non-nil user gets an
// access token in the Authorization header.
func (e *testEnv) do(t *testing.T, method, path string, body any, user *models.User) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req.Header.Set("Authorization", e.bearer(t, user.ID))
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// newAuthedRequest issues a GET-style request with a raw Authorization
// header value, for exercising the middleware with malformed tokens.
func newAuthedRequest(t *testing.T, e *testEnv, method, path, header string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", header)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func futureDate(days int) *time.Time {
	d := time.Now().Add(time.Duration(days) * 24 * time.Hour).UTC().Truncate(time.Second)
	return &d
}
