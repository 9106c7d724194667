package repository

import (
	"time"

	"github.com/taskflow-dev/taskflow-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by (lowercased) email
	FindByEmail(email string) (*models.User, error)

	// FindByUsernameOrEmail finds a user matching either value; used for
	// duplicate checks during registration
	FindByUsernameOrEmail(username, email string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	// UserID restricts the result to projects the user created or is a
	// member of
	UserID   uint64
	Search   string
	Page     int
	PageSize int
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a project together with its member and label rows
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// List retrieves projects visible to a user with pagination
	List(filter ProjectFilter) ([]models.Project, int64, error)

	// Update persists scalar and settings changes to a project
	Update(project *models.Project) error

	// ReplaceMembers swaps the project's member rows for the given set
	ReplaceMembers(projectID uint64, members []models.ProjectMember) error

	// ReplaceLabels swaps the project's label rows for the given set
	ReplaceLabels(projectID uint64, labels []models.ProjectLabel) error

	// UpdateMemberRole changes one member's role; returns
	// gorm.ErrRecordNotFound when the member does not exist
	UpdateMemberRole(projectID, userID uint64, role models.ProjectRole) error

	// Delete removes the project and cascades to its tasks, members and
	// labels in a single transaction
	Delete(id uint64) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID *uint64
	Status    *models.TaskStatus
	Priority  *models.TaskPriority
	// DueBefore keeps tasks whose due date is at or before the given time
	DueBefore *time.Time
	Search    string
	Page      int
	PageSize  int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination, sorted by due
	// date ascending then priority descending
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// Delete soft deletes a task
	Delete(id uint64) error

	// Reorder assigns each task its position index as the manual sort
	// order, atomically
	Reorder(taskIDs []uint64) error
}

// TodoRepository abstracts storage for the standalone todo surface so the
// backing store is swappable (database or in-memory)
type TodoRepository interface {
	List() ([]models.Todo, error)
	Create(todo *models.Todo) error
	FindByID(id uint64) (*models.Todo, error)
	Update(todo *models.Todo) error
	Delete(id uint64) error
}
