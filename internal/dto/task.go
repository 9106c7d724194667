package dto

import (
	"time"

	"github.com/taskflow-dev/taskflow-api/internal/models"
)

// ProjectSummaryDTO is the minimal project reference shown on a task
type ProjectSummaryDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	DueDate     *time.Time          `json:"dueDate"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
	ProjectID   *uint64             `json:"projectId"`
	Order       int                 `json:"order"`
	CreatedByID uint64              `json:"createdById"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Project     *ProjectSummaryDTO  `json:"project,omitempty"`
	CreatedBy   *UserDTO            `json:"createdBy,omitempty"`
}

// TaskSummaryDTO is the minimal task shape embedded in a project response
type TaskSummaryDTO struct {
	ID       uint64              `json:"id"`
	Title    string              `json:"title"`
	Status   models.TaskStatus   `json:"status"`
	DueDate  *time.Time          `json:"dueDate"`
	Priority models.TaskPriority `json:"priority"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks []TaskDTO `json:"tasks"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Pages int       `json:"pages"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    task.Priority,
		Status:      task.Status,
		ProjectID:   task.ProjectID,
		Order:       task.Order,
		CreatedByID: task.CreatedByID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	// Include project if preloaded
	if task.Project != nil && task.Project.ID != 0 {
		dto.Project = &ProjectSummaryDTO{
			ID:    task.Project.ID,
			Name:  task.Project.Name,
			Color: task.Project.Color,
		}
	}

	// Include creator if preloaded
	if task.CreatedBy.ID != 0 {
		creator := ToUserSummaryDTO(task.CreatedBy)
		dto.CreatedBy = &creator
	}

	return dto
}

// ToTaskSummaryDTO converts a Task model to its embedded summary shape
func ToTaskSummaryDTO(task models.Task) TaskSummaryDTO {
	return TaskSummaryDTO{
		ID:       task.ID,
		Title:    task.Title,
		Status:   task.Status,
		DueDate:  task.DueDate,
		Priority: task.Priority,
	}
}

// ToTaskListResponse converts a slice of tasks to a paginated response
func ToTaskListResponse(tasks []models.Task, total int64, page, pageSize int) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	return TaskListResponse{
		Tasks: items,
		Total: total,
		Page:  page,
		Pages: totalPages(total, pageSize),
	}
}
