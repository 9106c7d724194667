package dto

import (
	"time"

	"github.com/taskflow-dev/taskflow-api/internal/models"
)

// ProjectMemberDTO represents a member in API responses
type ProjectMemberDTO struct {
	User     UserDTO            `json:"user"`
	Role     models.ProjectRole `json:"role"`
	JoinedAt time.Time          `json:"joinedAt"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Color       string                 `json:"color"`
	Icon        string                 `json:"icon"`
	CreatedByID uint64                 `json:"createdById"`
	Settings    models.ProjectSettings `json:"settings"`
	IsArchived  bool                   `json:"isArchived"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	CreatedBy   *UserDTO               `json:"createdBy,omitempty"`
	Members     []ProjectMemberDTO     `json:"members,omitempty"`
	Labels      []string               `json:"labels,omitempty"`
	Tasks       []TaskSummaryDTO       `json:"tasks,omitempty"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectDTO `json:"projects"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	Pages    int          `json:"pages"`
}

// ToProjectMemberDTO converts a member to DTO
func ToProjectMemberDTO(member models.ProjectMember) ProjectMemberDTO {
	return ProjectMemberDTO{
		User:     ToUserSummaryDTO(member.User),
		Role:     member.Role,
		JoinedAt: member.JoinedAt,
	}
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Color:       project.Color,
		Icon:        project.Icon,
		CreatedByID: project.CreatedByID,
		Settings:    project.Settings,
		IsArchived:  project.IsArchived,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	// Include creator if preloaded
	if project.CreatedBy.ID != 0 {
		creator := ToUserSummaryDTO(project.CreatedBy)
		dto.CreatedBy = &creator
	}

	if len(project.Members) > 0 {
		dto.Members = make([]ProjectMemberDTO, len(project.Members))
		for i, member := range project.Members {
			dto.Members[i] = ToProjectMemberDTO(member)
		}
	}

	if len(project.Labels) > 0 {
		dto.Labels = make([]string, len(project.Labels))
		for i, label := range project.Labels {
			dto.Labels[i] = label.Name
		}
	}

	if len(project.Tasks) > 0 {
		dto.Tasks = make([]TaskSummaryDTO, len(project.Tasks))
		for i, task := range project.Tasks {
			dto.Tasks[i] = ToTaskSummaryDTO(task)
		}
	}

	return dto
}

// ToProjectListResponse converts a slice of projects to a paginated
// response
func ToProjectListResponse(projects []models.Project, total int64, page, pageSize int) ProjectListResponse {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}

	return ProjectListResponse{
		Projects: items,
		Total:    total,
		Page:     page,
		Pages:    totalPages(total, pageSize),
	}
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return pages
}
