package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/internal/policy"
	"github.com/taskflow-dev/taskflow-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrProjectNameRequired   = errors.New("project name is required")
	ErrNotProjectMember      = errors.New("access denied")
	ErrWritePermissionDenied = errors.New("only owners and admins can modify the project")
	ErrOwnerPermissionDenied = errors.New("only the owner can delete the project")
	ErrInvalidRole           = errors.New("invalid member role")
	ErrMemberNotFound        = errors.New("member not found")
	ErrNoOwnerRemaining      = errors.New("project must retain at least one owner")
)

// ProjectService handles project business logic, including the membership
// rules enforced on every operation.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// MemberInput is a caller-supplied (user, role) pair.
type MemberInput struct {
	UserID uint64
	Role   models.ProjectRole
}

// SettingsInput carries partial project settings updates.
type SettingsInput struct {
	DefaultView *models.ProjectView
	TaskOrder   *models.TaskOrdering
}

// CreateProjectInput holds the fields for a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	Color       string
	Icon        string
	Members     []MemberInput
	Labels      []string
	Settings    *SettingsInput
	CreatorID   uint64
}

// CreateProject creates a project with the creator inserted as an owner
// member, merging any additionally supplied members. Duplicate user IDs in
// the input keep their first entry.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrProjectNameRequired
	}

	now := time.Now()
	members := []models.ProjectMember{{
		UserID:   input.CreatorID,
		Role:     models.RoleOwner,
		JoinedAt: now,
	}}
	seen := map[uint64]struct{}{input.CreatorID: {}}

	for _, m := range input.Members {
		if _, ok := seen[m.UserID]; ok {
			continue
		}
		seen[m.UserID] = struct{}{}
		role := m.Role
		if role == "" {
			role = models.RoleMember
		}
		if !models.ValidRole(role) {
			return nil, ErrInvalidRole
		}
		members = append(members, models.ProjectMember{
			UserID:   m.UserID,
			Role:     role,
			JoinedAt: now,
		})
	}

	labels := make([]models.ProjectLabel, 0, len(input.Labels))
	for _, name := range input.Labels {
		labels = append(labels, models.ProjectLabel{Name: name})
	}

	project := &models.Project{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Color:       input.Color,
		Icon:        input.Icon,
		CreatedByID: input.CreatorID,
		Members:     members,
		Labels:      labels,
	}
	if input.Settings != nil {
		if input.Settings.DefaultView != nil {
			project.Settings.DefaultView = *input.Settings.DefaultView
		}
		if input.Settings.TaskOrder != nil {
			project.Settings.TaskOrder = *input.Settings.TaskOrder
		}
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.projectRepo.FindByID(project.ID, "CreatedBy", "Members.User", "Labels")
}

// ListProjectsInput represents filters for listing projects.
type ListProjectsInput struct {
	UserID   uint64
	Search   string
	Page     int
	PageSize int
}

// ListProjects returns projects where the user is the creator or a member.
func (s *ProjectService) ListProjects(input ListProjectsInput) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(repository.ProjectFilter{
		UserID:   input.UserID,
		Search:   input.Search,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// GetProject returns a project if the user is a member of it.
func (s *ProjectService) GetProject(projectID, userID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID, "CreatedBy", "Members.User", "Labels", "Tasks")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if !policy.CanRead(project.Members, userID) {
		return nil, ErrNotProjectMember
	}

	return project, nil
}

// UpdateProjectInput carries partial project updates. Nil fields are left
// untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
	IsArchived  *bool
	Labels      *[]string
	Settings    *SettingsInput
	Members     *[]MemberInput
}

// UpdateProject updates a project if the user has write permission.
// Supplied member lists replace the existing non-owner members wholesale;
// existing owner entries are always preserved, and the result must keep at
// least one owner.
func (s *ProjectService) UpdateProject(projectID, userID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID, "Members")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if !policy.CanWrite(project.Members, userID) {
		return nil, ErrWritePermissionDenied
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrProjectNameRequired
		}
		project.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Color != nil {
		project.Color = *input.Color
	}
	if input.Icon != nil {
		project.Icon = *input.Icon
	}
	if input.IsArchived != nil {
		project.IsArchived = *input.IsArchived
	}
	if input.Settings != nil {
		if input.Settings.DefaultView != nil {
			project.Settings.DefaultView = *input.Settings.DefaultView
		}
		if input.Settings.TaskOrder != nil {
			project.Settings.TaskOrder = *input.Settings.TaskOrder
		}
	}

	// The member list is validated before the first write so a rejected
	// request leaves the project untouched.
	var merged []models.ProjectMember
	if input.Members != nil {
		merged, err = mergeMembers(project.Members, *input.Members)
		if err != nil {
			return nil, err
		}
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	if input.Members != nil {
		if err := s.projectRepo.ReplaceMembers(projectID, merged); err != nil {
			return nil, fmt.Errorf("failed to update members: %w", err)
		}
	}

	if input.Labels != nil {
		labels := make([]models.ProjectLabel, 0, len(*input.Labels))
		for _, name := range *input.Labels {
			labels = append(labels, models.ProjectLabel{Name: name})
		}
		if err := s.projectRepo.ReplaceLabels(projectID, labels); err != nil {
			return nil, fmt.Errorf("failed to update labels: %w", err)
		}
	}

	return s.projectRepo.FindByID(projectID, "CreatedBy", "Members.User", "Labels")
}

// mergeMembers keeps the existing owner entries and replaces the rest with
// the caller-supplied set. Users already kept as owners are dropped from the
// incoming list rather than duplicated.
func mergeMembers(existing []models.ProjectMember, incoming []MemberInput) ([]models.ProjectMember, error) {
	now := time.Now()
	merged := make([]models.ProjectMember, 0, len(existing)+len(incoming))
	kept := make(map[uint64]struct{})

	for _, m := range existing {
		if m.Role == models.RoleOwner {
			merged = append(merged, m)
			kept[m.UserID] = struct{}{}
		}
	}

	for _, m := range incoming {
		if _, ok := kept[m.UserID]; ok {
			continue
		}
		role := m.Role
		if role == "" {
			role = models.RoleMember
		}
		if !models.ValidRole(role) {
			return nil, ErrInvalidRole
		}
		merged = append(merged, models.ProjectMember{
			UserID:   m.UserID,
			Role:     role,
			JoinedAt: now,
		})
		kept[m.UserID] = struct{}{}
	}

	if !policy.HasOwner(merged) {
		return nil, ErrNoOwnerRemaining
	}

	return merged, nil
}

// DeleteProject removes a project and all of its tasks if the user is an
// owner.
func (s *ProjectService) DeleteProject(projectID, userID uint64) error {
	project, err := s.projectRepo.FindByID(projectID, "Members")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if !policy.CanDelete(project.Members, userID) {
		return ErrOwnerPermissionDenied
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// UpdateMemberRole changes one member's role if the actor has write
// permission. Demoting the last owner is rejected.
func (s *ProjectService) UpdateMemberRole(projectID, actorID, targetID uint64, role models.ProjectRole) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}

	project, err := s.projectRepo.FindByID(projectID, "Members")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if !policy.CanWrite(project.Members, actorID) {
		return ErrWritePermissionDenied
	}

	if role != models.RoleOwner {
		owners := 0
		targetIsOwner := false
		for _, m := range project.Members {
			if m.Role == models.RoleOwner {
				owners++
				if m.UserID == targetID {
					targetIsOwner = true
				}
			}
		}
		if targetIsOwner && owners == 1 {
			return ErrNoOwnerRemaining
		}
	}

	if err := s.projectRepo.UpdateMemberRole(projectID, targetID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to update member role: %w", err)
	}

	return nil
}
