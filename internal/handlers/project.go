package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow-api/internal/dto"
	apierrors "github.com/taskflow-dev/taskflow-api/internal/errors"
	"github.com/taskflow-dev/taskflow-api/internal/middleware"
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/internal/services"
	"github.com/taskflow-dev/taskflow-api/internal/utils"
)

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// MemberRequest is the wire shape of a (user, role) pair.
type MemberRequest struct {
	UserID uint64             `json:"userId" binding:"required"`
	Role   models.ProjectRole `json:"role"`
}

// SettingsRequest is the wire shape of partial project settings.
type SettingsRequest struct {
	DefaultView *models.ProjectView  `json:"defaultView"`
	TaskOrder   *models.TaskOrdering `json:"taskOrder"`
}

func toSettingsInput(req *SettingsRequest) *services.SettingsInput {
	if req == nil {
		return nil
	}
	return &services.SettingsInput{
		DefaultView: req.DefaultView,
		TaskOrder:   req.TaskOrder,
	}
}

func toMemberInputs(reqs []MemberRequest) []services.MemberInput {
	members := make([]services.MemberInput, len(reqs))
	for i, m := range reqs {
		members[i] = services.MemberInput{UserID: m.UserID, Role: m.Role}
	}
	return members
}

// CreateProject creates a new project with the caller as owner.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Name        string           `json:"name" binding:"required"`
		Description string           `json:"description"`
		Color       string           `json:"color"`
		Icon        string           `json:"icon"`
		Members     []MemberRequest  `json:"members"`
		Labels      []string         `json:"labels"`
		Settings    *SettingsRequest `json:"settings"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		Members:     toMemberInputs(req.Members),
		Labels:      req.Labels,
		Settings:    toSettingsInput(req.Settings),
		CreatorID:   userID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// ListProjects returns the caller's projects, optionally text-filtered.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(services.ListProjectsInput{
		UserID:   userID,
		Search:   c.Query("search"),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects, total, params.Page, params.Limit))
}

// GetProject returns one project if the caller is a member.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(projectID, userID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// UpdateProject updates a project's fields, settings, labels and members.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateProjectRequest struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Color       *string          `json:"color"`
		Icon        *string          `json:"icon"`
		IsArchived  *bool            `json:"isArchived"`
		Labels      *[]string        `json:"labels"`
		Settings    *SettingsRequest `json:"settings"`
		Members     *[]MemberRequest `json:"members"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		IsArchived:  req.IsArchived,
		Labels:      req.Labels,
		Settings:    toSettingsInput(req.Settings),
	}
	if req.Members != nil {
		members := toMemberInputs(*req.Members)
		input.Members = &members
	}

	project, err := h.projectService.UpdateProject(projectID, userID, input)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject deletes a project and all of its tasks.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(projectID, userID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// UpdateMemberRole changes one member's role.
func (h *ProjectHandler) UpdateMemberRole(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateMemberRequest struct {
		UserID uint64             `json:"userId" binding:"required"`
		Role   models.ProjectRole `json:"role" binding:"required"`
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.UpdateMemberRole(projectID, userID, req.UserID, req.Role); err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member role updated successfully"})
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrMemberNotFound):
		apierrors.NotFound(c, "Member not found")
	case errors.Is(err, services.ErrNotProjectMember):
		apierrors.Forbidden(c, "Access denied")
	case errors.Is(err, services.ErrWritePermissionDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrOwnerPermissionDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrProjectNameRequired),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrNoOwnerRemaining):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
