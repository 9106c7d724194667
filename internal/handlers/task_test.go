package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/taskflow-dev/taskflow-api/internal/models"
)

type taskResponse struct {
	ID          uint64              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	DueDate     *time.Time          `json:"dueDate"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
	ProjectID   *uint64             `json:"projectId"`
	Order       int                 `json:"order"`
	Project     *struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	} `json:"project"`
}

type taskListResponse struct {
	Tasks []taskResponse `json:"tasks"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

type TaskHandlerTestSuite struct {
	suite.Suite
	env  *testEnv
	user *models.User
}

func (s *TaskHandlerTestSuite) SetupTest() {
	s.env = setupTestEnv(s.T())
	s.user = s.env.createUser(s.T(), "worker", "worker@example.com")
}

func (s *TaskHandlerTestSuite) createTask(body map[string]any) taskResponse {
	w := s.env.do(s.T(), http.MethodPost, "/api/tasks", body, s.user)
	s.Require().Equal(http.StatusCreated, w.Code)

	var resp taskResponse
	decodeBody(s.T(), w, &resp)
	return resp
}

func (s *TaskHandlerTestSuite) TestCreateTaskDefaults() {
	task := s.createTask(map[string]any{"title": "Write report"})

	s.Equal("Write report", task.Title)
	s.Equal(models.TaskStatusTodo, task.Status)
	s.Equal(models.PriorityMedium, task.Priority)
	s.Nil(task.ProjectID)
	s.Nil(task.DueDate)
}

func (s *TaskHandlerTestSuite) TestCreateTaskValidation() {
	w := s.env.do(s.T(), http.MethodPost, "/api/tasks", map[string]any{
		"title":    "Bad",
		"priority": "critical",
	}, s.user)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.env.do(s.T(), http.MethodPost, "/api/tasks", map[string]any{
		"title":  "Bad",
		"status": "parked",
	}, s.user)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.env.do(s.T(), http.MethodPost, "/api/tasks", map[string]any{}, s.user)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TaskHandlerTestSuite) TestCreateTaskUnknownProject() {
	projectID := uint64(9999)
	w := s.env.do(s.T(), http.MethodPost, "/api/tasks", map[string]any{
		"title":     "Floating",
		"projectId": projectID,
	}, s.user)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TaskHandlerTestSuite) TestTaskAppearsOnceInProject() {
	project := createProject(s.T(), s.env, s.user, map[string]any{"name": "Board"})

	task := s.createTask(map[string]any{
		"title":     "Linked",
		"projectId": project.ID,
	})
	s.Require().NotNil(task.ProjectID)
	s.Equal(project.ID, *task.ProjectID)
	s.Require().NotNil(task.Project)
	s.Equal(project.ID, task.Project.ID)

	projectPath := fmt.Sprintf("/api/projects/%d", project.ID)
	w := s.env.do(s.T(), http.MethodGet, projectPath, nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp projectResponse
	decodeBody(s.T(), w, &resp)
	s.Require().Len(resp.Tasks, 1)
	s.Equal(task.ID, resp.Tasks[0].ID)

	// Updating the task does not duplicate it in the derived list.
	w = s.env.do(s.T(), http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), map[string]any{
		"title": "Linked and renamed",
	}, s.user)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.env.do(s.T(), http.MethodGet, projectPath, nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)
	decodeBody(s.T(), w, &resp)
	s.Require().Len(resp.Tasks, 1)
	s.Equal("Linked and renamed", resp.Tasks[0].Title)
}

func (s *TaskHandlerTestSuite) TestReassignTaskBetweenProjects() {
	first := createProject(s.T(), s.env, s.user, map[string]any{"name": "First"})
	second := createProject(s.T(), s.env, s.user, map[string]any{"name": "Second"})

	task := s.createTask(map[string]any{
		"title":     "Mover",
		"projectId": first.ID,
	})

	w := s.env.do(s.T(), http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), map[string]any{
		"projectId": second.ID,
	}, s.user)
	s.Require().Equal(http.StatusOK, w.Code)

	var updated taskResponse
	decodeBody(s.T(), w, &updated)
	s.Require().NotNil(updated.ProjectID)
	s.Equal(second.ID, *updated.ProjectID)

	var resp projectResponse
	w = s.env.do(s.T(), http.MethodGet, fmt.Sprintf("/api/projects/%d", first.ID), nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)
	decodeBody(s.T(), w, &resp)
	s.Empty(resp.Tasks)

	w = s.env.do(s.T(), http.MethodGet, fmt.Sprintf("/api/projects/%d", second.ID), nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)
	decodeBody(s.T(), w, &resp)
	s.Require().Len(resp.Tasks, 1)
	s.Equal(task.ID, resp.Tasks[0].ID)
}

func (s *TaskHandlerTestSuite) TestListTasksSorting() {
	soon := futureDate(1)
	noDue := s.createTask(map[string]any{"title": "No due date", "priority": "high"})
	lowSoon := s.createTask(map[string]any{
		"title":    "Low soon",
		"priority": "low",
		"dueDate":  soon,
	})
	highSoon := s.createTask(map[string]any{
		"title":    "High soon",
		"priority": "high",
		"dueDate":  soon,
	})
	later := s.createTask(map[string]any{
		"title":   "Later",
		"dueDate": futureDate(5),
	})

	w := s.env.do(s.T(), http.MethodGet, "/api/tasks", nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp taskListResponse
	decodeBody(s.T(), w, &resp)
	s.Require().Len(resp.Tasks, 4)

	// Earliest due date first, priority breaks the tie, undated tasks last.
	s.Equal(highSoon.ID, resp.Tasks[0].ID)
	s.Equal(lowSoon.ID, resp.Tasks[1].ID)
	s.Equal(later.ID, resp.Tasks[2].ID)
	s.Equal(noDue.ID, resp.Tasks[3].ID)
}

func (s *TaskHandlerTestSuite) TestListTasksFilters() {
	project := createProject(s.T(), s.env, s.user, map[string]any{"name": "Board"})

	s.createTask(map[string]any{"title": "Ship the release", "projectId": project.ID})
	s.createTask(map[string]any{"title": "Fix login bug", "priority": "high"})
	done := s.createTask(map[string]any{"title": "Old chore"})

	w := s.env.do(s.T(), http.MethodPut, fmt.Sprintf("/api/tasks/%d", done.ID), map[string]any{
		"status": "completed",
	}, s.user)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp taskListResponse

	w = s.env.do(s.T(), http.MethodGet, fmt.Sprintf("/api/tasks?project=%d", project.ID), nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)
	decodeBody(s.T(), w, &resp)
	s.Require().Len(resp.Tasks, 1)
	s.Equal("Ship the release", resp.Tasks[0].Title)

	w = s.env.do(s.T(), http.MethodGet, "/api/tasks?status=completed", nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)
	decodeBody(s.T(), w, &resp)
	s.Require().Len(resp.Tasks, 1)
	s.Equal(done.ID, resp.Tasks[0].ID)

	w = s.env.do(s.T(), http.MethodGet, "/api/tasks?priority=high", nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)
	decodeBody(s.T(), w, &resp)
	s.Require().Len(resp.Tasks, 1)
	s.Equal("Fix login bug", resp.Tasks[0].Title)

	// Case-insensitive text search over title and description.
	w = s.env.do(s.T(), http.MethodGet, "/api/tasks?search=LOGIN", nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)
	decodeBody(s.T(), w, &resp)
	s.Require().Len(resp.Tasks, 1)
	s.Equal("Fix login bug", resp.Tasks[0].Title)

	w = s.env.do(s.T(), http.MethodGet, "/api/tasks?status=parked", nil, s.user)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TaskHandlerTestSuite) TestReorderTasks() {
	a := s.createTask(map[string]any{"title": "A"})
	b := s.createTask(map[string]any{"title": "B"})
	c := s.createTask(map[string]any{"title": "C"})

	w := s.env.do(s.T(), http.MethodPost, "/api/tasks/reorder", map[string]any{
		"taskIds": []uint64{c.ID, a.ID, b.ID},
	}, s.user)
	s.Require().Equal(http.StatusOK, w.Code)

	expected := map[uint64]int{c.ID: 0, a.ID: 1, b.ID: 2}
	for id, order := range expected {
		w = s.env.do(s.T(), http.MethodGet, fmt.Sprintf("/api/tasks/%d", id), nil, s.user)
		s.Require().Equal(http.StatusOK, w.Code)

		var task taskResponse
		decodeBody(s.T(), w, &task)
		s.Equal(order, task.Order)
	}

	w = s.env.do(s.T(), http.MethodPost, "/api/tasks/reorder", map[string]any{
		"taskIds": []uint64{},
	}, s.user)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TaskHandlerTestSuite) TestDeleteTask() {
	task := s.createTask(map[string]any{"title": "Ephemeral"})
	path := fmt.Sprintf("/api/tasks/%d", task.ID)

	w := s.env.do(s.T(), http.MethodDelete, path, nil, s.user)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.env.do(s.T(), http.MethodGet, path, nil, s.user)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.env.do(s.T(), http.MethodDelete, path, nil, s.user)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TaskHandlerTestSuite) TestUpdateClearsNothingWhenEmpty() {
	task := s.createTask(map[string]any{
		"title":       "Stable",
		"description": "keep me",
	})

	w := s.env.do(s.T(), http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), map[string]any{}, s.user)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp taskResponse
	decodeBody(s.T(), w, &resp)
	s.Equal("Stable", resp.Title)
	s.Equal("keep me", resp.Description)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
