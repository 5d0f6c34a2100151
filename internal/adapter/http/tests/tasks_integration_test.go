//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/adapter/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()
	s.router = buildRouter(s.DB)
}

func (s *TasksIntegrationSuite) registerAndLogin(username, email string) string {
	return registerAndLogin(s.T(), s.router, username, email)
}

func (s *TasksIntegrationSuite) do(method, path, token, body string) *httptest.ResponseRecorder {
	return doJSON(s.router, method, path, token, body)
}

func (s *TasksIntegrationSuite) TestTaskLifecycle() {
	token := s.registerAndLogin("amara", "amara@example.com")

	rec := s.do(http.MethodPost, "/api/tasks", token, `{"title":"Write report","due_date":"2026-09-15","priority":1}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	s.Require().NotZero(created.ID)
	s.Require().Equal("Write report", created.Title)
	s.Require().Equal("PENDING", created.Status)
	s.Require().Equal(1, created.Priority)
	s.Require().Equal("2026-09-15", *created.DueDate)

	id := created.ID

	rec = s.do(http.MethodPatch, "/api/tasks/"+itoa(id), token, `{"status":"DONE","duration_minutes":45}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Equal("DONE", updated.Status)
	s.Require().Equal(45, *updated.DurationMinutes)

	rec = s.do(http.MethodPatch, "/api/tasks/"+itoa(id), token, `{"due_date":null}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &updated))
	s.Require().Nil(updated.DueDate)

	rec = s.do(http.MethodDelete, "/api/tasks/"+itoa(id), token, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/tasks/"+itoa(id), token, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *TasksIntegrationSuite) TestTasksAreOwnerScoped() {
	first := s.registerAndLogin("first", "first@example.com")
	second := s.registerAndLogin("second", "second@example.com")

	rec := s.do(http.MethodPost, "/api/tasks", first, `{"title":"Private task"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))

	// The other user can neither see nor touch it.
	rec = s.do(http.MethodGet, "/api/tasks/"+itoa(created.ID), second, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/api/tasks/"+itoa(created.ID), second, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/tasks", second, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var listed []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &listed))
	s.Require().Empty(listed)
}

func (s *TasksIntegrationSuite) TestListFilters() {
	token := s.registerAndLogin("amara", "amara@example.com")

	today := time.Now().Format("2006-01-02")
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/tasks", token,
		`{"title":"Due today","due_date":"`+today+`"}`).Code)
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/tasks", token,
		`{"title":"Someday","priority":2}`).Code)

	rec := s.do(http.MethodGet, "/api/tasks?due_date_today=true", token, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Require().Equal("Due today", got[0].Title)

	rec = s.do(http.MethodGet, "/api/tasks?search=someday", token, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Require().Equal("Someday", got[0].Title)
}

func (s *TasksIntegrationSuite) TestSubtasks() {
	token := s.registerAndLogin("amara", "amara@example.com")

	rec := s.do(http.MethodPost, "/api/tasks", token, `{"title":"Parent"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var parent dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &parent))

	rec = s.do(http.MethodPost, "/api/tasks/"+itoa(parent.ID)+"/subtasks", token, `{"title":"Step one"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var subtask dto.SubtaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &subtask))
	s.Require().False(subtask.Completed)

	rec = s.do(http.MethodPatch, "/api/subtasks/"+itoa(subtask.ID), token, `{"completed":true}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &subtask))
	s.Require().True(subtask.Completed)

	// Deleting the parent cascades.
	rec = s.do(http.MethodDelete, "/api/tasks/"+itoa(parent.ID), token, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPatch, "/api/subtasks/"+itoa(subtask.ID), token, `{"completed":false}`)
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *TasksIntegrationSuite) TestUnauthenticatedRejected() {
	rec := s.do(http.MethodGet, "/api/tasks", "", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TasksIntegrationSuite) TestDuplicateCategoryNameConflicts() {
	token := s.registerAndLogin("amara", "amara@example.com")

	rec := s.do(http.MethodPost, "/api/categories", token, `{"name":"Work"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/categories", token, `{"name":"Work"}`)
	s.Require().Equal(http.StatusConflict, rec.Code)

	// Same name under a different user is fine.
	other := s.registerAndLogin("other", "other@example.com")
	rec = s.do(http.MethodPost, "/api/categories", other, `{"name":"Work"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
}
