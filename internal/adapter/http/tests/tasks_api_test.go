package tests

import (
	"net/http"
	"time"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/dto"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/pkg/apierrors"
)

func (s *APISuite) TestRoot_ReturnsWelcomeMessage() {
	rec := s.request(http.MethodGet, "/", "")

	s.Require().Equal(http.StatusOK, rec.Code)

	var got handlersWelcome
	s.decode(rec, &got)
	s.Require().Equal("Welcome to Taskify API", got.Message)
}

type handlersWelcome struct {
	Message string `json:"message"`
}

func (s *APISuite) TestHealth_ReportsOk() {
	rec := s.request(http.MethodGet, "/health", "")

	s.Require().Equal(http.StatusOK, rec.Code)

	var got map[string]any
	s.decode(rec, &got)
	s.Require().Equal("ok", got["message"])
}

func (s *APISuite) TestCreateTask_RoundTripsThroughGet() {
	rec := s.request(http.MethodPost, "/tasks", `{
		"title":"Write docs",
		"description":"API reference",
		"status":"pending",
		"priority":"high",
		"due_date":"2026-09-20"
	}`)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.decode(rec, &created)
	s.Require().NotZero(created.ID)
	s.Require().Equal("Write docs", created.Title)
	s.Require().Equal("API reference", *created.Description)
	s.Require().Equal("pending", created.Status)
	s.Require().Equal("high", created.Priority)
	s.Require().Equal("2026-09-20", *created.DueDate)

	createdAt, err := time.Parse(time.RFC3339Nano, created.CreatedAt)
	s.Require().NoError(err)
	s.Require().WithinDuration(time.Now().UTC(), createdAt, time.Minute)

	rec = s.request(http.MethodGet, "/tasks/1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.TaskItem
	s.decode(rec, &got)
	s.Require().Equal(created, got)
}

func (s *APISuite) TestCreateTask_AppliesDefaults() {
	rec := s.request(http.MethodPost, "/tasks", `{"title":"Bare minimum"}`)

	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.TaskItem
	s.decode(rec, &created)
	s.Require().Equal("pending", created.Status)
	s.Require().Equal("medium", created.Priority)
	s.Require().Nil(created.Description)
	s.Require().Nil(created.DueDate)
}

func (s *APISuite) TestCreateTask_MissingTitleIsRejected() {
	rec := s.request(http.MethodPost, "/tasks", `{"description":"no title"}`)

	s.Require().Equal(http.StatusBadRequest, rec.Code)

	var got apierrors.APIError
	s.decode(rec, &got)
	s.Require().Equal("Invalid task payload", got.Detail)
}

func (s *APISuite) TestListTasks_FilterSkipAndLimit() {
	s.request(http.MethodPost, "/tasks", `{"title":"one"}`)
	s.request(http.MethodPost, "/tasks", `{"title":"two","status":"completed"}`)
	s.request(http.MethodPost, "/tasks", `{"title":"three"}`)

	rec := s.request(http.MethodGet, "/tasks", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var all []dto.TaskItem
	s.decode(rec, &all)
	s.Require().Len(all, 3)
	s.Require().Equal("one", all[0].Title)
	s.Require().Equal("two", all[1].Title)
	s.Require().Equal("three", all[2].Title)

	rec = s.request(http.MethodGet, "/tasks?status=completed", "")
	var completed []dto.TaskItem
	s.decode(rec, &completed)
	s.Require().Len(completed, 1)
	s.Require().Equal("two", completed[0].Title)

	rec = s.request(http.MethodGet, "/tasks?skip=0&limit=1", "")
	var first []dto.TaskItem
	s.decode(rec, &first)
	s.Require().Len(first, 1)

	rec = s.request(http.MethodGet, "/tasks?skip=3&limit=10", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var none []dto.TaskItem
	s.decode(rec, &none)
	s.Require().Empty(none)
}

func (s *APISuite) TestUpdateTask_FullReplacement() {
	s.request(http.MethodPost, "/tasks", `{
		"title":"before",
		"description":"will vanish",
		"priority":"high",
		"due_date":"2026-09-10"
	}`)

	// Absent optional fields fall back to defaults, they do not keep the
	// previous value.
	rec := s.request(http.MethodPatch, "/tasks/1", `{"title":"after","status":"completed"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated dto.TaskItem
	s.decode(rec, &updated)
	s.Require().Equal("after", updated.Title)
	s.Require().Equal("completed", updated.Status)
	s.Require().Equal("medium", updated.Priority)
	s.Require().Nil(updated.Description)
	s.Require().Nil(updated.DueDate)
}

func (s *APISuite) TestUpdateTask_NotFound() {
	rec := s.request(http.MethodPatch, "/tasks/999", `{"title":"x"}`)

	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.APIError
	s.decode(rec, &got)
	s.Require().Equal("Task not found", got.Detail)
}

func (s *APISuite) TestDeleteTask_ThenGetReturnsNotFound() {
	s.request(http.MethodPost, "/tasks", `{"title":"short lived"}`)

	rec := s.request(http.MethodDelete, "/tasks/1", "")
	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.Require().Empty(rec.Body.String())

	rec = s.request(http.MethodGet, "/tasks/1", "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	var got apierrors.APIError
	s.decode(rec, &got)
	s.Require().Equal("Task not found", got.Detail)
}

func (s *APISuite) TestDeleteTask_NotFound() {
	rec := s.request(http.MethodDelete, "/tasks/42", "")

	s.Require().Equal(http.StatusNotFound, rec.Code)
}
