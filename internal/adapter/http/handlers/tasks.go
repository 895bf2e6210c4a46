package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/dto"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/mapper"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/middleware"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/validation"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/domain"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/ports"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks handles GET /tasks?skip&limit&status. Unparseable skip/limit
// values fall back to their defaults; status is matched verbatim.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter := domain.TaskFilter{
		Offset: intQuery(c, "skip", 0),
		Limit:  intQuery(c, "limit", domain.DefaultListLimit),
	}
	if value, ok := c.GetQuery("status"); ok && value != "" {
		status := domain.TaskStatus(value)
		filter.Status = &status
	}

	tasks, err := h.taskService.List(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgInternalError, lang))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	fields, ok := h.bindTaskPayload(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), fields)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgInternalError, lang))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := h.taskIDParam(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), taskID)
	if err != nil {
		h.respondTaskError(c, lang, taskID, err, "failed to get task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := h.taskIDParam(c, lang)
	if !ok {
		return
	}

	fields, ok := h.bindTaskPayload(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), taskID, fields)
	if err != nil {
		h.respondTaskError(c, lang, taskID, err, "failed to update task")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := h.taskIDParam(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), taskID); err != nil {
		h.respondTaskError(c, lang, taskID, err, "failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) taskIDParam(c *gin.Context, lang string) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskID, lang))
		return 0, false
	}
	return taskID, true
}

func (h *TaskHandler) bindTaskPayload(c *gin.Context, lang string) (domain.TaskFields, bool) {
	var req dto.TaskPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return domain.TaskFields{}, false
	}

	fields, err := validation.BuildTaskFields(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(apierrors.MsgInvalidTaskPayload, lang))
		return domain.TaskFields{}, false
	}

	return fields, true
}

func (h *TaskHandler) respondTaskError(c *gin.Context, lang string, taskID int64, err error, logMsg string) {
	if errors.Is(err, domain.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, apierrors.CreateError(apierrors.MsgTaskNotFound, lang))
		return
	}

	zap.L().Error(logMsg, zap.Int64("task_id", taskID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, apierrors.CreateError(apierrors.MsgInternalError, lang))
}

func intQuery(c *gin.Context, key string, fallback int) int {
	value, ok := c.GetQuery(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
