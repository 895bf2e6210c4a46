package validation

import (
	"errors"
	"time"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/dto"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildTaskFields turns a request body into the full replacement field set.
// Absent status and priority take their documented defaults; values are
// otherwise passed through verbatim, including strings outside the known
// vocabularies.
func BuildTaskFields(req dto.TaskPayload) (domain.TaskFields, error) {
	status := domain.TaskStatusPending
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.TaskFields{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	return domain.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
	}, nil
}
