package ports

import (
	"context"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/domain"
)

type TaskRepository interface {
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, fields domain.TaskFields) (domain.Task, error)
	Get(ctx context.Context, id int64) (domain.Task, error)
	Update(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type TaskService interface {
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, fields domain.TaskFields) (domain.Task, error)
	Get(ctx context.Context, id int64) (domain.Task, error)
	Update(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
