package service

import (
	"context"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/domain"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, filter)
}

func (s *TaskService) Create(ctx context.Context, fields domain.TaskFields) (domain.Task, error) {
	return s.taskRepository.Create(ctx, fields)
}

func (s *TaskService) Get(ctx context.Context, id int64) (domain.Task, error) {
	return s.taskRepository.Get(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error) {
	return s.taskRepository.Update(ctx, id, fields)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.taskRepository.Delete(ctx, id)
}
