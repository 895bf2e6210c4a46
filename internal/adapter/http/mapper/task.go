package mapper

import (
	"time"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/dto"
	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		Priority:  string(task.Priority),
		CreatedAt: task.CreatedAt.Format(time.RFC3339Nano),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}

	return item
}

func ToAnalyticsSummary(summary domain.AnalyticsSummary) dto.AnalyticsSummary {
	daily := make([]dto.DailyActivity, 0, len(summary.Daily))
	for _, day := range summary.Daily {
		daily = append(daily, dto.DailyActivity{
			Date:      day.Date,
			Completed: day.Completed,
			Added:     day.Added,
		})
	}

	return dto.AnalyticsSummary{
		Daily:    daily,
		Status:   ToStatusCount(summary.Status),
		Priority: dto.PriorityCount{
			High:   summary.Priority.High,
			Medium: summary.Priority.Medium,
			Low:    summary.Priority.Low,
		},
	}
}

func ToStatusCount(count domain.StatusCount) dto.StatusCount {
	return dto.StatusCount{Completed: count.Completed, Pending: count.Pending}
}
