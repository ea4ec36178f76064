package service

import (
	"context"

	"github.com/nkraeva/task-tracker-api/internal/model"
	"github.com/nkraeva/task-tracker-api/internal/repo"
)

// TaskService - операции над задачами поверх репозитория.
type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, title string, userID int64) (model.Task, error) {
	return s.repo.Create(ctx, title, userID)
}

func (s *TaskService) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus ставит задаче произвольный статус. Переходы между статусами
// не проверяются, обновление несуществующей задачи - не ошибка.
func (s *TaskService) UpdateStatus(ctx context.Context, id int64, status string) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete удаляет задачу. Удаление несуществующей задачи - не ошибка.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
