package repo

import (
	"context"

	"github.com/nkraeva/task-tracker-api/internal/model"
)

// UserRepository определяет интерфейс для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(ctx context.Context, title string, userID int64) (model.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Task, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
