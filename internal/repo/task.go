package repo

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/nkraeva/task-tracker-api/internal/model"
)

type TaskRepo struct {
	db *sqlx.DB
}

func NewTaskRepo(db *sqlx.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Create(ctx context.Context, title string, userID int64) (model.Task, error) {
	t := model.Task{Title: title, Status: model.StatusPending, UserID: userID}

	query, args, err := squirrel.Insert("tasks").
		Columns("title", "status", "user_id").
		Values(title, model.StatusPending, userID).
		ToSql()
	if err != nil {
		return t, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return t, mapError(err)
	}

	t.ID, err = res.LastInsertId()
	return t, err
}

func (r *TaskRepo) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	query, args, err := squirrel.Select("id", "title", "status", "user_id", "created_at").
		From("tasks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	// Пустой срез, а не nil: клиент должен получить [], не null
	tasks := make([]model.Task, 0)
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, mapError(err)
	}
	return tasks, nil
}

func (r *TaskRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query, args, err := squirrel.Update("tasks").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	// RowsAffected не проверяем: обновление несуществующего id тоже успех
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := squirrel.Delete("tasks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err)
	}
	return nil
}
