package repo

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/nkraeva/task-tracker-api/internal/model"
)

type UserRepo struct { // Репозиторий пользователей поверх пула соединений
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	query, args, err := squirrel.Insert("users").
		Columns("username", "password").
		Values(username, passwordHash).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapError(err)
	}
	return res.LastInsertId()
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	query, args, err := squirrel.Select("id", "username", "password").
		From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return u, err
	}

	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		return u, mapError(err)
	}
	return u, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

func (r *UserRepo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return mapError(err)
	}
	return nil
}
