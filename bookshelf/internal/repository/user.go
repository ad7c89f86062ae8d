package repository

import (
	"context"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var userColumns = []string{"id", "username", "password_hash", "created_at"}

func (r *repository) collectUser(ctx context.Context, query string, args ...any) (model.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	query, args, err := qb.Insert(usersTableName).
		Columns("id", "username", "password_hash").
		Values(user.ID, user.Username, user.PasswordHash).
		Suffix("returning id, username, password_hash, created_at").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	created, err := r.collectUser(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errors.Wrapf(errs.ErrDuplicate, "username %q", user.Username)
		}
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return r.collectUser(ctx, query, args...)
}

func (r *repository) GetUserByName(ctx context.Context, username string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return r.collectUser(ctx, query, args...)
}
