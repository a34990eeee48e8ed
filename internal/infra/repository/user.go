package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (name, email)
		VALUES (@name, @email)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": u.Name(), "email": u.Email()}).Scan(&id)
	if err != nil {
		if isPgErrCode(err, pgErrCodeUniqueViolation) {
			return uuid.Nil, infra.WrapRepoErr("user email already in use", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const q = `SELECT id, name, email FROM users WHERE id = @id`

	var (
		userID      uuid.UUID
		name, email string
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&userID, &name, &email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return user.ReconstructUser(userID, name, email), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const q = `UPDATE users SET name = @name, email = @email WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": u.ID(), "name": u.Name(), "email": u.Email()})
	if err != nil {
		if isPgErrCode(err, pgErrCodeUniqueViolation) {
			return infra.WrapRepoErr("user email already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.UserView{ID: u.ID(), Name: u.Name(), Email: u.Email()}, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	const q = `SELECT id, name, email FROM users ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	result := make([]*queries.UserView, 0)
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return result, nil
}
