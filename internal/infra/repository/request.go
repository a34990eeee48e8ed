package repository

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RequestRepository struct {
	db DB
}

func NewRequestRepository(db DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error) {
	const q = `
		INSERT INTO requests (requester_id, description)
		VALUES (@requester_id, @description)
		RETURNING id, description, created_at`

	var v queries.RequestView
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"requester_id": requesterID,
		"description":  description,
	}).Scan(&v.ID, &v.Description, &v.Created)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create request", err)
	}
	v.Items = make([]queries.RequestAnswerView, 0)
	return &v, nil
}

func (r *RequestRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const q = `SELECT id, description, created_at FROM requests WHERE id = @id`

	var v queries.RequestView
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&v.ID, &v.Description, &v.Created)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	v.Items = make([]queries.RequestAnswerView, 0)
	return &v, nil
}

// FindAllByRequester returns the user's own requests, newest first.
func (r *RequestRepository) FindAllByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	const q = `
		SELECT id, description, created_at
		FROM requests
		WHERE requester_id = @requester_id
		ORDER BY created_at DESC`

	return r.queryRequestViews(ctx, q, pgx.NamedArgs{"requester_id": requesterID})
}

// FindAllOthers returns requests created by everyone except the user,
// newest first, paged.
func (r *RequestRepository) FindAllOthers(ctx context.Context, userID uuid.UUID, page queries.Page) ([]*queries.RequestView, error) {
	if page.Size <= 0 {
		return nil, infra.WrapRepoErr("page size must be positive", nil, infra.KindPreconditionFailed)
	}

	const q = `
		SELECT id, description, created_at
		FROM requests
		WHERE requester_id <> @requester_id
		ORDER BY created_at DESC
		OFFSET @offset LIMIT @limit`

	return r.queryRequestViews(ctx, q, pgx.NamedArgs{
		"requester_id": userID,
		"offset":       page.Offset(),
		"limit":        page.Size,
	})
}

func (r *RequestRepository) queryRequestViews(ctx context.Context, q string, args pgx.NamedArgs) ([]*queries.RequestView, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	result := make([]*queries.RequestView, 0)
	for rows.Next() {
		var v queries.RequestView
		if err := rows.Scan(&v.ID, &v.Description, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		v.Items = make([]queries.RequestAnswerView, 0)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	return result, nil
}
