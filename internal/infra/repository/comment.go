package repository

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CommentRepository struct {
	db DB
}

func NewCommentRepository(db DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create persists a comment and returns it with the author name resolved.
func (r *CommentRepository) Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	const q = `
		WITH inserted AS (
			INSERT INTO comments (item_id, author_id, text)
			VALUES (@item_id, @author_id, @text)
			RETURNING id, item_id, author_id, text, created_at
		)
		SELECT c.id, c.item_id, u.name, c.text, c.created_at
		FROM inserted c
		JOIN users u ON u.id = c.author_id`

	args := pgx.NamedArgs{"item_id": itemID, "author_id": authorID, "text": text}

	var v queries.CommentView
	err := r.db.QueryRow(ctx, q, args).Scan(&v.ID, &v.ItemID, &v.AuthorName, &v.Text, &v.Created)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return &v, nil
}

func (r *CommentRepository) FindByItemID(ctx context.Context, itemID uuid.UUID) ([]queries.CommentView, error) {
	return r.FindByItemIDs(ctx, []uuid.UUID{itemID})
}

// FindByItemIDs fetches comments for the whole batch in one query; callers
// group them by item id. Comments are returned for every booking status.
func (r *CommentRepository) FindByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]queries.CommentView, error) {
	const q = `
		SELECT c.id, c.item_id, u.name, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY(@item_ids)
		ORDER BY c.created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"item_ids": itemIDs})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	result := make([]queries.CommentView, 0)
	for rows.Next() {
		var v queries.CommentView
		if err := rows.Scan(&v.ID, &v.ItemID, &v.AuthorName, &v.Text, &v.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read comment rows", err)
	}
	return result, nil
}
