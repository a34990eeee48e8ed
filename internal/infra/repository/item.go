package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemRepository struct {
	db DB
}

func NewItemRepository(db DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) (uuid.UUID, error) {
	const q = `
		INSERT INTO items (owner_id, name, description, available, request_id)
		VALUES (@owner_id, @name, @description, @available, @request_id)
		RETURNING id`

	args := pgx.NamedArgs{
		"owner_id":    i.OwnerID(),
		"name":        i.Name(),
		"description": i.Description(),
		"available":   i.Available(),
		"request_id":  pgconv.UUIDPtrToPgtype(i.RequestID()),
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		if isPgErrCode(err, pgErrCodeForeignKeyViolation) {
			return uuid.Nil, infra.WrapRepoErr("referenced request not found", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	const q = `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE id = @id`

	var (
		itemID, ownerID   uuid.UUID
		name, description string
		available         bool
		requestID         pgtype.UUID
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).
		Scan(&itemID, &ownerID, &name, &description, &available, &requestID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return item.ReconstructItem(itemID, ownerID, name, description, available, pgconv.UUIDPtrFromPgtype(requestID)), nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	const q = `
		UPDATE items
		SET name = @name, description = @description, available = @available
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":          i.ID(),
		"name":        i.Name(),
		"description": i.Description(),
		"available":   i.Available(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

const itemViewColumns = `i.id, i.owner_id, i.name, i.description, i.available, i.request_id`

func (r *ItemRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	q := `SELECT ` + itemViewColumns + ` FROM items i WHERE i.id = @id`

	view, err := scanItemView(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item view by ID", err)
	}
	return view, nil
}

// FindAllByOwner returns the owner's items in listing order, paged.
func (r *ItemRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID, page queries.Page) ([]*queries.ItemView, error) {
	if page.Size <= 0 {
		return nil, infra.WrapRepoErr("page size must be positive", nil, infra.KindPreconditionFailed)
	}

	q := `SELECT ` + itemViewColumns + `
	FROM items i
	WHERE i.owner_id = @owner_id
	ORDER BY i.created_at ASC
	OFFSET @offset LIMIT @limit`

	return r.queryItemViews(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID,
		"offset":   page.Offset(),
		"limit":    page.Size,
	})
}

// Search matches available items by substring on name or description,
// case-insensitively. Blank text never reaches this method.
func (r *ItemRepository) Search(ctx context.Context, text string, page queries.Page) ([]*queries.ItemView, error) {
	if page.Size <= 0 {
		return nil, infra.WrapRepoErr("page size must be positive", nil, infra.KindPreconditionFailed)
	}

	q := `SELECT ` + itemViewColumns + `
	FROM items i
	WHERE i.available AND (i.name ILIKE @pattern OR i.description ILIKE @pattern)
	ORDER BY i.created_at ASC
	OFFSET @offset LIMIT @limit`

	return r.queryItemViews(ctx, q, pgx.NamedArgs{
		"pattern": "%" + text + "%",
		"offset":  page.Offset(),
		"limit":   page.Size,
	})
}

// FindAnswersForRequests returns items created in answer to the given
// requests, for attachment to request views.
func (r *ItemRepository) FindAnswersForRequests(ctx context.Context, requestIDs []uuid.UUID) ([]queries.RequestAnswerView, error) {
	const q = `
		SELECT i.id, i.name, i.owner_id, i.request_id
		FROM items i
		WHERE i.request_id = ANY(@request_ids)
		ORDER BY i.created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"request_ids": requestIDs})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list request answers", err)
	}
	defer rows.Close()

	result := make([]queries.RequestAnswerView, 0)
	for rows.Next() {
		var v queries.RequestAnswerView
		if err := rows.Scan(&v.ID, &v.Name, &v.OwnerID, &v.RequestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request answer row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request answer rows", err)
	}
	return result, nil
}

func (r *ItemRepository) queryItemViews(ctx context.Context, q string, args pgx.NamedArgs) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	result := make([]*queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return result, nil
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var (
		v         queries.ItemView
		requestID pgtype.UUID
	)
	err := row.Scan(&v.ID, &v.OwnerID, &v.Name, &v.Description, &v.Available, &requestID)
	if err != nil {
		return nil, err
	}
	v.RequestID = pgconv.UUIDPtrFromPgtype(requestID)
	v.Comments = make([]queries.CommentView, 0)
	return &v, nil
}
