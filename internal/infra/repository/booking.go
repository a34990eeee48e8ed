package repository

import (
	"context"
	"fmt"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// classificationPredicates maps each temporal classification to its SQL
// filter. A lookup table keeps the booker and owner listing paths on the
// same predicates instead of two switch statements drifting apart. Every
// temporal comparison binds the one @now sampled by the caller.
var classificationPredicates = map[booking.Classification]string{
	booking.ClassificationAll:      "TRUE",
	booking.ClassificationCurrent:  "b.start_at <= @now AND b.end_at > @now",
	booking.ClassificationPast:     "b.end_at < @now",
	booking.ClassificationFuture:   "b.start_at > @now",
	booking.ClassificationWaiting:  "b.status = 'WAITING'",
	booking.ClassificationRejected: "b.status = 'REJECTED'",
}

type BookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create persists a WAITING booking and returns the storage-assigned id.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const q = `
		INSERT INTO bookings (item_id, booker_id, start_at, end_at, status)
		VALUES (@item_id, @booker_id, @start_at, @end_at, @status)
		RETURNING id`

	args := pgx.NamedArgs{
		"item_id":   b.ItemID(),
		"booker_id": b.BookerID(),
		"start_at":  b.Period().Start(),
		"end_at":    b.Period().End(),
		"status":    b.Status().String(),
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		if isPgErrCode(err, pgErrCodeUniqueViolation) {
			return uuid.Nil, infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// FindByID reconstructs the booking entity together with the owning user of
// its item, so the transition guard can run without a second lookup.
func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = `
		SELECT b.id, b.item_id, i.owner_id, b.booker_id, b.start_at, b.end_at, b.status, b.created_at
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.id = @id`

	var (
		bookingID, itemID, ownerID, bookerID uuid.UUID
		startAt, endAt, createdAt            time.Time
		status                               string
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).
		Scan(&bookingID, &itemID, &ownerID, &bookerID, &startAt, &endAt, &status, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return booking.ReconstructBooking(
		bookingID, itemID, ownerID, bookerID,
		booking.ReconstructPeriod(startAt, endAt),
		booking.Status(status),
		createdAt,
	), nil
}

// UpdateStatusIfWaiting is the single-statement read-modify-write for a
// decision. The WHERE clause re-checks WAITING inside the statement, so a
// second concurrent decision affects zero rows instead of overwriting.
func (r *BookingRepository) UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const q = `
		UPDATE bookings
		SET status = @status, updated_at = now()
		WHERE id = @id AND status = 'WAITING'`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": status.String()})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking is not in available status", nil, infra.KindPreconditionFailed)
	}
	return nil
}

const bookingViewColumns = `
	b.id, b.start_at, b.end_at, b.status,
	i.id, i.name,
	u.id, u.name`

const bookingViewJoins = `
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

// FindViewByID returns the booking enriched with item and booker snapshots.
func (r *BookingRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	q := `SELECT` + bookingViewColumns + bookingViewJoins + `
	WHERE b.id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view by ID", err)
	}
	return view, nil
}

// FindAllByBooker lists the booker's bookings under the classification,
// ordered by start descending.
func (r *BookingRepository) FindAllByBooker(
	ctx context.Context,
	bookerID uuid.UUID,
	cls booking.Classification,
	now time.Time,
	page queries.Page,
) ([]*queries.BookingView, error) {
	return r.findAllFiltered(ctx, "b.booker_id = @scope_id", bookerID, cls, now, page)
}

// FindAllByOwner lists bookings whose item belongs to the owner.
func (r *BookingRepository) FindAllByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	cls booking.Classification,
	now time.Time,
	page queries.Page,
) ([]*queries.BookingView, error) {
	return r.findAllFiltered(ctx, "i.owner_id = @scope_id", ownerID, cls, now, page)
}

func (r *BookingRepository) findAllFiltered(
	ctx context.Context,
	scope string,
	scopeID uuid.UUID,
	cls booking.Classification,
	now time.Time,
	page queries.Page,
) ([]*queries.BookingView, error) {
	predicate, ok := classificationPredicates[cls]
	if !ok {
		return nil, infra.WrapRepoErr("unknown classification: "+cls.String(), nil, infra.KindPreconditionFailed)
	}
	if page.Size <= 0 {
		return nil, infra.WrapRepoErr("page size must be positive", nil, infra.KindPreconditionFailed)
	}

	q := fmt.Sprintf(`SELECT%s%s
	WHERE %s AND %s
	ORDER BY b.start_at DESC
	OFFSET @offset LIMIT @limit`, bookingViewColumns, bookingViewJoins, scope, predicate)

	args := pgx.NamedArgs{
		"scope_id": scopeID,
		"now":      now,
		"offset":   page.Offset(),
		"limit":    page.Size,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

// FindLastAndNextApproved returns the APPROVED booking with the greatest
// start <= now and the one with the smallest start > now for an item, both
// scoped to the item owner.
func (r *BookingRepository) FindLastAndNextApproved(
	ctx context.Context,
	itemID, ownerID uuid.UUID,
	now time.Time,
) (last, next *queries.BookingRef, err error) {
	const lastQ = `
		SELECT b.id, b.booker_id
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.item_id = @item_id AND i.owner_id = @owner_id
		  AND b.status = 'APPROVED' AND b.start_at <= @now
		ORDER BY b.start_at DESC
		LIMIT 1`

	const nextQ = `
		SELECT b.id, b.booker_id
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.item_id = @item_id AND i.owner_id = @owner_id
		  AND b.status = 'APPROVED' AND b.start_at > @now
		ORDER BY b.start_at ASC
		LIMIT 1`

	args := pgx.NamedArgs{"item_id": itemID, "owner_id": ownerID, "now": now}

	last, err = r.scanBookingRef(ctx, lastQ, args)
	if err != nil {
		return nil, nil, err
	}
	next, err = r.scanBookingRef(ctx, nextQ, args)
	if err != nil {
		return nil, nil, err
	}
	return last, next, nil
}

func (r *BookingRepository) scanBookingRef(ctx context.Context, q string, args pgx.NamedArgs) (*queries.BookingRef, error) {
	var ref queries.BookingRef
	err := r.db.QueryRow(ctx, q, args).Scan(&ref.ID, &ref.BookerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find approved booking", err)
	}
	return &ref, nil
}

// FindApprovedForItems fetches all APPROVED bookings for the batch in one
// query, ordered by start ascending for the aggregator's scan.
func (r *BookingRepository) FindApprovedForItems(ctx context.Context, itemIDs []uuid.UUID) ([]queries.ApprovedBooking, error) {
	const q = `
		SELECT b.id, b.item_id, b.booker_id, b.start_at
		FROM bookings b
		WHERE b.item_id = ANY(@item_ids) AND b.status = 'APPROVED'
		ORDER BY b.start_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"item_ids": itemIDs})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved bookings for items", err)
	}
	defer rows.Close()

	result := make([]queries.ApprovedBooking, 0)
	for rows.Next() {
		var ab queries.ApprovedBooking
		if err := rows.Scan(&ab.ID, &ab.ItemID, &ab.BookerID, &ab.Start); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approved booking row", err)
		}
		result = append(result, ab)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read approved booking rows", err)
	}
	return result, nil
}

// HasCompletedBookingBy reports whether the user had a booking on the item
// that ended before the given instant. Status is intentionally not part of
// the check.
func (r *BookingRepository) HasCompletedBookingBy(ctx context.Context, userID, itemID uuid.UUID, before time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = @booker_id AND item_id = @item_id AND end_at < @before
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"booker_id": userID,
		"item_id":   itemID,
		"before":    before,
	}).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check completed booking", err)
	}
	return exists, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.Start, &v.End, &v.Status,
		&v.Item.ID, &v.Item.Name,
		&v.Booker.ID, &v.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
