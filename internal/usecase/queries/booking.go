package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetForParticipant returns the booking when the requester is exactly
	// one of item owner or booker.
	GetForParticipant(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error)
	// ListForBooker lists the requester's own bookings filtered by the
	// classification token, ordered by start descending.
	ListForBooker(ctx context.Context, bookerID uuid.UUID, state string, from, size int) ([]*BookingView, error)
	// ListForOwner lists bookings against the requester's items.
	ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, from, size int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookingStore BookingReadStore
	userStore    UserReadStore
	clock        clock.Clock
}

func NewBookingQueries(bookingStore BookingReadStore, userStore UserReadStore, clock clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookingStore: bookingStore,
		userStore:    userStore,
		clock:        clock,
	}
}

func (q *bookingQueriesImpl) GetForParticipant(ctx context.Context, requesterID, bookingID uuid.UUID) (*BookingView, error) {
	if err := q.resolveUser(ctx, requesterID); err != nil {
		return nil, err
	}

	bookingEntity, err := q.bookingStore.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !bookingEntity.IsVisibleTo(requesterID) {
		// Non-participants get the same answer as a missing booking.
		return nil, errs.ErrBookingNotFound
	}

	view, err := q.bookingStore.FindViewByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID uuid.UUID, state string, from, size int) ([]*BookingView, error) {
	cls, page, err := q.prepareListing(ctx, bookerID, state, from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.bookingStore.FindAllByBooker(ctx, bookerID, cls, q.clock.Now(), page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, from, size int) ([]*BookingView, error) {
	cls, page, err := q.prepareListing(ctx, ownerID, state, from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.bookingStore.FindAllByOwner(ctx, ownerID, cls, q.clock.Now(), page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

// prepareListing resolves the user and parses the classification token and
// page before any query is built.
func (q *bookingQueriesImpl) prepareListing(ctx context.Context, userID uuid.UUID, state string, from, size int) (booking.Classification, Page, error) {
	if err := q.resolveUser(ctx, userID); err != nil {
		return "", Page{}, err
	}

	cls, err := booking.ParseClassification(state)
	if err != nil {
		return "", Page{}, errs.Mark(err, errs.ErrUnknownState)
	}

	page, err := NewPage(from, size)
	if err != nil {
		return "", Page{}, err
	}
	return cls, page, nil
}

func (q *bookingQueriesImpl) resolveUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := q.userStore.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
