package queries

import (
	"context"
	"strings"
	"time"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemQueries interface {
	// GetItem returns the item with its comments; when the requester owns
	// the item the last/next approved booking window is attached too.
	GetItem(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemView, error)
	// ListOwnItems returns the requester's items, each annotated with its
	// booking window and comments.
	ListOwnItems(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error)
	// SearchItems finds available items by text; blank text yields an
	// empty result rather than an error.
	SearchItems(ctx context.Context, requesterID uuid.UUID, text string, from, size int) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	itemStore    ItemReadStore
	bookingStore BookingReadStore
	commentStore CommentReadStore
	userStore    UserReadStore
	clock        clock.Clock
}

func NewItemQueries(
	itemStore ItemReadStore,
	bookingStore BookingReadStore,
	commentStore CommentReadStore,
	userStore UserReadStore,
	clock clock.Clock,
) ItemQueries {
	return &itemQueriesImpl{
		itemStore:    itemStore,
		bookingStore: bookingStore,
		commentStore: commentStore,
		userStore:    userStore,
		clock:        clock,
	}
}

func (q *itemQueriesImpl) GetItem(ctx context.Context, requesterID, itemID uuid.UUID) (*ItemView, error) {
	if err := q.resolveUser(ctx, requesterID); err != nil {
		return nil, err
	}

	view, err := q.itemStore.FindViewByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The booking window is owner-only; other viewers see the item bare.
	if view.OwnerID == requesterID {
		last, next, err := q.bookingStore.FindLastAndNextApproved(ctx, itemID, requesterID, q.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view.LastBooking = last
		view.NextBooking = next
	}

	comments, err := q.commentStore.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view.Comments = comments

	return view, nil
}

func (q *itemQueriesImpl) ListOwnItems(ctx context.Context, ownerID uuid.UUID, from, size int) ([]*ItemView, error) {
	if err := q.resolveUser(ctx, ownerID); err != nil {
		return nil, err
	}

	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}

	items, err := q.itemStore.FindAllByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(items) == 0 {
		return items, nil
	}

	itemIDs := make([]uuid.UUID, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID
	}

	// One query each for bookings and comments across the whole batch.
	bookings, err := q.bookingStore.FindApprovedForItems(ctx, itemIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	comments, err := q.commentStore.FindByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	attachBookingWindows(items, bookings, q.clock.Now())
	attachComments(items, comments)

	return items, nil
}

func (q *itemQueriesImpl) SearchItems(ctx context.Context, requesterID uuid.UUID, text string, from, size int) ([]*ItemView, error) {
	if err := q.resolveUser(ctx, requesterID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return []*ItemView{}, nil
	}

	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}

	items, err := q.itemStore.Search(ctx, text, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

// attachBookingWindows annotates each item with its last and next approved
// booking relative to now. The booking slice is ordered by start ascending,
// so within one item's group the last booking is the final element with
// start <= now (the greatest such start, not the first found) and the next
// booking is the first element with start > now.
func attachBookingWindows(items []*ItemView, bookings []ApprovedBooking, now time.Time) {
	grouped := make(map[uuid.UUID][]ApprovedBooking, len(items))
	for _, b := range bookings {
		grouped[b.ItemID] = append(grouped[b.ItemID], b)
	}

	for _, it := range items {
		group := grouped[it.ID]
		for i := range group {
			b := group[i]
			if !b.Start.After(now) {
				// Ascending order: keep overwriting so the greatest
				// qualifying start wins.
				it.LastBooking = &BookingRef{ID: b.ID, BookerID: b.BookerID}
			} else {
				it.NextBooking = &BookingRef{ID: b.ID, BookerID: b.BookerID}
				break
			}
		}
	}
}

func attachComments(items []*ItemView, comments []CommentView) {
	grouped := make(map[uuid.UUID][]CommentView, len(items))
	for _, c := range comments {
		grouped[c.ItemID] = append(grouped[c.ItemID], c)
	}

	for _, it := range items {
		if group, ok := grouped[it.ID]; ok {
			it.Comments = group
		}
	}
}

func (q *itemQueriesImpl) resolveUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := q.userStore.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
