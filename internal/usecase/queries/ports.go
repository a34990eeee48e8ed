package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/user"

	"github.com/google/uuid"
)

// Read-side ports implemented by internal/infra/repository.

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAllByBooker(ctx context.Context, bookerID uuid.UUID, cls booking.Classification, now time.Time, page Page) ([]*BookingView, error)
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID, cls booking.Classification, now time.Time, page Page) ([]*BookingView, error)
	FindLastAndNextApproved(ctx context.Context, itemID, ownerID uuid.UUID, now time.Time) (last, next *BookingRef, err error)
	FindApprovedForItems(ctx context.Context, itemIDs []uuid.UUID) ([]ApprovedBooking, error)
}

type ItemReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID, page Page) ([]*ItemView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
	FindAnswersForRequests(ctx context.Context, requestIDs []uuid.UUID) ([]RequestAnswerView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
}

type CommentReadStore interface {
	FindByItemID(ctx context.Context, itemID uuid.UUID) ([]CommentView, error)
	FindByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]CommentView, error)
}

type RequestReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindAllByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	FindAllOthers(ctx context.Context, userID uuid.UUID, page Page) ([]*RequestView, error)
}
