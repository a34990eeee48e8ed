package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra/repository;
// misses are reported as infra.KindNotFound and translated to domain
// sentinels here.

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatusIfWaiting persists a decision only while the row is still
	// WAITING; a stale write is reported as infra.KindPreconditionFailed.
	UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) error
	FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	HasCompletedBookingBy(ctx context.Context, userID, itemID uuid.UUID, before time.Time) (bool, error)
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	Update(ctx context.Context, i *item.Item) error
	FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error)
}

type CommentRepository interface {
	Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error)
}

type RequestRepository interface {
	Create(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error)
}
