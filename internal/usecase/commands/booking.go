package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestBookingParams struct {
	ItemID uuid.UUID
	Start  time.Time
	End    time.Time
}

type BookingCommands interface {
	// RequestBooking creates a WAITING booking for the booker on the item.
	RequestBooking(ctx context.Context, bookerID uuid.UUID, params RequestBookingParams) (*queries.BookingView, error)
	// Decide applies the owner's approval or rejection to a WAITING booking.
	Decide(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	itemRepo    ItemRepository
	userRepo    UserRepository
	clock       clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

func (c *bookingCommandsImpl) RequestBooking(
	ctx context.Context,
	bookerID uuid.UUID,
	params RequestBookingParams,
) (*queries.BookingView, error) {
	booker, err := c.userRepo.FindByID(ctx, bookerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	itemEntity, err := c.itemRepo.FindByID(ctx, params.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !itemEntity.Available() {
		return nil, errs.ErrItemUnavailable
	}

	// Self-booking answers "not found" rather than "forbidden" so the
	// caller cannot probe item ownership.
	if itemEntity.IsOwnedBy(booker.ID()) {
		return nil, errs.ErrOwnItemBooking
	}

	period, err := booking.NewPeriod(params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPeriod)
	}

	bookingEntity, err := booking.NewBooking(
		itemEntity.ID(),
		itemEntity.OwnerID(),
		booker.ID(),
		period,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPeriod)
	}

	bookingID, err := c.bookingRepo.Create(ctx, bookingEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrBookingConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the view with item/booker snapshots.
	view, err := c.bookingRepo.FindViewByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Decide(
	ctx context.Context,
	actorID, bookingID uuid.UUID,
	approve bool,
) (*queries.BookingView, error) {
	if _, err := c.userRepo.FindByID(ctx, actorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	bookingEntity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := bookingEntity.Decide(actorID, approve); err != nil {
		switch err {
		case booking.ErrNotItemOwner:
			// Same information-hiding choice as self-booking: a non-owner
			// learns nothing beyond "not found".
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		case booking.ErrNotWaiting:
			return nil, errs.Mark(err, errs.ErrBookingAlreadyDecided)
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if err := c.bookingRepo.UpdateStatusIfWaiting(ctx, bookingID, bookingEntity.Status()); err != nil {
		if infra.IsKind(err, infra.KindPreconditionFailed) {
			// Lost the race against a concurrent decision.
			return nil, errs.Mark(err, errs.ErrBookingAlreadyDecided)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.bookingRepo.FindViewByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
