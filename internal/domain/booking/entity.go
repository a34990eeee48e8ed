package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotItemOwner = errors.New("actor does not own the booked item")
	ErrNotWaiting   = errors.New("booking is not in available status")
)

// Booking is a time-bounded reservation request by a booker against an item.
// It references the item and carries the item owner's id so the transition
// guard can be evaluated without another lookup.
type Booking struct {
	id          uuid.UUID
	itemID      uuid.UUID
	itemOwnerID uuid.UUID
	bookerID    uuid.UUID
	period      Period
	status      Status
	createdAt   time.Time
}

// NewBooking builds a booking request in its initial WAITING state. The id
// stays nil until storage assigns one on insert.
func NewBooking(itemID, itemOwnerID, bookerID uuid.UUID, period Period, now time.Time) (*Booking, error) {
	if err := period.ValidateNotPast(now); err != nil {
		return nil, err
	}
	return &Booking{
		itemID:      itemID,
		itemOwnerID: itemOwnerID,
		bookerID:    bookerID,
		period:      period,
		status:      StatusWaiting,
	}, nil
}

func ReconstructBooking(
	id, itemID, itemOwnerID, bookerID uuid.UUID,
	period Period,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		itemID:      itemID,
		itemOwnerID: itemOwnerID,
		bookerID:    bookerID,
		period:      period,
		status:      status,
		createdAt:   createdAt,
	}
}

// Decide applies the single allowed transition WAITING -> APPROVED/REJECTED.
// Only the item owner may decide, and only while the booking is WAITING;
// the WAITING check also serves as the optimistic-concurrency guard for
// two racing decisions on the same booking.
func (b *Booking) Decide(actorID uuid.UUID, approve bool) error {
	if b.itemOwnerID != actorID {
		return ErrNotItemOwner
	}
	if b.status != StatusWaiting {
		return ErrNotWaiting
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsBookedBy(userID uuid.UUID) bool {
	return b.bookerID == userID
}

func (b *Booking) IsItemOwnedBy(userID uuid.UUID) bool {
	return b.itemOwnerID == userID
}

// IsVisibleTo implements participant access: the requester must be exactly
// one of item owner or booker. Evaluated as exclusive-or on purpose; an
// owner can never book their own item, so "both" never names a real caller.
func (b *Booking) IsVisibleTo(userID uuid.UUID) bool {
	return b.IsItemOwnedBy(userID) != b.IsBookedBy(userID)
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) ItemID() uuid.UUID      { return b.itemID }
func (b *Booking) ItemOwnerID() uuid.UUID { return b.itemOwnerID }
func (b *Booking) BookerID() uuid.UUID    { return b.bookerID }
func (b *Booking) Period() Period         { return b.period }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
