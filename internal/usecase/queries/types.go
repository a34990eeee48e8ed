package queries

import (
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidPage = errs.New("invalid pagination parameters")

// Page is the slice [Number*Size, Number*Size+Size) of a stable ordering.
type Page struct {
	Number int
	Size   int
}

// NewPage maps the wire parameters from/size to a page index. Existing
// callers depend on the integer division, so from=25,size=10 means page 2,
// not an offset of 25.
func NewPage(from, size int) (Page, error) {
	if from < 0 || size < 1 {
		return Page{}, ErrInvalidPage
	}
	return Page{Number: from / size, Size: size}, nil
}

func (p Page) Offset() int {
	return p.Number * p.Size
}

// Read models (DTO for read side)

type ItemRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BookingView struct {
	ID     uuid.UUID `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
}

// BookingRef is the reduced {bookingId, bookerId} form attached to items.
type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
}

// ApprovedBooking is the row shape the batch aggregator works over,
// ordered by start ascending.
type ApprovedBooking struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	BookerID uuid.UUID
	Start    time.Time
}

type CommentView struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

type ItemView struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"ownerId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	RequestID   *uuid.UUID    `json:"requestId,omitempty"`
	LastBooking *BookingRef   `json:"lastBooking,omitempty"`
	NextBooking *BookingRef   `json:"nextBooking,omitempty"`
	Comments    []CommentView `json:"comments"`
}

type UserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type RequestAnswerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"ownerId"`
	RequestID uuid.UUID `json:"requestId"`
}

type RequestView struct {
	ID          uuid.UUID           `json:"id"`
	Description string              `json:"description"`
	Created     time.Time           `json:"created"`
	Items       []RequestAnswerView `json:"items"`
}
