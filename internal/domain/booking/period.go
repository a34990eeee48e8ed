package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEndNotAfterStart = errors.New("booking end date must be after booking start date")
	ErrStartInPast      = errors.New("booking start date cannot be in the past")
)

// Period is the half-open interval [start, end) a booking reserves.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) || end.Equal(start) {
		return Period{}, ErrEndNotAfterStart
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod restores a period from storage without validation.
// Persisted rows already satisfied the constructor when they were written.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// ValidateNotPast guards the creation path only; historical bookings
// naturally have starts in the past.
func (p Period) ValidateNotPast(now time.Time) error {
	if p.start.Before(now) {
		return ErrStartInPast
	}
	return nil
}

// Contains reports whether now falls inside [start, end).
func (p Period) Contains(now time.Time) bool {
	return !p.start.After(now) && now.Before(p.end)
}

func (p Period) EndsBefore(now time.Time) bool {
	return p.end.Before(now)
}

func (p Period) StartsAfter(now time.Time) bool {
	return p.start.After(now)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}
