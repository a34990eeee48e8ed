package booking

import "errors"

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

var ErrUnknownClassification = errors.New("unknown state")

// Classification is a query-time temporal/status filter over bookings.
// It is never stored.
type Classification string

const (
	ClassificationAll      Classification = "ALL"
	ClassificationCurrent  Classification = "CURRENT"
	ClassificationPast     Classification = "PAST"
	ClassificationFuture   Classification = "FUTURE"
	ClassificationWaiting  Classification = "WAITING"
	ClassificationRejected Classification = "REJECTED"
)

// ParseClassification accepts exactly the upper-case literals; any other
// token is a client error, rejected before a query is built from it.
func ParseClassification(token string) (Classification, error) {
	switch c := Classification(token); c {
	case ClassificationAll, ClassificationCurrent, ClassificationPast,
		ClassificationFuture, ClassificationWaiting, ClassificationRejected:
		return c, nil
	default:
		return "", ErrUnknownClassification
	}
}

func (c Classification) String() string {
	return string(c)
}
