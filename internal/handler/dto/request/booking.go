package request

import (
	"time"

	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

func (r CreateBookingRequest) ToParams() commands.RequestBookingParams {
	return commands.RequestBookingParams{
		ItemID: r.ItemID,
		Start:  r.Start,
		End:    r.End,
	}
}
