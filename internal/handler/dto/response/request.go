package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemRequestResponse struct {
	ID          uuid.UUID           `json:"id"`
	Description string              `json:"description"`
	Created     time.Time           `json:"created"`
	Items       []RequestAnswerItem `json:"items"`
}

type RequestAnswerItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"ownerId"`
	RequestID uuid.UUID `json:"requestId"`
}

func FromRequestView(rm *queries.RequestView) *ItemRequestResponse {
	var resp ItemRequestResponse
	_ = copier.Copy(&resp, rm)
	if resp.Items == nil {
		resp.Items = []RequestAnswerItem{}
	}
	return &resp
}

func FromRequestViews(rms []*queries.RequestView) []*ItemRequestResponse {
	resps := make([]*ItemRequestResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromRequestView(rm)
	}
	return resps
}
