package response

import (
	"time"

	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *uuid.UUID        `json:"requestId,omitempty"`
	LastBooking *BookingRef       `json:"lastBooking,omitempty"`
	NextBooking *BookingRef       `json:"nextBooking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

type BookingRef struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func FromItemView(rm *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	_ = copier.Copy(&resp, rm)
	if resp.Comments == nil {
		resp.Comments = []CommentResponse{}
	}
	return &resp
}

func FromItemViews(rms []*queries.ItemView) []*ItemResponse {
	resps := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromItemView(rm)
	}
	return resps
}

func FromCommentView(rm *queries.CommentView) *CommentResponse {
	var resp CommentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
