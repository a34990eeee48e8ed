package response

import (
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromUserViews(rms []*queries.UserView) []*UserResponse {
	resps := make([]*UserResponse, len(rms))
	for i, rm := range rms {
		resps[i] = FromUserView(rm)
	}
	return resps
}
