package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetUser(ctx context.Context, id uuid.UUID) (*UserView, error)
	ListUsers(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	userStore UserReadStore
}

func NewUserQueries(userStore UserReadStore) UserQueries {
	return &userQueriesImpl{userStore: userStore}
}

func (q *userQueriesImpl) GetUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.userStore.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *userQueriesImpl) ListUsers(ctx context.Context) ([]*UserView, error) {
	views, err := q.userStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
