package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestQueries interface {
	// GetRequest returns one item request with the items offered against it.
	GetRequest(ctx context.Context, requesterID, requestID uuid.UUID) (*RequestView, error)
	// ListOwnRequests returns the requester's own requests, newest first.
	ListOwnRequests(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	// ListOtherRequests pages through requests created by everyone else.
	ListOtherRequests(ctx context.Context, requesterID uuid.UUID, from, size int) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requestStore RequestReadStore
	itemStore    ItemReadStore
	userStore    UserReadStore
}

func NewRequestQueries(requestStore RequestReadStore, itemStore ItemReadStore, userStore UserReadStore) RequestQueries {
	return &requestQueriesImpl{
		requestStore: requestStore,
		itemStore:    itemStore,
		userStore:    userStore,
	}
}

func (q *requestQueriesImpl) GetRequest(ctx context.Context, requesterID, requestID uuid.UUID) (*RequestView, error) {
	if err := q.resolveUser(ctx, requesterID); err != nil {
		return nil, err
	}

	view, err := q.requestStore.FindViewByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := q.attachAnswers(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwnRequests(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	if err := q.resolveUser(ctx, requesterID); err != nil {
		return nil, err
	}

	views, err := q.requestStore.FindAllByRequester(ctx, requesterID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := q.attachAnswers(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListOtherRequests(ctx context.Context, requesterID uuid.UUID, from, size int) ([]*RequestView, error) {
	if err := q.resolveUser(ctx, requesterID); err != nil {
		return nil, err
	}

	page, err := NewPage(from, size)
	if err != nil {
		return nil, err
	}

	views, err := q.requestStore.FindAllOthers(ctx, requesterID, page)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := q.attachAnswers(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// attachAnswers loads the items offered against the given requests with a
// single batch query and groups them onto their requests.
func (q *requestQueriesImpl) attachAnswers(ctx context.Context, views []*RequestView) error {
	if len(views) == 0 {
		return nil
	}

	requestIDs := make([]uuid.UUID, len(views))
	for i, v := range views {
		requestIDs[i] = v.ID
	}

	answers, err := q.itemStore.FindAnswersForRequests(ctx, requestIDs)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	grouped := make(map[uuid.UUID][]RequestAnswerView, len(views))
	for _, a := range answers {
		grouped[a.RequestID] = append(grouped[a.RequestID], a)
	}
	for _, v := range views {
		if group, ok := grouped[v.ID]; ok {
			v.Items = group
		} else {
			v.Items = []RequestAnswerView{}
		}
	}
	return nil
}

func (q *requestQueriesImpl) resolveUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := q.userStore.FindByID(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
