//go:build unit

package queries_test

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/user"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockBookingReadStore struct {
	mock.Mock
}

func (m *mockBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*booking.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*queries.BookingView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReadStore) FindAllByBooker(ctx context.Context, bookerID uuid.UUID, cls booking.Classification, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	args := m.Called(ctx, bookerID, cls, now, page)
	if v, ok := args.Get(0).([]*queries.BookingView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReadStore) FindAllByOwner(ctx context.Context, ownerID uuid.UUID, cls booking.Classification, now time.Time, page queries.Page) ([]*queries.BookingView, error) {
	args := m.Called(ctx, ownerID, cls, now, page)
	if v, ok := args.Get(0).([]*queries.BookingView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingReadStore) FindLastAndNextApproved(ctx context.Context, itemID, ownerID uuid.UUID, now time.Time) (*queries.BookingRef, *queries.BookingRef, error) {
	args := m.Called(ctx, itemID, ownerID, now)
	last, _ := args.Get(0).(*queries.BookingRef)
	next, _ := args.Get(1).(*queries.BookingRef)
	return last, next, args.Error(2)
}

func (m *mockBookingReadStore) FindApprovedForItems(ctx context.Context, itemIDs []uuid.UUID) ([]queries.ApprovedBooking, error) {
	args := m.Called(ctx, itemIDs)
	if v, ok := args.Get(0).([]queries.ApprovedBooking); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockItemReadStore struct {
	mock.Mock
}

func (m *mockItemReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*queries.ItemView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemReadStore) FindAllByOwner(ctx context.Context, ownerID uuid.UUID, page queries.Page) ([]*queries.ItemView, error) {
	args := m.Called(ctx, ownerID, page)
	if v, ok := args.Get(0).([]*queries.ItemView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemReadStore) Search(ctx context.Context, text string, page queries.Page) ([]*queries.ItemView, error) {
	args := m.Called(ctx, text, page)
	if v, ok := args.Get(0).([]*queries.ItemView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemReadStore) FindAnswersForRequests(ctx context.Context, requestIDs []uuid.UUID) ([]queries.RequestAnswerView, error) {
	args := m.Called(ctx, requestIDs)
	if v, ok := args.Get(0).([]queries.RequestAnswerView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserReadStore struct {
	mock.Mock
}

func (m *mockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*queries.UserView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]*queries.UserView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCommentReadStore struct {
	mock.Mock
}

func (m *mockCommentReadStore) FindByItemID(ctx context.Context, itemID uuid.UUID) ([]queries.CommentView, error) {
	args := m.Called(ctx, itemID)
	if v, ok := args.Get(0).([]queries.CommentView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentReadStore) FindByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]queries.CommentView, error) {
	args := m.Called(ctx, itemIDs)
	if v, ok := args.Get(0).([]queries.CommentView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRequestReadStore struct {
	mock.Mock
}

func (m *mockRequestReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*queries.RequestView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestReadStore) FindAllByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	args := m.Called(ctx, requesterID)
	if v, ok := args.Get(0).([]*queries.RequestView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestReadStore) FindAllOthers(ctx context.Context, userID uuid.UUID, page queries.Page) ([]*queries.RequestView, error) {
	args := m.Called(ctx, userID, page)
	if v, ok := args.Get(0).([]*queries.RequestView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
