//go:build unit

package commands_test

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*booking.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockBookingRepo) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*queries.BookingView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) HasCompletedBookingBy(ctx context.Context, userID, itemID uuid.UUID, before time.Time) (bool, error) {
	args := m.Called(ctx, userID, itemID, before)
	return args.Bool(0), args.Error(1)
}

type mockItemRepo struct {
	mock.Mock
}

func (m *mockItemRepo) Create(ctx context.Context, i *item.Item) (uuid.UUID, error) {
	args := m.Called(ctx, i)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if i, ok := args.Get(0).(*item.Item); ok {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Update(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *mockItemRepo) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*queries.ItemView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepo) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*queries.UserView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	args := m.Called(ctx, itemID, authorID, text)
	if v, ok := args.Get(0).(*queries.CommentView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) Create(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error) {
	args := m.Called(ctx, requesterID, description)
	if v, ok := args.Get(0).(*queries.RequestView); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
