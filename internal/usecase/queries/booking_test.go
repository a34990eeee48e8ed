//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errs.New("no rows"), infra.KindNotFound)
}

func knownUser(id uuid.UUID) *user.User {
	return user.ReconstructUser(id, "Alice", "alice@example.com")
}

func reconstructedBooking(ownerID, bookerID uuid.UUID) *booking.Booking {
	period := booking.ReconstructPeriod(testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), ownerID, bookerID,
		period, booking.StatusWaiting, testNow,
	)
}

func TestBookingQueriesGetForParticipant(t *testing.T) {
	ownerID := uuid.New()
	bookerID := uuid.New()
	strangerID := uuid.New()

	newSUT := func() (*mockBookingReadStore, *mockUserReadStore, queries.BookingQueries) {
		bookingStore := new(mockBookingReadStore)
		userStore := new(mockUserReadStore)
		sut := queries.NewBookingQueries(bookingStore, userStore, clock.NewMockClock(testNow))
		return bookingStore, userStore, sut
	}

	t.Run("booker sees the booking", func(t *testing.T) {
		bookingStore, userStore, sut := newSUT()
		b := reconstructedBooking(ownerID, bookerID)
		view := &queries.BookingView{ID: b.ID(), Status: "WAITING"}

		userStore.On("FindByID", mock.Anything, bookerID).Return(knownUser(bookerID), nil)
		bookingStore.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		bookingStore.On("FindViewByID", mock.Anything, b.ID()).Return(view, nil)

		got, err := sut.GetForParticipant(context.Background(), bookerID, b.ID())
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("item owner sees the booking", func(t *testing.T) {
		bookingStore, userStore, sut := newSUT()
		b := reconstructedBooking(ownerID, bookerID)
		view := &queries.BookingView{ID: b.ID(), Status: "WAITING"}

		userStore.On("FindByID", mock.Anything, ownerID).Return(knownUser(ownerID), nil)
		bookingStore.On("FindByID", mock.Anything, b.ID()).Return(b, nil)
		bookingStore.On("FindViewByID", mock.Anything, b.ID()).Return(view, nil)

		got, err := sut.GetForParticipant(context.Background(), ownerID, b.ID())
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("stranger gets not found", func(t *testing.T) {
		bookingStore, userStore, sut := newSUT()
		b := reconstructedBooking(ownerID, bookerID)

		userStore.On("FindByID", mock.Anything, strangerID).Return(knownUser(strangerID), nil)
		bookingStore.On("FindByID", mock.Anything, b.ID()).Return(b, nil)

		_, err := sut.GetForParticipant(context.Background(), strangerID, b.ID())
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
		bookingStore.AssertNotCalled(t, "FindViewByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown requester gets user not found", func(t *testing.T) {
		_, userStore, sut := newSUT()
		userStore.On("FindByID", mock.Anything, strangerID).Return(nil, notFoundErr("user not found"))

		_, err := sut.GetForParticipant(context.Background(), strangerID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("missing booking gets booking not found", func(t *testing.T) {
		bookingStore, userStore, sut := newSUT()
		bookingID := uuid.New()

		userStore.On("FindByID", mock.Anything, bookerID).Return(knownUser(bookerID), nil)
		bookingStore.On("FindByID", mock.Anything, bookingID).Return(nil, notFoundErr("booking not found"))

		_, err := sut.GetForParticipant(context.Background(), bookerID, bookingID)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestBookingQueriesListings(t *testing.T) {
	userID := uuid.New()

	newSUT := func() (*mockBookingReadStore, *mockUserReadStore, queries.BookingQueries) {
		bookingStore := new(mockBookingReadStore)
		userStore := new(mockUserReadStore)
		sut := queries.NewBookingQueries(bookingStore, userStore, clock.NewMockClock(testNow))
		return bookingStore, userStore, sut
	}

	t.Run("booker listing passes classification page and now through", func(t *testing.T) {
		bookingStore, userStore, sut := newSUT()
		views := []*queries.BookingView{{ID: uuid.New()}}
		wantPage := queries.Page{Number: 2, Size: 10}

		userStore.On("FindByID", mock.Anything, userID).Return(knownUser(userID), nil)
		bookingStore.On("FindAllByBooker", mock.Anything, userID, booking.ClassificationFuture, testNow, wantPage).
			Return(views, nil)

		got, err := sut.ListForBooker(context.Background(), userID, "FUTURE", 25, 10)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("owner listing queries the owner scope", func(t *testing.T) {
		bookingStore, userStore, sut := newSUT()
		views := []*queries.BookingView{}

		userStore.On("FindByID", mock.Anything, userID).Return(knownUser(userID), nil)
		bookingStore.On("FindAllByOwner", mock.Anything, userID, booking.ClassificationAll, testNow, queries.Page{Number: 0, Size: 10}).
			Return(views, nil)

		got, err := sut.ListForOwner(context.Background(), userID, "ALL", 0, 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown state token is rejected before querying", func(t *testing.T) {
		bookingStore, userStore, sut := newSUT()
		userStore.On("FindByID", mock.Anything, userID).Return(knownUser(userID), nil)

		_, err := sut.ListForBooker(context.Background(), userID, "SOMETIME", 0, 10)
		assert.ErrorIs(t, err, errs.ErrUnknownState)
		bookingStore.AssertNotCalled(t, "FindAllByBooker",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lower-case state token is rejected", func(t *testing.T) {
		_, userStore, sut := newSUT()
		userStore.On("FindByID", mock.Anything, userID).Return(knownUser(userID), nil)

		_, err := sut.ListForOwner(context.Background(), userID, "all", 0, 10)
		assert.ErrorIs(t, err, errs.ErrUnknownState)
	})

	t.Run("invalid paging is rejected before querying", func(t *testing.T) {
		bookingStore, userStore, sut := newSUT()
		userStore.On("FindByID", mock.Anything, userID).Return(knownUser(userID), nil)

		_, err := sut.ListForBooker(context.Background(), userID, "ALL", -1, 10)
		assert.ErrorIs(t, err, queries.ErrInvalidPage)

		_, err = sut.ListForBooker(context.Background(), userID, "ALL", 0, 0)
		assert.ErrorIs(t, err, queries.ErrInvalidPage)

		bookingStore.AssertNotCalled(t, "FindAllByBooker",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user is rejected before state parsing", func(t *testing.T) {
		_, userStore, sut := newSUT()
		userStore.On("FindByID", mock.Anything, userID).Return(nil, notFoundErr("user not found"))

		_, err := sut.ListForBooker(context.Background(), userID, "SOMETIME", 0, 10)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
