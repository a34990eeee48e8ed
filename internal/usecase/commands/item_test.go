//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemCommandsFixture struct {
	itemRepo    *mockItemRepo
	userRepo    *mockUserRepo
	bookingRepo *mockBookingRepo
	commentRepo *mockCommentRepo
	sut         commands.ItemCommands
}

func newItemCommandsFixture() *itemCommandsFixture {
	f := &itemCommandsFixture{
		itemRepo:    new(mockItemRepo),
		userRepo:    new(mockUserRepo),
		bookingRepo: new(mockBookingRepo),
		commentRepo: new(mockCommentRepo),
	}
	f.sut = commands.NewItemCommands(f.itemRepo, f.userRepo, f.bookingRepo, f.commentRepo, clock.NewMockClock(testNow))
	return f
}

func strPtr(s string) *string { return &s }

func TestCreateItem(t *testing.T) {
	ownerID := uuid.New()
	owner := user.ReconstructUser(ownerID, "Bob", "bob@example.com")
	params := commands.CreateItemParams{Name: "Drill", Description: "Cordless drill", Available: true}

	t.Run("creates and returns the view", func(t *testing.T) {
		f := newItemCommandsFixture()
		itemID := uuid.New()
		view := &queries.ItemView{ID: itemID, OwnerID: ownerID, Name: "Drill"}

		f.userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil)
		f.itemRepo.On("Create", mock.Anything, mock.MatchedBy(func(i *item.Item) bool {
			return i.OwnerID() == ownerID && i.Name() == "Drill" && i.Available()
		})).Return(itemID, nil)
		f.itemRepo.On("FindViewByID", mock.Anything, itemID).Return(view, nil)

		got, err := f.sut.CreateItem(context.Background(), ownerID, params)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("unknown owner", func(t *testing.T) {
		f := newItemCommandsFixture()
		f.userRepo.On("FindByID", mock.Anything, ownerID).Return(nil, notFoundErr("user not found"))

		_, err := f.sut.CreateItem(context.Background(), ownerID, params)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		f := newItemCommandsFixture()
		f.userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil)

		bad := params
		bad.Name = "  "
		_, err := f.sut.CreateItem(context.Background(), ownerID, bad)
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("dangling request reference", func(t *testing.T) {
		f := newItemCommandsFixture()
		requestID := uuid.New()
		withRequest := params
		withRequest.RequestID = &requestID

		fkErr := infra.WrapRepoErr("request missing", errs.New("fk violation"), infra.KindForeignKeyViolated)
		f.userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil)
		f.itemRepo.On("Create", mock.Anything, mock.Anything).Return(uuid.Nil, fkErr)

		_, err := f.sut.CreateItem(context.Background(), ownerID, withRequest)
		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}

func TestPatchItem(t *testing.T) {
	ownerID := uuid.New()
	itemID := uuid.New()

	storedItem := func() *item.Item {
		return item.ReconstructItem(itemID, ownerID, "Drill", "Cordless drill", true, nil)
	}

	t.Run("owner patches the item", func(t *testing.T) {
		f := newItemCommandsFixture()
		view := &queries.ItemView{ID: itemID, OwnerID: ownerID, Name: "Hammer"}

		f.itemRepo.On("FindByID", mock.Anything, itemID).Return(storedItem(), nil)
		f.itemRepo.On("Update", mock.Anything, mock.MatchedBy(func(i *item.Item) bool {
			return i.Name() == "Hammer"
		})).Return(nil)
		f.itemRepo.On("FindViewByID", mock.Anything, itemID).Return(view, nil)

		got, err := f.sut.PatchItem(context.Background(), ownerID, itemID, commands.PatchItemParams{Name: strPtr("Hammer")})
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("non-owner patch reads as missing item", func(t *testing.T) {
		f := newItemCommandsFixture()
		f.itemRepo.On("FindByID", mock.Anything, itemID).Return(storedItem(), nil)

		_, err := f.sut.PatchItem(context.Background(), uuid.New(), itemID, commands.PatchItemParams{Name: strPtr("Hammer")})
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
		f.itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemCommandsFixture()
		f.itemRepo.On("FindByID", mock.Anything, itemID).Return(nil, notFoundErr("item not found"))

		_, err := f.sut.PatchItem(context.Background(), ownerID, itemID, commands.PatchItemParams{})
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}

func TestAddComment(t *testing.T) {
	ownerID := uuid.New()
	authorID := uuid.New()
	itemID := uuid.New()

	author := user.ReconstructUser(authorID, "Alice", "alice@example.com")
	storedItem := func() *item.Item {
		return item.ReconstructItem(itemID, ownerID, "Drill", "Cordless drill", true, nil)
	}

	t.Run("past booker comments", func(t *testing.T) {
		f := newItemCommandsFixture()
		view := &queries.CommentView{ID: uuid.New(), ItemID: itemID, Text: "worked great", AuthorName: "Alice"}

		f.userRepo.On("FindByID", mock.Anything, authorID).Return(author, nil)
		f.itemRepo.On("FindByID", mock.Anything, itemID).Return(storedItem(), nil)
		f.bookingRepo.On("HasCompletedBookingBy", mock.Anything, authorID, itemID, testNow).Return(true, nil)
		f.commentRepo.On("Create", mock.Anything, itemID, authorID, "worked great").Return(view, nil)

		got, err := f.sut.AddComment(context.Background(), authorID, itemID, "  worked great  ")
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("blank text is rejected before any lookup", func(t *testing.T) {
		f := newItemCommandsFixture()
		_, err := f.sut.AddComment(context.Background(), authorID, itemID, "   ")
		assert.ErrorIs(t, err, errs.ErrEmptyComment)
		f.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("no completed booking", func(t *testing.T) {
		f := newItemCommandsFixture()
		f.userRepo.On("FindByID", mock.Anything, authorID).Return(author, nil)
		f.itemRepo.On("FindByID", mock.Anything, itemID).Return(storedItem(), nil)
		f.bookingRepo.On("HasCompletedBookingBy", mock.Anything, authorID, itemID, testNow).Return(false, nil)

		_, err := f.sut.AddComment(context.Background(), authorID, itemID, "nice")
		assert.ErrorIs(t, err, errs.ErrCommentNotAllowed)
		f.commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner cannot comment on own item", func(t *testing.T) {
		f := newItemCommandsFixture()
		owner := user.ReconstructUser(ownerID, "Bob", "bob@example.com")

		f.userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil)
		f.itemRepo.On("FindByID", mock.Anything, itemID).Return(storedItem(), nil)
		f.bookingRepo.On("HasCompletedBookingBy", mock.Anything, ownerID, itemID, testNow).Return(true, nil)

		_, err := f.sut.AddComment(context.Background(), ownerID, itemID, "nice")
		assert.ErrorIs(t, err, errs.ErrCommentNotAllowed)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemCommandsFixture()
		f.userRepo.On("FindByID", mock.Anything, authorID).Return(author, nil)
		f.itemRepo.On("FindByID", mock.Anything, itemID).Return(nil, notFoundErr("item not found"))

		_, err := f.sut.AddComment(context.Background(), authorID, itemID, "nice")
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}
