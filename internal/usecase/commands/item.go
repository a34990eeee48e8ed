package commands

import (
	"context"
	"strings"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateItemParams struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

type PatchItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemCommands interface {
	CreateItem(ctx context.Context, ownerID uuid.UUID, params CreateItemParams) (*queries.ItemView, error)
	PatchItem(ctx context.Context, ownerID, itemID uuid.UUID, params PatchItemParams) (*queries.ItemView, error)
	// AddComment lets a user who completed a booking on the item leave a
	// comment on it.
	AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	itemRepo    ItemRepository
	userRepo    UserRepository
	bookingRepo BookingRepository
	commentRepo CommentRepository
	clock       clock.Clock
}

func NewItemCommands(
	itemRepo ItemRepository,
	userRepo UserRepository,
	bookingRepo BookingRepository,
	commentRepo CommentRepository,
	clock clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		clock:       clock,
	}
}

func (c *itemCommandsImpl) CreateItem(
	ctx context.Context,
	ownerID uuid.UUID,
	params CreateItemParams,
) (*queries.ItemView, error) {
	owner, err := c.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	itemEntity, err := item.NewItem(owner.ID(), params.Name, params.Description, params.Available, params.RequestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	itemID, err := c.itemRepo.Create(ctx, itemEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.itemRepo.FindViewByID(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *itemCommandsImpl) PatchItem(
	ctx context.Context,
	ownerID, itemID uuid.UUID,
	params PatchItemParams,
) (*queries.ItemView, error) {
	itemEntity, err := c.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !itemEntity.IsOwnedBy(ownerID) {
		return nil, errs.ErrItemNotFound
	}

	itemEntity.ApplyPatch(params.Name, params.Description, params.Available)

	if err := c.itemRepo.Update(ctx, itemEntity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.itemRepo.FindViewByID(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *itemCommandsImpl) AddComment(
	ctx context.Context,
	authorID, itemID uuid.UUID,
	text string,
) (*queries.CommentView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrEmptyComment
	}

	author, err := c.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	itemEntity, err := c.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrItemNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	completed, err := c.bookingRepo.HasCompletedBookingBy(ctx, author.ID(), itemEntity.ID(), c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !completed {
		return nil, errs.ErrCommentNotAllowed
	}

	if itemEntity.IsOwnedBy(author.ID()) {
		return nil, errs.ErrCommentNotAllowed
	}

	view, err := c.commentRepo.Create(ctx, itemEntity.ID(), author.ID(), text)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
