package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateUserParams struct {
	Name  string
	Email string
}

type PatchUserParams struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	CreateUser(ctx context.Context, params CreateUserParams) (*queries.UserView, error)
	PatchUser(ctx context.Context, userID uuid.UUID, params PatchUserParams) (*queries.UserView, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userCommandsImpl struct {
	userRepo UserRepository
}

func NewUserCommands(userRepo UserRepository) UserCommands {
	return &userCommandsImpl{userRepo: userRepo}
}

func (c *userCommandsImpl) CreateUser(ctx context.Context, params CreateUserParams) (*queries.UserView, error) {
	userEntity, err := user.NewUser(params.Name, params.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	userID, err := c.userRepo.Create(ctx, userEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.userRepo.FindViewByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *userCommandsImpl) PatchUser(ctx context.Context, userID uuid.UUID, params PatchUserParams) (*queries.UserView, error) {
	userEntity, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := userEntity.ApplyPatch(params.Name, params.Email); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.userRepo.Update(ctx, userEntity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailConflict)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.userRepo.FindViewByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *userCommandsImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := c.userRepo.Delete(ctx, userID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
