package commands

import (
	"context"
	"strings"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrEmptyRequestDescription = errs.New("request description cannot be empty")

type RequestCommands interface {
	// CreateRequest records a wish for an item other users may answer by
	// listing one.
	CreateRequest(ctx context.Context, requesterID uuid.UUID, description string) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	requestRepo RequestRepository
	userRepo    UserRepository
}

func NewRequestCommands(requestRepo RequestRepository, userRepo UserRepository) RequestCommands {
	return &requestCommandsImpl{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

func (c *requestCommandsImpl) CreateRequest(
	ctx context.Context,
	requesterID uuid.UUID,
	description string,
) (*queries.RequestView, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errs.Mark(ErrEmptyRequestDescription, errs.ErrDomainValidation)
	}

	requester, err := c.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.requestRepo.Create(ctx, requester.ID(), description)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
