package components

import (
	"shareit/internal/infra/repository"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewQuerier,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repository.NewItemRepository,
			fx.As(new(commands.ItemRepository)),
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewCommentRepository,
			fx.As(new(commands.CommentRepository)),
			fx.As(new(queries.CommentReadStore)),
		),
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

func NewQuerier(pool *pgxpool.Pool) repository.DB {
	return pool
}
