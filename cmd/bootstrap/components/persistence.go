package components

import (
	"carflow/internal/infra/db"
	"carflow/internal/infra/readstore"
	"carflow/internal/infra/repository"
	"carflow/internal/infra/uow"
	"carflow/internal/notify"
	"carflow/internal/usecase/queries"
	"carflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Read side for queries (on the pool, outside transactions)
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewInquiryReadStore,
			fx.As(new(queries.InquiryViewRepo)),
		),
		// Outbox for the SMS dispatcher
		fx.Annotate(
			repository.NewNotificationOutbox,
			fx.As(new(notify.Outbox)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
