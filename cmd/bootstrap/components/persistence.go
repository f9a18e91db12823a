package components

import (
	"storefront-partners/internal/infra/readstore"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/infra/uow"
	"storefront-partners/internal/usecase/queries"
	"storefront-partners/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Partner
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PartnerViewQueries)),
		),
		fx.Annotate(
			readstore.NewPartnerReadStore,
			fx.As(new(queries.PartnerReadStore)),
		),
	),
)

// Write repositories are bound per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
