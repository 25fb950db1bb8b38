package components

import (
	"log/slog"

	"lesson-booking/internal/infra/memstore"
	"lesson-booking/internal/infra/pgq"
	"lesson-booking/internal/infra/readstore"
	"lesson-booking/internal/infra/uow"
	"lesson-booking/internal/pkg/config"
	"lesson-booking/internal/usecase/queries"
	"lesson-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PoolFactory opens the Postgres pool; it is called only when the postgres driver is selected.
type PoolFactory func(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error)

type Persistence struct {
	fx.Out

	UnitOfWork  shared.UnitOfWork
	Outbox      shared.NotificationOutbox
	LessonReads queries.LessonReadStore
	OrderReads  queries.OrderReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, openPool PoolFactory) (Persistence, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		slog.Info("using in-memory store")
		return newMemoryPersistence(memstore.New()), nil
	default:
		pool, err := openPool(lc, cfg)
		if err != nil {
			return Persistence{}, err
		}
		slog.Info("using postgres store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
		return newPostgresPersistence(pool), nil
	}
}

func newMemoryPersistence(store *memstore.Store) Persistence {
	return Persistence{
		UnitOfWork:  store,
		Outbox:      store,
		LessonReads: store,
		OrderReads:  store,
	}
}

func newPostgresPersistence(pool *pgxpool.Pool) Persistence {
	q := pgq.New()
	pgUoW := uow.NewPostgresUoW(pool, q)
	return Persistence{
		UnitOfWork:  pgUoW,
		Outbox:      uow.NewPostgresOutbox(pgUoW),
		LessonReads: readstore.NewLessonReadStore(q, pool),
		OrderReads:  readstore.NewOrderReadStore(q, pool),
	}
}
