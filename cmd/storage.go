package cmd

import (
	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/adapters/out/postgres"
	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/ports"
)

// Storage is what the composition root needs from a store driver.
type Storage struct {
	UnitOfWork ports.UnitOfWorkFactory
	Dishes     queries.DishReader
	Orders     queries.OrderReader
	Close      func() error
}

// NewStorage opens the store selected by cfg.StoreDriver.
func NewStorage(cfg Config) (Storage, error) {
	if cfg.StoreDriver == StorePostgres {
		return NewPostgresStorage(cfg)
	}
	return NewMemoryStorage(), nil
}

func NewMemoryStorage() Storage {
	store := memory.NewStore()
	return Storage{
		UnitOfWork: memory.NewUnitOfWorkFactory(store),
		Dishes:     memory.NewDishReader(store),
		Orders:     memory.NewOrderReader(store),
		Close:      func() error { return nil },
	}
}

// NewPostgresStorage connects and migrates the schema.
func NewPostgresStorage(cfg Config) (Storage, error) {
	db, err := postgres.Open(cfg.Connection().DSN())
	if err != nil {
		return Storage{}, err
	}

	if err = postgres.Migrate(db); err != nil {
		return Storage{}, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return Storage{}, err
	}

	return Storage{
		UnitOfWork: postgres.NewGormUnitOfWorkFactory(db),
		Dishes:     dishrepo.NewGormDishRepository(db),
		Orders:     orderrepo.NewGormOrderRepository(db),
		Close:      sqlDB.Close,
	}, nil
}
