package components

import (
	"context"
	"log/slog"

	"car-rental/internal/infra/repository"
	"car-rental/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCarRepository,
			fx.As(fx.Self()),
			fx.As(new(usecase.CarRepository)),
		),
		fx.Annotate(
			repository.NewCategoryRepository,
			fx.As(fx.Self()),
			fx.As(new(usecase.CategoryRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(fx.Self()),
			fx.As(new(usecase.CustomerRepository)),
		),
	),
	fx.Invoke(warmUp),
)

// loader is the part of a repository the start-up warm-up needs.
type loader interface {
	Collection() string
	EnsureLoaded(ctx context.Context) error
}

// warmUp loads every repository once at start so the first request finds
// them ready. Unreadable collections are only logged; the server starts
// regardless and those repositories keep answering with their load error.
func warmUp(
	lc fx.Lifecycle,
	logger *slog.Logger,
	cars *repository.CarRepository,
	categories *repository.CategoryRepository,
	customers *repository.CustomerRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, repo := range []loader{cars, categories, customers} {
				if err := repo.EnsureLoaded(ctx); err != nil {
					logger.Warn("collection not readable", "collection", repo.Collection(), "error", err)
				}
			}
			return nil
		},
	})
}
