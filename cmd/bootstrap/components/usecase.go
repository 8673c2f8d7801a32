package components

import (
	"time"

	"car-rental/internal/domain/rental"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/locale"
	"car-rental/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseRentalModule,
	usecaseCatalogModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		locale.NewBrazilian,
		fx.As(new(rental.CurrencyFormatter)),
		fx.As(new(usecase.DateFormatter)),
	),
	NewTaxPolicy,
	NewRentalLocation,
	fx.Annotate(
		rental.NewDefaultPriceCalculator,
		fx.As(new(rental.PriceCalculator)),
	),
)

var usecaseRentalModule = fx.Module("usecase/rental",
	fx.Provide(
		usecase.NewRentalUseCase,
	),
)

var usecaseCatalogModule = fx.Module("usecase/catalog",
	fx.Provide(
		usecase.NewCatalogQueries,
	),
)

func NewTaxPolicy(cfg config.RentalConfig) (*rental.TaxPolicy, error) {
	return rental.LoadTaxPolicy(cfg.TaxPolicy, cfg.TaxBandsFile)
}

func NewRentalLocation(cfg config.RentalConfig) (*time.Location, error) {
	return cfg.Location()
}
