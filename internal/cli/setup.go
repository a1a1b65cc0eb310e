package cli

import (
	"context"
	"fmt"

	"github.com/keanyaoha/greenprint/internal/catalog"
	"github.com/keanyaoha/greenprint/internal/config"
	"github.com/keanyaoha/greenprint/internal/footprint"
	"github.com/keanyaoha/greenprint/internal/logging"
	"github.com/keanyaoha/greenprint/internal/refdata"
)

type configKey struct{}

func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// buildEngine loads the reference store (embedded or configured), the
// activity catalog, and the footprint engine. A load failure is fatal
// for the command: nothing downstream may compute without the store.
func buildEngine(ctx context.Context) (*refdata.Store, *catalog.Catalog, *footprint.Engine, error) {
	cfg := configFromContext(ctx)
	log := logging.FromContext(ctx)

	var (
		store *refdata.Store
		err   error
	)
	if cfg.UsesEmbeddedData() {
		store, err = refdata.Default()
	} else {
		store, err = refdata.Open(cfg.Data.Factors, cfg.Data.Baselines)
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading reference data: %w", err)
	}

	cat, err := catalog.New()
	if err != nil {
		return nil, nil, nil, err
	}

	log.Debug().
		Str("component", "cli").
		Int("countries", len(store.Countries())).
		Int("activities", len(cat.Activities())).
		Bool("embedded_data", cfg.UsesEmbeddedData()).
		Msg("reference data loaded")

	return store, cat, footprint.NewEngine(store, cat), nil
}
