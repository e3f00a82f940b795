package main

import (
	"context"

	"github.com/dsctl/dsctl/cache"
	"github.com/dsctl/dsctl/config"
	"github.com/dsctl/dsctl/providers"
	_ "github.com/dsctl/dsctl/providers/oci" // Register OCI directory
	"github.com/dsctl/dsctl/resolver"
	"github.com/dsctl/dsctl/telemetry"
)

// app wires config, logging, telemetry, directory, cache and resolver
// for one command invocation.
type app struct {
	cfg      *config.Config
	logger   *telemetry.Logger
	tel      *telemetry.Provider
	dir      providers.Directory
	listings *cache.Listings
	resolver *resolver.Resolver
}

func loadConfig() (*config.Config, *telemetry.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	// Flags override file and environment. The compartment flag is not
	// folded in here: it is the explicit per-command argument, while
	// cfg.Compartment stays the memoized default.
	if flagProfile != "" {
		cfg.Profile = flagProfile
	}
	if flagRegion != "" {
		cfg.Region = flagRegion
	}
	if flagOCIConfig != "" {
		cfg.OCIConfigPath = flagOCIConfig
	}

	level := cfg.LogLevel
	if flagDebug {
		level = "debug"
	}
	return cfg, telemetry.NewLogger(level), nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	// Telemetry failure never blocks the command
	tel, err := telemetry.NewProvider(ctx, cfg.OTEL)
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry disabled")
		tel = nil
	}

	dir, err := providers.Get(ctx, "oci", providers.Config{
		ConfigPath:  cfg.OCIConfigPath,
		Profile:     cfg.Profile,
		Region:      cfg.Region,
		TenancyOCID: cfg.Tenancy,
	})
	if err != nil {
		return nil, err
	}

	listings := cache.New(cfg.CacheDir, cfg.TTL(), logger, tel)

	return &app{
		cfg:      cfg,
		logger:   logger,
		tel:      tel,
		dir:      dir,
		listings: listings,
		resolver: resolver.New(dir, listings, cfg.Compartment, logger, tel),
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.tel.Shutdown(ctx); err != nil {
		a.logger.Debug().Err(err).Msg("telemetry shutdown failed")
	}
}
