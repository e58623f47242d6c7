package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/KirkDiggler/pathtracker/internal/config"
	"github.com/KirkDiggler/pathtracker/internal/events"
	"github.com/KirkDiggler/pathtracker/internal/repositories/trackers"
	"github.com/KirkDiggler/pathtracker/internal/services/tracker"
	"github.com/KirkDiggler/pathtracker/internal/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

// Provider holds the tracker and what it was built from
type Provider struct {
	Tracker    tracker.Service
	Repository trackers.Repository
	Bus        *events.Bus

	closers []io.Closer
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Config *config.Config
	// Repository overrides the configured storage backends
	Repository trackers.Repository
	// Bus receives tracker events. A new bus is created if nil.
	Bus *events.Bus
	// TracerProvider records storage spans. Uses the global provider if nil.
	TracerProvider trace.TracerProvider
	IDGenerator    uuid.Generator
}

// NewProvider opens storage and loads the tracker saved under the configured key
func NewProvider(ctx context.Context, cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, fmt.Errorf("config is required")
	}

	p := &Provider{
		Repository: cfg.Repository,
		Bus:        cfg.Bus,
	}
	if p.Bus == nil {
		p.Bus = events.NewBus()
	}

	if p.Repository == nil {
		repo, closers, err := OpenRepository(ctx, cfg.Config, cfg.TracerProvider)
		if err != nil {
			return nil, err
		}
		p.Repository = repo
		p.closers = closers
	}

	svc, err := tracker.Load(ctx, &tracker.ServiceConfig{
		Repository:  p.Repository,
		SaveKey:     cfg.Config.Storage.SaveKey,
		Settings:    cfg.Config.Tracker.Settings(),
		Bus:         p.Bus,
		IDGenerator: cfg.IDGenerator,
	})
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	p.Tracker = svc

	return p, nil
}

// Close releases storage connections
func (p *Provider) Close() error {
	var errs []error
	for _, c := range p.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}

// OpenRepository builds the configured primary backend plus any mirrors.
// Every backend is wrapped in a TracedRepository.
func OpenRepository(ctx context.Context, cfg *config.Config, tp trace.TracerProvider) (trackers.Repository, []io.Closer, error) {
	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	primary, closer, err := openBackend(ctx, cfg, cfg.Storage.Backend)
	if err != nil {
		return nil, nil, err
	}
	if closer != nil {
		closers = append(closers, closer)
	}

	var mirrors []trackers.Repository
	for _, b := range cfg.Storage.Mirrors {
		mirror, closer, err := openBackend(ctx, cfg, b)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		if closer != nil {
			closers = append(closers, closer)
		}
		mirrors = append(mirrors, trackers.NewTracedRepository(mirror, string(b), tp))
	}

	var repo trackers.Repository = trackers.NewTracedRepository(primary, string(cfg.Storage.Backend), tp)
	if len(mirrors) > 0 {
		repo = trackers.NewMirrorRepository(repo, mirrors...)
	}

	log.Printf("[STORAGE] Using %s storage with %d mirrors", cfg.Storage.Backend, len(mirrors))
	return repo, closers, nil
}

func openBackend(ctx context.Context, cfg *config.Config, backend config.Backend) (trackers.Repository, io.Closer, error) {
	switch backend {
	case config.BackendMemory:
		return trackers.NewInMemoryRepository(), nil, nil

	case config.BackendFile:
		return trackers.NewFileRepository(&trackers.FileRepoConfig{Dir: cfg.Storage.SaveDir}), nil, nil

	case config.BackendSQLite:
		repo, err := trackers.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return repo, repo, nil

	case config.BackendPostgres:
		repo, err := trackers.OpenPostgres(cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres storage: %w", err)
		}
		return repo, repo, nil

	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		return trackers.NewRedisRepository(&trackers.RedisRepoConfig{
			Client: client,
			TTL:    cfg.Redis.TTL,
		}), client, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
