package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
	"github.com/polkiloo/storeadmin/internal/storage/postgres"
	"github.com/polkiloo/storeadmin/internal/storage/sqlite"
)

// Backend is a repository factory with an owned connection lifecycle.
type Backend interface {
	repository.Factory
	HealthCheck(ctx context.Context) error
	Close() error
}

var (
	openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
		s, err := postgres.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	openSQLite = func(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
		s, err := sqlite.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
)

// Open selects the backend from the DSN scheme: postgres:// and postgresql://
// use PostgreSQL, sqlite:// and file: use SQLite.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		logger.Info("opening storage", slog.String("backend", "postgres"))
		return openPostgres(ctx, dsn, logger)
	case strings.HasPrefix(dsn, "sqlite://"):
		logger.Info("opening storage", slog.String("backend", "sqlite"))
		return openSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), logger)
	case strings.HasPrefix(dsn, "file:"):
		logger.Info("opening storage", slog.String("backend", "sqlite"))
		return openSQLite(ctx, dsn, logger)
	default:
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrUnsupportedDatabase, redact(dsn))
	}
}

func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if len(dsn) > 8 {
		return dsn[:8] + "..."
	}
	return dsn
}
