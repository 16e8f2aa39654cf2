package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-student-registry/internal/config"
	"github.com/MKhiriev/go-student-registry/internal/logger"
)

// MemoryDSN selects the in-memory backend.
const MemoryDSN = "memory"

// Storages groups the server-side repositories.
type Storages struct {
	StudentRepository StudentRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.DB.DSN, applies migrations
// for SQL backends and wires the repositories:
//   - "" or "memory": in-process map;
//   - "postgres://..." or "postgresql://...": PostgreSQL via pgx;
//   - anything else: sqlite file path or "file:" URI.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	dsn := strings.TrimSpace(cfg.DB.DSN)

	var (
		db  *DB
		err error
	)
	switch {
	case dsn == "" || dsn == MemoryDSN:
		logger.Info().Msg("using in-memory storage")
		return &Storages{StudentRepository: NewMemoryStudentRepository()}, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = NewConnectPostgres(ctx, dsn, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	default:
		db, err = NewConnectSQLite(ctx, dsn, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		StudentRepository: NewStudentRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database handle, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
