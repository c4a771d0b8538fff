// Package storage opens the kv.Store selected by configuration and brings
// its schema up to date.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/Roop3005/path-darshak/internal/filex"
	"github.com/Roop3005/path-darshak/internal/logging"
	"github.com/Roop3005/path-darshak/internal/migrations"
	"github.com/Roop3005/path-darshak/internal/repositories/kv"

	_ "modernc.org/sqlite"
)

const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

// Options selects the driver and the file it keeps data in. Path is
// ignored by the memory driver; for sqlite, ":memory:" keeps the database
// in RAM.
type Options struct {
	Driver      string
	Path        string
	LockTimeout time.Duration
}

// Open returns a ready-to-use store for opts.
func Open(ctx context.Context, opts Options, log logging.Logger) (kv.Store, error) {
	switch opts.Driver {
	case DriverMemory:
		log.Debug(ctx, "using in-memory store")
		return kv.NewMemoryStore(), nil

	case DriverBolt:
		path, err := filex.EnsureParentDir(opts.Path)
		if err != nil {
			return nil, err
		}
		timeout := opts.LockTimeout
		if timeout <= 0 {
			timeout = time.Second
		}
		s, err := kv.OpenBolt(path, timeout)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "bolt store opened", "path", path)
		return s, nil

	case "", DriverSQLite:
		db, err := openSQLite(opts.Path)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(ctx, db, log); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info(ctx, "sqlite store opened", "path", opts.Path)
		return kv.NewSQLiteStore(db), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}

func openSQLite(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		abs, err := filex.EnsureParentDir(path)
		if err != nil {
			return nil, err
		}
		dsn = "file:" + abs + "?_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection: Atomic relies on it for serialization, and every
	// connection to ":memory:" would otherwise see its own database.
	db.SetMaxOpenConns(1)
	return db, nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB, log logging.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{ctx: ctx, log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// gooseLogger routes goose output into the app logger.
type gooseLogger struct {
	ctx context.Context
	log logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Debug(g.ctx, fmt.Sprintf(format, v...), "component", "goose")
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	g.log.Error(g.ctx, msg, "component", "goose")
	panic(msg)
}
