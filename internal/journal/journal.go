package journal

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Journal is the session activity log. It lives in an in-memory SQLite
// database and disappears with the process.
type Journal struct {
	db      *sql.DB
	keep    *sql.Conn // holds the shared-cache database open
	session string
}

// MemoryDSN returns a DSN for a private in-memory database named after
// the session, so two journals in one process never share tables.
func MemoryDSN(session string) string {
	return fmt.Sprintf("file:todo-%s?mode=memory&cache=shared&_foreign_keys=ON", session)
}

// Open opens the in-memory journal for a session and runs migrations
func Open(session string) (*Journal, error) {
	if session == "" {
		session = uuid.NewString()
	}

	sqlDB, err := sql.Open("sqlite3", MemoryDSN(session))
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	// The database only exists while some connection to it is open. One
	// connection is pinned for the journal's lifetime; the other serves
	// queries and may be dropped and redialled by the pool.
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	keep, err := sqlDB.Conn(context.Background())
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}

	j := &Journal{db: sqlDB, keep: keep, session: session}
	if err := j.migrate(); err != nil {
		j.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return j, nil
}

// migrate runs the embedded schema migrations
func (j *Journal) migrate() error {
	// goose logs to stdout by default, which would corrupt the TUI
	goose.SetLogger(log.New(io.Discard, "", 0))
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(j.db, "migrations"); err != nil {
		return err
	}
	return nil
}

// Session returns the session id this journal records under
func (j *Journal) Session() string {
	return j.session
}

// Close closes the database, discarding every event
func (j *Journal) Close() error {
	keepErr := j.keep.Close()
	return errors.Join(keepErr, j.db.Close())
}
