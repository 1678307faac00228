// Package session is the thin execution boundary. It hands the SQL text and
// ordered argument list produced by the expression layer to database/sql,
// rebinding placeholders to the dialect's positional style on the way out.
// Connection pooling policy, transactions and result mapping are left to
// the caller.
package session

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver

	"github.com/satishbabariya/sqlkit/dialect"
	"github.com/satishbabariya/sqlkit/internal/debug"
	"github.com/satishbabariya/sqlkit/predicate"
)

// Session pairs an open database handle with the dialect its SQL is
// rendered for.
type Session struct {
	db *sql.DB
	d  *dialect.Dialect
}

// Open connects to the database for the given provider and returns a
// session using the provider's dialect.
func Open(provider, dsn string) (*Session, error) {
	driverName := driverFor(provider)
	if driverName == "" {
		return nil, fmt.Errorf("session: unsupported provider %q", provider)
	}
	d, err := dialect.ForProvider(provider)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("session: open %s: %w", provider, err)
	}
	return &Session{db: db, d: d}, nil
}

// NewFromDB wraps an existing database handle. Useful for tests and for
// callers that manage their own pool.
func NewFromDB(db *sql.DB, d *dialect.Dialect) *Session {
	return &Session{db: db, d: d}
}

// driverFor maps provider names to registered database/sql driver names.
func driverFor(provider string) string {
	switch provider {
	case "postgresql", "postgres":
		return "postgres"
	case "mysql":
		return "mysql"
	case "sqlite":
		return "sqlite3"
	default:
		return ""
	}
}

// Dialect returns the session's dialect.
func (s *Session) Dialect() *dialect.Dialect { return s.d }

// DB returns the underlying database handle.
func (s *Session) DB() *sql.DB { return s.db }

// Ping verifies the connection.
func (s *Session) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Exec executes an expression's SQL with its arguments.
func (s *Session) Exec(ctx context.Context, expr predicate.Expression) (sql.Result, error) {
	query := s.d.Rebind(expr.SQL())
	debug.Debug("exec", "sql", query, "args", len(expr.Args()))
	res, err := s.db.ExecContext(ctx, query, expr.Args()...)
	if err != nil {
		return nil, fmt.Errorf("session: exec: %w", err)
	}
	return res, nil
}

// Query runs an expression's SQL with its arguments and returns the rows.
func (s *Session) Query(ctx context.Context, expr predicate.Expression) (*sql.Rows, error) {
	query := s.d.Rebind(expr.SQL())
	debug.Debug("query", "sql", query, "args", len(expr.Args()))
	rows, err := s.db.QueryContext(ctx, query, expr.Args()...)
	if err != nil {
		return nil, fmt.Errorf("session: query: %w", err)
	}
	return rows, nil
}

// Close closes the underlying database handle.
func (s *Session) Close() error {
	return s.db.Close()
}
