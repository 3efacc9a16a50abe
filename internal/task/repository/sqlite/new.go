package sqlite

import (
	"fmt"

	"taskmate/internal/task/repository"
	"taskmate/pkg/log"
)

type implRepository struct {
	conn *Conn
	l    log.Logger
}

// New creates a SQLite-backed Repository for the task domain.
func New(conn *Conn, l log.Logger) repository.Repository {
	if conn == nil {
		panic("task/repository/sqlite: conn is required")
	}
	return &implRepository{conn: conn, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}

// Status reports the connection manager's health pair.
func (r *implRepository) Status() repository.Status {
	return repository.Status{
		Initialized: r.conn.Initialized(),
		Err:         r.conn.Err(),
	}
}
