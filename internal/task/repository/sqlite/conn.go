package sqlite

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"taskmate/pkg/log"
)

// connState tracks the connection manager's lifecycle.
type connState int

const (
	stateUninitialized connState = iota
	stateConnecting
	stateReady
	stateClosed
	stateErrored
)

func (s connState) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateConnecting:
		return "connecting"
	case stateReady:
		return "ready"
	case stateClosed:
		return "closed"
	case stateErrored:
		return "errored"
	}
	return "unknown"
}

// defaultMaxReconnects bounds the reconnect loop so a persistently broken
// store surfaces an error instead of spinning forever.
const defaultMaxReconnects = 3

// Conn owns the single shared database handle and its lifecycle. Every
// store operation goes through DB(), which opens or reopens the connection
// as needed: an externally closed handle is a recoverable condition and
// triggers a bounded reconnect; a failed open leaves the manager in the
// errored state but still "initialized", so callers can render an error
// state rather than wait forever.
type Conn struct {
	mu            sync.Mutex
	path          string
	l             log.Logger
	maxReconnects int

	state       connState
	db          *sql.DB
	lastErr     error
	initialized bool
}

// NewConn creates a connection manager for the database file at path.
// No connection is opened until first use.
func NewConn(path string, l log.Logger) *Conn {
	return &Conn{
		path:          path,
		l:             l,
		maxReconnects: defaultMaxReconnects,
		state:         stateUninitialized,
	}
}

// DB returns a live database handle, connecting on first use and
// reconnecting after an external close.
func (c *Conn) DB(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateReady {
		if err := c.db.PingContext(ctx); err == nil {
			return c.db, nil
		}
		c.l.Warnf(ctx, "sqlite: connection to %s lost, reconnecting", c.path)
		c.state = stateClosed
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxReconnects; attempt++ {
		c.state = stateConnecting
		if err := c.open(ctx); err != nil {
			lastErr = err
			c.l.Warnf(ctx, "sqlite: open attempt %d/%d failed: %v", attempt+1, c.maxReconnects+1, err)
			continue
		}
		c.state = stateReady
		c.lastErr = nil
		c.initialized = true
		return c.db, nil
	}

	c.state = stateErrored
	c.lastErr = lastErr
	c.initialized = true // done trying, not succeeded
	c.l.Errorf(ctx, "sqlite: giving up on %s after %d attempts: %v", c.path, c.maxReconnects+1, lastErr)
	return nil, lastErr
}

// open establishes a fresh handle and runs the schema upgrade. Holding
// c.mu is the caller's responsibility.
func (c *Conn) open(ctx context.Context) error {
	if c.db != nil {
		c.db.Close()
		c.db = nil
	}

	db, err := sql.Open("sqlite3", c.path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return err
	}

	c.db = db
	return nil
}

// Initialized reports whether the manager has finished its first connection
// attempt, successful or not.
func (c *Conn) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Err returns the error from the last failed connection attempt, or nil
// when the store is healthy.
func (c *Conn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Close releases the underlying handle. The next operation reconnects.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		c.state = stateClosed
		return nil
	}
	err := c.db.Close()
	c.db = nil
	c.state = stateClosed
	return err
}
