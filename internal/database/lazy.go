package database

import (
	"sync"

	"gorm.io/gorm"

	"github.com/fdiazguiza/almacen/internal/config"
)

// Lazy defers pool creation until the first DB call and guarantees exactly one
// pool is opened even under concurrent first use. The handle itself is built
// in main and passed down; there is no package-level instance.
type Lazy struct {
	cfg  config.DatabaseConfig
	open func(config.DatabaseConfig) (*gorm.DB, error)

	once sync.Once
	db   *gorm.DB
	err  error
}

// NewLazy wraps the given database configuration. The opener defaults to
// Connect and is injectable for tests.
func NewLazy(cfg config.DatabaseConfig) *Lazy {
	return &Lazy{cfg: cfg, open: Connect}
}

// DB returns the shared pool handle, opening it on first use. Every caller
// after a failed open observes the same error; the process is expected to
// treat that as fatal rather than retry.
func (l *Lazy) DB() (*gorm.DB, error) {
	l.once.Do(func() {
		l.db, l.err = l.open(l.cfg)
	})
	return l.db, l.err
}

// Close tears down the pool if it was ever opened.
func (l *Lazy) Close() error {
	if l.db == nil {
		return nil
	}
	return Close(l.db)
}
