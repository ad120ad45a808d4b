package database

import (
	"fmt"
	"os"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fdiazguiza/almacen/internal/config"
	"github.com/fdiazguiza/almacen/internal/domain/models"
)

// PoolInitError signals that the connection pool could not be brought up at
// startup: unreachable host, bad credentials, or a failed migration. It is
// fatal; callers are expected to abort.
type PoolInitError struct {
	Err error
}

func (e *PoolInitError) Error() string {
	return fmt.Sprintf("database pool initialization failed: %v", e.Err)
}

func (e *PoolInitError) Unwrap() error {
	return e.Err
}

// Connect opens a gorm handle backed by a bounded connection pool and verifies
// the database is reachable. The *sql.DB beneath gorm is the pool: PoolSize
// bounds simultaneously open connections and callers block, bounded by their
// request context, when it is exhausted.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, &PoolInitError{Err: fmt.Errorf("open: %w", err)}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &PoolInitError{Err: fmt.Errorf("unwrap sql.DB: %w", err)}
	}

	sqlDB.SetMaxOpenConns(cfg.PoolSize)
	sqlDB.SetMaxIdleConns(cfg.PoolSize)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	// Idle connections are recycled so a stale one is never handed back out.
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, &PoolInitError{Err: fmt.Errorf("ping: %w", err)}
	}

	if err := Migrate(db, cfg); err != nil {
		return nil, &PoolInitError{Err: err}
	}

	return db, nil
}

// Migrate brings the schema up to date. With MIGRATIONS=1 the SQL files under
// ./migrations run through golang-migrate; otherwise gorm AutoMigrate keeps
// development databases in sync with the models.
func Migrate(db *gorm.DB, cfg config.DatabaseConfig) error {
	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		return runSQLMigrations(cfg)
	}
	return AutoMigrate(db)
}

// AutoMigrate creates or updates the three tables. Clients and articles go
// first so the pedidos foreign keys have something to point at.
func AutoMigrate(db *gorm.DB) error {
	for _, m := range []interface{}{&models.Client{}, &models.Article{}, &models.Order{}} {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

func runSQLMigrations(cfg config.DatabaseConfig) error {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
	m, err := migrate.New("file://migrations", url)
	if err != nil {
		return fmt.Errorf("migrate init: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Close releases every pooled connection.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
