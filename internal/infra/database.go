package infra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"personas/internal/config"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the configured driver, sizes the connection pool and
// verifies connectivity. A failure here is fatal for the caller.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqliteDialector(cfg.DBPath)
	default:
		dialector = postgres.Open(cfg.PostgresDSN())
	}

	logLevel := logger.Silent
	if cfg.IsDevelopment() {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime())
	if cfg.DBDriver == "sqlite" {
		// an in-memory database lives and dies with its single connection
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}

	log.Info().Str("driver", cfg.DBDriver).Int("max_open_conns", cfg.DBMaxOpenConns).Msg("database connected")
	return db, nil
}

const sqliteDriverName = "sqlite3_personas"

var registerSQLite sync.Once

// sqliteDialector opens SQLite through a driver whose LOWER() folds non-ASCII
// letters too, so name searches match "MARÍA" with "marí" as on PostgreSQL.
func sqliteDialector(path string) gorm.Dialector {
	registerSQLite.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", strings.ToLower, true)
			},
		})
	})
	return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: sqliteDSN(path)})
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on"
}

// CloseDatabase releases the pool; errors are logged, not returned.
func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("closing database pool")
	}
}
