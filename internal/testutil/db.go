// Package testutil builds throwaway databases for package tests.
package testutil

import (
	"testing"

	"personas/internal/config"
	"personas/internal/infra"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated, empty in-memory SQLite database private to t.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		Env:            "test",
		DBDriver:       "sqlite",
		DBPath:         ":memory:",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}
	db, err := infra.NewDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { infra.CloseDatabase(db) })

	require.NoError(t, infra.Migrate(db))
	return db
}

// NewSeededDB is NewDB plus the default roles and demo personas.
func NewSeededDB(t testing.TB) *gorm.DB {
	t.Helper()
	db := NewDB(t)
	require.NoError(t, infra.Seed(t.Context(), db))
	return db
}
