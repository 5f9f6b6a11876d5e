package repository

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"nutriclinic/config"
	"nutriclinic/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// createTestDB opens a migrated and reconciled database file in a temp dir.
func createTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteConnection(config.DBConfig{Path: filepath.Join(t.TempDir(), "clinic.db")}, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	reconcile(t, db)
	return db
}

func reconcile(t *testing.T, db *gorm.DB) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	require.NoError(t, database.Migrate(db, log))
	_, err := database.NewReconciler(db, log, database.ExpectedSchema).Reconcile(context.Background())
	require.NoError(t, err)
}
