package database

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"nutriclinic/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func openTestDB(t *testing.T, path string) *gorm.DB {
	t.Helper()
	db, err := NewSQLiteConnection(config.DBConfig{Path: path}, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })
	return db
}

func columnCount(t *testing.T, db *gorm.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM pragma_table_info(?)", table).Row().Scan(&n))
	return n
}

func TestNewSQLiteConnection_CreatesFileAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "clinic.db")
	db := openTestDB(t, path)

	require.NoError(t, db.Exec("CREATE TABLE scratch (id INTEGER)").Error)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))

	for i := 0; i < 3; i++ {
		require.NoError(t, Migrate(db, quietLogger()), "iteration %d", i)
	}

	for _, table := range []string{"patients", "prescriptions", "ledger_entries"} {
		assert.Positive(t, columnCount(t, db, table), table)
	}
}

func TestReconcile_AddsMissingColumns(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, Migrate(db, quietLogger()))

	r := NewReconciler(db, quietLogger(), ExpectedSchema)
	added, err := r.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Contains(t, added, AddedColumn{Table: "patients", Column: "goal"})
	assert.Contains(t, added, AddedColumn{Table: "ledger_entries", Column: "method"})
	assert.NotContains(t, added, AddedColumn{Table: "patients", Column: "name"})

	for _, table := range ExpectedSchema {
		live, err := r.LiveColumns(context.Background(), table.Name)
		require.NoError(t, err)
		for _, col := range table.Columns {
			assert.Contains(t, live, col.Name, "%s.%s", table.Name, col.Name)
		}
	}
}

func TestReconcile_CreatesBaseTablesWithoutMigrations(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))

	r := NewReconciler(db, quietLogger(), ExpectedSchema)
	_, err := r.Reconcile(context.Background())
	require.NoError(t, err)

	live, err := r.LiveColumns(context.Background(), "patients")
	require.NoError(t, err)
	assert.Contains(t, live, "id")
	assert.Contains(t, live, "registered_at")
}

func TestReconcile_TwiceIsNoOp(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))
	r := NewReconciler(db, quietLogger(), ExpectedSchema)

	_, err := r.Reconcile(context.Background())
	require.NoError(t, err)
	before := columnCount(t, db, "patients")

	added, err := r.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Equal(t, before, columnCount(t, db, "patients"), "no duplicate columns")
}

func TestReconcile_PreservesLegacyRowsAndColumns(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))

	require.NoError(t, db.Exec(`CREATE TABLE patients (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, age INTEGER, phone TEXT)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO patients (name, age, phone) VALUES ('Ana', 34, '555-0100')`).Error)

	r := NewReconciler(db, quietLogger(), ExpectedSchema)
	added, err := r.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Contains(t, added, AddedColumn{Table: "patients", Column: "clinical_history"})
	assert.NotContains(t, added, AddedColumn{Table: "patients", Column: "age"})

	var row struct {
		Name            string
		Age             int
		Phone           string
		ClinicalHistory *string
	}
	require.NoError(t, db.Raw("SELECT name, age, phone, clinical_history FROM patients").Scan(&row).Error)
	assert.Equal(t, "Ana", row.Name)
	assert.Equal(t, 34, row.Age)
	assert.Equal(t, "555-0100", row.Phone, "unknown columns are kept")
	assert.Nil(t, row.ClinicalHistory)
}

func TestReconcile_ColumnAddedConcurrentlyIsNotAnError(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))
	r := NewReconciler(db, quietLogger(), ExpectedSchema)
	_, err := r.Reconcile(context.Background())
	require.NoError(t, err)

	created, err := r.addColumn(context.Background(), "patients", Column{Name: "goal", Type: "TEXT"})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestReconcile_FailureIsFatalKind(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, Close(db))

	_, err := NewReconciler(db, quietLogger(), ExpectedSchema).Reconcile(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaReconcile)
}

func TestReconcile_MixedCaseLegacyColumnCountsAsPresent(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, db.Exec(`CREATE TABLE patients (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, Goal TEXT)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO patients (name, Goal) VALUES ('Ana', 'hypertrophy')`).Error)

	added, err := NewReconciler(db, quietLogger(), ExpectedSchema).Reconcile(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, added, AddedColumn{Table: "patients", Column: "goal"})
	assert.Contains(t, added, AddedColumn{Table: "patients", Column: "age"})
	assert.Equal(t, 1+len(ExpectedSchema[0].Columns), columnCount(t, db, "patients"))

	var goal string
	require.NoError(t, db.Raw("SELECT goal FROM patients WHERE name = 'Ana'").Row().Scan(&goal))
	assert.Equal(t, "hypertrophy", goal)
}

func TestReconcile_DuplicateNameInOtherCaseIsNotAnError(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))
	r := NewReconciler(db, quietLogger(), ExpectedSchema)
	_, err := r.Reconcile(context.Background())
	require.NoError(t, err)

	created, err := r.addColumn(context.Background(), "patients", Column{Name: "GOAL", Type: "TEXT"})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestReconcile_RejectedAddColumnIsFatal(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, db.Exec(`CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT)`).Error)
	require.NoError(t, db.Exec(`CREATE VIEW patients AS SELECT id, name FROM people`).Error)

	added, err := NewReconciler(db, quietLogger(), ExpectedSchema).Reconcile(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaReconcile)
	assert.Contains(t, err.Error(), "patients.age")
	assert.Empty(t, added)
}

func TestAddedColumn_String(t *testing.T) {
	assert.Equal(t, "patients.goal", AddedColumn{Table: "patients", Column: "goal"}.String())
}
