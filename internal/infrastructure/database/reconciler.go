package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSchemaReconcile marks a failure to bring the live schema up to the
// expected column set. Callers must not serve requests after it.
var ErrSchemaReconcile = errors.New("schema reconciliation failed")

// Column is an attribute the current code reads. Type is the SQLite type
// affinity used when the column has to be added; added columns are always
// nullable with no default.
type Column struct {
	Name string
	Type string
}

// Table describes one table: the statement creating its minimal form and
// the full column set expected on top of it.
type Table struct {
	Name    string
	Base    string
	Columns []Column
}

// ExpectedSchema is the column set the repositories read and write.
var ExpectedSchema = []Table{
	{
		Name: "patients",
		Base: `CREATE TABLE IF NOT EXISTS patients (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT)`,
		Columns: []Column{
			{Name: "name", Type: "TEXT"},
			{Name: "age", Type: "INTEGER"},
			{Name: "goal", Type: "TEXT"},
			{Name: "clinical_history", Type: "TEXT"},
			{Name: "lab_results", Type: "TEXT"},
			{Name: "registered_at", Type: "TEXT"},
		},
	},
	{
		Name: "prescriptions",
		Base: `CREATE TABLE IF NOT EXISTS prescriptions (id INTEGER PRIMARY KEY AUTOINCREMENT, patient_id INTEGER)`,
		Columns: []Column{
			{Name: "patient_id", Type: "INTEGER"},
			{Name: "weight_kg", Type: "REAL"},
			{Name: "height_cm", Type: "REAL"},
			{Name: "age", Type: "INTEGER"},
			{Name: "activity_factor", Type: "REAL"},
			{Name: "bmi", Type: "REAL"},
			{Name: "bee", Type: "REAL"},
			{Name: "tee", Type: "REAL"},
			{Name: "protein_g", Type: "REAL"},
			{Name: "fat_g", Type: "REAL"},
			{Name: "carb_g", Type: "REAL"},
			{Name: "meal_plan", Type: "TEXT"},
			{Name: "created_at", Type: "TEXT"},
		},
	},
	{
		Name: "ledger_entries",
		Base: `CREATE TABLE IF NOT EXISTS ledger_entries (id INTEGER PRIMARY KEY AUTOINCREMENT, entry_date TEXT, amount NUMERIC)`,
		Columns: []Column{
			{Name: "entry_date", Type: "TEXT"},
			{Name: "amount", Type: "NUMERIC"},
			{Name: "method", Type: "TEXT"},
		},
	},
}

// AddedColumn reports one column created by a reconciliation pass.
type AddedColumn struct {
	Table  string
	Column string
}

func (a AddedColumn) String() string {
	return a.Table + "." + a.Column
}

// Reconciler additively converges the live schema to a set of tables. It
// never drops, renames or retypes a column, and each step is idempotent, so
// an interrupted pass is completed by the next one.
type Reconciler struct {
	db     *gorm.DB
	log    *logrus.Logger
	tables []Table
}

func NewReconciler(db *gorm.DB, log *logrus.Logger, tables []Table) *Reconciler {
	return &Reconciler{
		db:     db,
		log:    log,
		tables: tables,
	}
}

// Reconcile creates missing base tables and adds missing columns. It returns
// the columns it added; a fully migrated database yields none.
func (r *Reconciler) Reconcile(ctx context.Context) ([]AddedColumn, error) {
	var added []AddedColumn

	for _, table := range r.tables {
		if err := r.db.WithContext(ctx).Exec(table.Base).Error; err != nil {
			return added, fmt.Errorf("%w: ensure table %s: %w", ErrSchemaReconcile, table.Name, err)
		}

		live, err := r.LiveColumns(ctx, table.Name)
		if err != nil {
			return added, fmt.Errorf("%w: %w", ErrSchemaReconcile, err)
		}

		for _, col := range table.Columns {
			if _, ok := live[strings.ToLower(col.Name)]; ok {
				continue
			}

			created, err := r.addColumn(ctx, table.Name, col)
			if err != nil {
				return added, err
			}
			if created {
				added = append(added, AddedColumn{Table: table.Name, Column: col.Name})
				r.log.Infof("Added column %s.%s", table.Name, col.Name)
			}
			live[strings.ToLower(col.Name)] = struct{}{}
		}
	}

	if len(added) == 0 {
		r.log.Debug("Schema already reconciled")
	}

	return added, nil
}

// LiveColumns probes the table metadata without scanning rows. Names are
// lower-cased since SQLite compares column names case-insensitively.
func (r *Reconciler) LiveColumns(ctx context.Context, table string) (map[string]struct{}, error) {
	rows, err := r.db.WithContext(ctx).Raw(fmt.Sprintf("PRAGMA table_info(%q)", table)).Rows()
	if err != nil {
		return nil, fmt.Errorf("probe columns of %s: %w", table, err)
	}
	defer rows.Close()

	columns := make(map[string]struct{})
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("scan columns of %s: %w", table, err)
		}
		columns[strings.ToLower(name)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("probe columns of %s: %w", table, err)
	}

	return columns, nil
}

// addColumn reports false when the column turned out to exist already, which
// is treated as success.
func (r *Reconciler) addColumn(ctx context.Context, table string, col Column) (bool, error) {
	stmt := fmt.Sprintf("ALTER TABLE %q ADD COLUMN %q %s", table, col.Name, col.Type)

	execErr := r.db.WithContext(ctx).Exec(stmt).Error
	if execErr == nil {
		return true, nil
	}

	live, err := r.LiveColumns(ctx, table)
	if err == nil {
		if _, ok := live[strings.ToLower(col.Name)]; ok {
			r.log.Debugf("Column %s.%s already exists", table, col.Name)
			return false, nil
		}
	}

	r.log.Warnf("Failed to add column %s.%s: %+v", table, col.Name, execErr)
	return false, fmt.Errorf("%w: add column %s.%s: %w", ErrSchemaReconcile, table, col.Name, execErr)
}
