package usecase

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"nutriclinic/config"
	"nutriclinic/internal/domain/entity"
	domainRepo "nutriclinic/internal/domain/repository"
	"nutriclinic/internal/infrastructure/database"
	"nutriclinic/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

type testRepos struct {
	patients      domainRepo.PatientRepository
	prescriptions domainRepo.PrescriptionRepository
	ledger        domainRepo.LedgerRepository
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	db, err := database.NewSQLiteConnection(config.DBConfig{Path: filepath.Join(t.TempDir(), "clinic.db")}, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.Migrate(db, quietLogger()))
	_, err = database.NewReconciler(db, quietLogger(), database.ExpectedSchema).Reconcile(context.Background())
	require.NoError(t, err)

	return testRepos{
		patients:      repository.NewPatientRepository(db),
		prescriptions: repository.NewPrescriptionRepository(db),
		ledger:        repository.NewLedgerRepository(db),
	}
}

// brokenPatientRepo fails every call the way a dead disk would.
type brokenPatientRepo struct{}

var errDisk = &repository.StorageError{Op: "test", Err: io.ErrUnexpectedEOF}

func (brokenPatientRepo) Create(context.Context, *entity.Patient) (int64, error) { return 0, errDisk }
func (brokenPatientRepo) FindAll(context.Context, entity.PatientFilter) ([]entity.Patient, error) {
	return nil, errDisk
}
func (brokenPatientRepo) FindByID(context.Context, int64) (*entity.Patient, error) { return nil, errDisk }
func (brokenPatientRepo) Count(context.Context) (int64, error) { return 0, errDisk }

func intPtr(v int) *int { return &v }
