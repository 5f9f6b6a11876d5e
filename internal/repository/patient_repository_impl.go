package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"nutriclinic/internal/domain/entity"
	domainRepo "nutriclinic/internal/domain/repository"

	"gorm.io/gorm"
)

// patientRow mirrors the patients table. Every attribute is nullable because
// rows written by older layouts lack them.
type patientRow struct {
	ID              int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name            *string `gorm:"column:name"`
	Age             *int    `gorm:"column:age"`
	Goal            *string `gorm:"column:goal"`
	ClinicalHistory *string `gorm:"column:clinical_history"`
	LabResults      *string `gorm:"column:lab_results"`
	RegisteredAt    *string `gorm:"column:registered_at"`
}

func (patientRow) TableName() string {
	return "patients"
}

type patientRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db, now: time.Now}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) (int64, error) {
	patient.RegisteredAt = r.now().Format(entity.RegistrationDateLayout)

	row := patientRow{
		Name:            &patient.Name,
		Age:             optionalAge(patient.Age),
		Goal:            optionalText(patient.Goal),
		ClinicalHistory: optionalText(patient.ClinicalHistory),
		LabResults:      optionalText(patient.LabResults),
		RegisteredAt:    &patient.RegisteredAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, storageError("create patient", err)
	}

	patient.ID = row.ID
	return row.ID, nil
}

func (r *patientRepository) FindAll(ctx context.Context, filter entity.PatientFilter) ([]entity.Patient, error) {
	var rows []patientRow

	query := r.db.WithContext(ctx).Order("id ASC")
	if filter.Name != "" {
		query = query.Where("name = ?", filter.Name)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, storageError("list patients", err)
	}

	patients := make([]entity.Patient, 0, len(rows))
	for _, row := range rows {
		patients = append(patients, row.normalize())
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id int64) (*entity.Patient, error) {
	var row patientRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageError("find patient", err)
	}
	patient := row.normalize()
	return &patient, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&patientRow{}).Count(&total).Error; err != nil {
		return 0, storageError("count patients", err)
	}
	return total, nil
}

// normalize is the single place NULL or missing attributes become defaults.
func (row patientRow) normalize() entity.Patient {
	p := entity.Patient{
		ID:              row.ID,
		Name:            textOr(row.Name, ""),
		Age:             entity.DefaultAge,
		Goal:            textOr(row.Goal, entity.DefaultGoal),
		ClinicalHistory: textOr(row.ClinicalHistory, entity.DefaultClinicalHistory),
		LabResults:      textOr(row.LabResults, entity.DefaultLabResults),
		RegisteredAt:    textOr(row.RegisteredAt, entity.UnknownTimestamp),
	}
	if row.Age != nil {
		p.Age = *row.Age
	}
	return p
}

// optionalText stores blank text as NULL so it reads back as the default.
func optionalText(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func optionalAge(age int) *int {
	if age == entity.DefaultAge {
		return nil
	}
	return &age
}

func textOr(s *string, fallback string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return fallback
	}
	return *s
}
