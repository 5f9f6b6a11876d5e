package repository

import (
	"context"
	"time"

	"nutriclinic/internal/domain/entity"
	domainRepo "nutriclinic/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRow struct {
	ID             int64    `gorm:"column:id;primaryKey;autoIncrement"`
	PatientID      *int64   `gorm:"column:patient_id"`
	WeightKg       *float64 `gorm:"column:weight_kg"`
	HeightCm       *float64 `gorm:"column:height_cm"`
	Age            *int     `gorm:"column:age"`
	ActivityFactor *float64 `gorm:"column:activity_factor"`
	BMI            *float64 `gorm:"column:bmi"`
	BEE            *float64 `gorm:"column:bee"`
	TEE            *float64 `gorm:"column:tee"`
	ProteinG       *float64 `gorm:"column:protein_g"`
	FatG           *float64 `gorm:"column:fat_g"`
	CarbG          *float64 `gorm:"column:carb_g"`
	MealPlan       *string  `gorm:"column:meal_plan"`
	CreatedAt      *string  `gorm:"column:created_at"`
}

func (prescriptionRow) TableName() string {
	return "prescriptions"
}

type prescriptionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPrescriptionRepository(db *gorm.DB) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{db: db, now: time.Now}
}

func (r *prescriptionRepository) Create(ctx context.Context, p *entity.Prescription) (int64, error) {
	p.CreatedAt = r.now().Format(entity.PrescriptionTimestampLayout)

	row := prescriptionRow{
		PatientID:      &p.PatientID,
		WeightKg:       &p.WeightKg,
		HeightCm:       &p.HeightCm,
		Age:            &p.Age,
		ActivityFactor: &p.ActivityFactor,
		BMI:            &p.BMI,
		BEE:            &p.BEE,
		TEE:            &p.TEE,
		ProteinG:       &p.ProteinG,
		FatG:           &p.FatG,
		CarbG:          &p.CarbG,
		MealPlan:       optionalText(p.MealPlan),
		CreatedAt:      &p.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, storageError("create prescription", err)
	}

	p.ID = row.ID
	return row.ID, nil
}

func (r *prescriptionRepository) FindAll(ctx context.Context, patientID *int64) ([]entity.Prescription, error) {
	var rows []prescriptionRow

	query := r.db.WithContext(ctx).Order("id ASC")
	if patientID != nil {
		query = query.Where("patient_id = ?", *patientID)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, storageError("list prescriptions", err)
	}

	prescriptions := make([]entity.Prescription, 0, len(rows))
	for _, row := range rows {
		prescriptions = append(prescriptions, row.normalize())
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&prescriptionRow{}).Count(&total).Error; err != nil {
		return 0, storageError("count prescriptions", err)
	}
	return total, nil
}

func (row prescriptionRow) normalize() entity.Prescription {
	p := entity.Prescription{
		ID:             row.ID,
		WeightKg:       numberOr(row.WeightKg),
		HeightCm:       numberOr(row.HeightCm),
		ActivityFactor: numberOr(row.ActivityFactor),
		BMI:            numberOr(row.BMI),
		BEE:            numberOr(row.BEE),
		TEE:            numberOr(row.TEE),
		ProteinG:       numberOr(row.ProteinG),
		FatG:           numberOr(row.FatG),
		CarbG:          numberOr(row.CarbG),
		MealPlan:       textOr(row.MealPlan, entity.DefaultMealPlan),
		CreatedAt:      textOr(row.CreatedAt, entity.UnknownTimestamp),
	}
	if row.PatientID != nil {
		p.PatientID = *row.PatientID
	}
	if row.Age != nil {
		p.Age = *row.Age
	}
	return p
}

func numberOr(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
