package repository

import (
	"context"

	"nutriclinic/internal/domain/entity"
)

type PatientRepository interface {
	// Create persists the patient, assigning ID and RegisteredAt, and returns
	// the new ID.
	Create(ctx context.Context, patient *entity.Patient) (int64, error)
	// FindAll returns matching patients in insertion order.
	FindAll(ctx context.Context, filter entity.PatientFilter) ([]entity.Patient, error)
	FindByID(ctx context.Context, id int64) (*entity.Patient, error)
	Count(ctx context.Context) (int64, error)
}
