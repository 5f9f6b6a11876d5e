package repository

import (
	"context"

	"nutriclinic/internal/domain/entity"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) (int64, error)
	// FindAll lists prescriptions in insertion order, restricted to one
	// patient when patientID is non-nil.
	FindAll(ctx context.Context, patientID *int64) ([]entity.Prescription, error)
	Count(ctx context.Context) (int64, error)
}
