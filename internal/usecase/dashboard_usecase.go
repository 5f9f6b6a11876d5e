package usecase

import (
	"context"

	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	prescriptionRepo repository.PrescriptionRepository
	ledgerRepo       repository.LedgerRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	prescriptionRepo repository.PrescriptionRepository,
	ledgerRepo repository.LedgerRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:              log,
		patientRepo:      patientRepo,
		prescriptionRepo: prescriptionRepo,
		ledgerRepo:       ledgerRepo,
	}
}

func (u *dashboardUsecase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	patients, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	prescriptions, err := u.prescriptionRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count prescriptions: %+v", err)
		return nil, err
	}

	revenue, err := u.ledgerRepo.Sum(ctx)
	if err != nil {
		u.log.Warnf("Failed to sum ledger: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		Patients:      patients,
		Prescriptions: prescriptions,
		Revenue:       revenue,
	}, nil
}
