package usecase

import (
	"context"
	"errors"
	"strings"

	"nutriclinic/internal/converter"
	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/domain/entity"
	"nutriclinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvalidPatientName = errors.New("patient name is required")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context, name string) ([]dto.PatientResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidPatientName
	}

	patient := &entity.Patient{
		Name:            name,
		Goal:            strings.TrimSpace(req.Goal),
		ClinicalHistory: strings.TrimSpace(req.ClinicalHistory),
		LabResults:      strings.TrimSpace(req.LabResults),
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}

	if _, err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	// Read back so the response carries the normalized defaults.
	stored, err := u.patientRepo.FindByID(ctx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to read created patient: %+v", err)
		return nil, err
	}
	if stored == nil {
		return nil, ErrPatientNotFound
	}

	u.log.Infof("Patient %d registered", stored.ID)
	return converter.PatientToResponse(stored), nil
}

func (u *patientUsecase) GetAll(ctx context.Context, name string) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, entity.PatientFilter{Name: strings.TrimSpace(name)})
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponse(patients), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}
