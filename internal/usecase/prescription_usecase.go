package usecase

import (
	"context"
	"errors"
	"strings"

	"nutriclinic/internal/converter"
	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/domain/entity"
	"nutriclinic/internal/domain/repository"
	"nutriclinic/pkg/nutrition"

	"github.com/sirupsen/logrus"
)

// ErrAgeRequired is returned when neither the request nor the patient record
// provides an age for the basal energy estimate.
var ErrAgeRequired = errors.New("age is required to estimate energy expenditure")

type PrescriptionUsecase interface {
	Create(ctx context.Context, patientID int64, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetAll(ctx context.Context, patientID *int64) ([]dto.PrescriptionResponse, error)
}

type prescriptionUsecase struct {
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	prescriptionRepo repository.PrescriptionRepository
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	prescriptionRepo repository.PrescriptionRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:              log,
		patientRepo:      patientRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

// Create derives every target from the measurements and persists them. A
// negative carbohydrate target is stored unchanged and flagged in the
// response. The patient reference is weak: it is only looked up when the
// request omits the age.
func (u *prescriptionUsecase) Create(ctx context.Context, patientID int64, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	age, err := u.resolveAge(ctx, patientID, req.Age)
	if err != nil {
		return nil, err
	}

	assessment, err := nutrition.Assess(nutrition.Input{
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		AgeYears:      age,
		Activity:      nutrition.ActivityLevel(req.ActivityLevel),
		ProteinGPerKg: req.ProteinGPerKg,
		FatGPerKg:     req.FatGPerKg,
	})
	if err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientID:      patientID,
		WeightKg:       req.WeightKg,
		HeightCm:       req.HeightCm,
		Age:            age,
		ActivityFactor: assessment.ActivityFactor,
		BMI:            assessment.BMI,
		BEE:            assessment.BEE,
		TEE:            assessment.TEE,
		ProteinG:       assessment.ProteinG,
		FatG:           assessment.FatG,
		CarbG:          assessment.CarbG,
		MealPlan:       strings.TrimSpace(req.MealPlan),
	}

	if _, err := u.prescriptionRepo.Create(ctx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if assessment.NegativeCarbs() {
		u.log.Warnf("Prescription %d for patient %d has a negative carbohydrate target (%.1f g)",
			prescription.ID, patientID, assessment.CarbG)
	}

	if prescription.MealPlan == "" {
		prescription.MealPlan = entity.DefaultMealPlan
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) resolveAge(ctx context.Context, patientID int64, age *int) (int, error) {
	if age != nil {
		return *age, nil
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return 0, err
	}
	if patient == nil {
		return 0, ErrPatientNotFound
	}
	if patient.Age == entity.DefaultAge {
		return 0, ErrAgeRequired
	}
	return patient.Age, nil
}

func (u *prescriptionUsecase) GetAll(ctx context.Context, patientID *int64) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponse(prescriptions), nil
}
