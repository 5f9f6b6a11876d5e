package usecase

import (
	"context"
	"strings"

	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/domain/repository"
	"nutriclinic/internal/service"

	"github.com/sirupsen/logrus"
)

type MealPlanUsecase interface {
	Generate(ctx context.Context, patientID int64) (*dto.MealPlanResponse, error)
	Status() *dto.GenAIStatusResponse
	Test(ctx context.Context, req *dto.GenAITestRequest) (*dto.GenAITestResponse, error)
}

type mealPlanUsecase struct {
	log             *logrus.Logger
	enabled         bool
	patientRepo     repository.PatientRepository
	mealPlanService service.MealPlanService
}

func NewMealPlanUsecase(
	log *logrus.Logger,
	enabled bool,
	patientRepo repository.PatientRepository,
	mealPlanService service.MealPlanService,
) MealPlanUsecase {
	return &mealPlanUsecase{
		log:             log,
		enabled:         enabled,
		patientRepo:     patientRepo,
		mealPlanService: mealPlanService,
	}
}

func (u *mealPlanUsecase) Generate(ctx context.Context, patientID int64) (*dto.MealPlanResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	plan, err := u.mealPlanService.Generate(ctx, *patient)
	if err != nil {
		return nil, err
	}

	return &dto.MealPlanResponse{
		PatientID: patient.ID,
		Model:     plan.Model,
		Cached:    plan.Cached,
		MealPlan:  plan.Text,
	}, nil
}

func (u *mealPlanUsecase) Status() *dto.GenAIStatusResponse {
	return &dto.GenAIStatusResponse{
		Enabled: u.enabled,
		Models:  u.mealPlanService.Models(),
	}
}

// Test sends a free prompt to the generative service so the configured key
// and model names can be checked end to end.
func (u *mealPlanUsecase) Test(ctx context.Context, req *dto.GenAITestRequest) (*dto.GenAITestResponse, error) {
	reply, err := u.mealPlanService.Ask(ctx, strings.TrimSpace(req.Prompt))
	if err != nil {
		u.log.Warnf("Generative service test failed: %+v", err)
		return nil, err
	}

	return &dto.GenAITestResponse{
		Model: reply.Model,
		Reply: reply.Text,
	}, nil
}
