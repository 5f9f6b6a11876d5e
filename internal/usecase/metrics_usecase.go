package usecase

import (
	"nutriclinic/internal/converter"
	"nutriclinic/internal/delivery/dto"
	"nutriclinic/pkg/nutrition"
)

// MetricsUsecase backs the standalone calculator; nothing is persisted.
type MetricsUsecase interface {
	Calculate(req *dto.MetricsRequest) (*dto.MetricsResponse, error)
}

type metricsUsecase struct{}

func NewMetricsUsecase() MetricsUsecase {
	return &metricsUsecase{}
}

func (u *metricsUsecase) Calculate(req *dto.MetricsRequest) (*dto.MetricsResponse, error) {
	if req.Age == nil {
		return nil, ErrAgeRequired
	}

	assessment, err := nutrition.Assess(nutrition.Input{
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		AgeYears:      *req.Age,
		Activity:      nutrition.ActivityLevel(req.ActivityLevel),
		ProteinGPerKg: req.ProteinGPerKg,
		FatGPerKg:     req.FatGPerKg,
	})
	if err != nil {
		return nil, err
	}

	return converter.AssessmentToResponse(assessment), nil
}
