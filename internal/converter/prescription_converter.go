package converter

import (
	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/domain/entity"
	"nutriclinic/pkg/nutrition"
)

// PrescriptionToResponse re-derives the BMI class and carbohydrate warning
// from the stored values. A row with no recorded BMI has no class.
func PrescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	return &dto.PrescriptionResponse{
		ID:             p.ID,
		PatientID:      p.PatientID,
		WeightKg:       p.WeightKg,
		HeightCm:       p.HeightCm,
		Age:            p.Age,
		ActivityFactor: p.ActivityFactor,
		BMI:            p.BMI,
		BMIClass:       bmiClass(p.BMI),
		BEE:            p.BEE,
		TEE:            p.TEE,
		ProteinG:       p.ProteinG,
		FatG:           p.FatG,
		CarbG:          p.CarbG,
		CarbWarning:    p.CarbG < 0,
		MealPlan:       p.MealPlan,
		CreatedAt:      p.CreatedAt,
	}
}

func bmiClass(bmi float64) string {
	if bmi <= 0 {
		return ""
	}
	return string(nutrition.ClassifyBMI(bmi))
}

func PrescriptionsToResponse(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i]))
	}
	return responses
}

func AssessmentToResponse(a nutrition.Assessment) *dto.MetricsResponse {
	return &dto.MetricsResponse{
		BMI:            a.BMI,
		BMIClass:       string(a.BMIClass),
		BEE:            a.BEE,
		ActivityFactor: a.ActivityFactor,
		TEE:            a.TEE,
		ProteinG:       a.ProteinG,
		FatG:           a.FatG,
		CarbG:          a.CarbG,
		CarbWarning:    a.NegativeCarbs(),
	}
}
