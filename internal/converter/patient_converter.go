package converter

import (
	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:              patient.ID,
		Name:            patient.Name,
		Age:             patient.Age,
		Goal:            patient.Goal,
		ClinicalHistory: patient.ClinicalHistory,
		LabResults:      patient.LabResults,
		RegisteredAt:    patient.RegisteredAt,
	}
}

func PatientsToResponse(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
