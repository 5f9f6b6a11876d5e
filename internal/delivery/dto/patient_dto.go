package dto

// Request DTOs

type CreatePatientRequest struct {
	Name            string `json:"name" validate:"required,notblank,max=200"`
	Age             *int   `json:"age" validate:"omitempty,gte=0,lte=120"`
	Goal            string `json:"goal" validate:"omitempty,oneof='weight loss' hypertrophy health performance"`
	ClinicalHistory string `json:"clinical_history"`
	LabResults      string `json:"lab_results"`
}

// Response DTOs

type PatientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Goal            string `json:"goal"`
	ClinicalHistory string `json:"clinical_history"`
	LabResults      string `json:"lab_results"`
	RegisteredAt    string `json:"registered_at"`
}
