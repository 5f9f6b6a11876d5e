package dto

// Request DTOs

// CreatePrescriptionRequest carries the consultation measurements. Age falls
// back to the patient's registered age when omitted.
type CreatePrescriptionRequest struct {
	WeightKg      float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm      float64 `json:"height_cm" validate:"required,gt=0"`
	Age           *int    `json:"age" validate:"omitempty,gte=0,lte=120"`
	ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active athlete"`
	ProteinGPerKg float64 `json:"protein_g_per_kg" validate:"required,gt=0"`
	FatGPerKg     float64 `json:"fat_g_per_kg" validate:"required,gt=0"`
	MealPlan      string  `json:"meal_plan"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID             int64   `json:"id"`
	PatientID      int64   `json:"patient_id"`
	WeightKg       float64 `json:"weight_kg"`
	HeightCm       float64 `json:"height_cm"`
	Age            int     `json:"age"`
	ActivityFactor float64 `json:"activity_factor"`
	BMI            float64 `json:"bmi"`
	BMIClass       string  `json:"bmi_class"`
	BEE            float64 `json:"bee"`
	TEE            float64 `json:"tee"`
	ProteinG       float64 `json:"protein_g"`
	FatG           float64 `json:"fat_g"`
	CarbG          float64 `json:"carb_g"`
	CarbWarning    bool    `json:"carb_warning"`
	MealPlan       string  `json:"meal_plan"`
	CreatedAt      string  `json:"created_at"`
}
