package dto

type MetricsRequest struct {
	WeightKg      float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm      float64 `json:"height_cm" validate:"required,gt=0"`
	Age           *int    `json:"age" validate:"required,gte=0,lte=120"`
	ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active athlete"`
	ProteinGPerKg float64 `json:"protein_g_per_kg" validate:"required,gt=0"`
	FatGPerKg     float64 `json:"fat_g_per_kg" validate:"required,gt=0"`
}

// MetricsResponse mirrors a full assessment. CarbWarning is set when protein
// and fat exceed the energy budget; CarbG is reported unclamped.
type MetricsResponse struct {
	BMI            float64 `json:"bmi"`
	BMIClass       string  `json:"bmi_class"`
	BEE            float64 `json:"bee"`
	ActivityFactor float64 `json:"activity_factor"`
	TEE            float64 `json:"tee"`
	ProteinG       float64 `json:"protein_g"`
	FatG           float64 `json:"fat_g"`
	CarbG          float64 `json:"carb_g"`
	CarbWarning    bool    `json:"carb_warning"`
}
