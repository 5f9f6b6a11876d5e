package dto

type MealPlanResponse struct {
	PatientID int64  `json:"patient_id"`
	Model     string `json:"model,omitempty"`
	Cached    bool   `json:"cached"`
	MealPlan  string `json:"meal_plan"`
}

type GenAITestRequest struct {
	Prompt string `json:"prompt" validate:"required,notblank,max=4000"`
}

type GenAITestResponse struct {
	Model string `json:"model"`
	Reply string `json:"reply"`
}

type GenAIStatusResponse struct {
	Enabled bool     `json:"enabled"`
	Models  []string `json:"models"`
}
