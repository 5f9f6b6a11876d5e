package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/infrastructure/textgen"
	"nutriclinic/internal/service"
	"nutriclinic/internal/usecase"
	"nutriclinic/pkg/response"
	"nutriclinic/pkg/validator"
)

type MealPlanHandler struct {
	mealPlanUsecase usecase.MealPlanUsecase
	validator       *validator.CustomValidator
}

func NewMealPlanHandler(mealPlanUsecase usecase.MealPlanUsecase, validator *validator.CustomValidator) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanUsecase: mealPlanUsecase,
		validator:       validator,
	}
}

// Generate asks the generative service for a meal plan
// @Summary Generate a meal plan
// @Tags Meal plans
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /patients/{id}/meal-plan [post]
func (h *MealPlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "id", "Invalid patient ID")
	if !ok {
		return
	}

	plan, err := h.mealPlanUsecase.Generate(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, service.ErrMealPlanDisabled):
			response.ServiceUnavailable(w, "Meal plan generation is not configured")
		case errors.Is(err, service.ErrMealPlanUnavailable):
			response.BadGateway(w, "Failed to generate meal plan", mealPlanFailureDetail(err))
		default:
			response.InternalServerError(w, "Failed to generate meal plan")
		}
		return
	}

	response.Success(w, http.StatusOK, "Meal plan generated successfully", plan)
}

func (h *MealPlanHandler) Status(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Generative service status", h.mealPlanUsecase.Status())
}

// Test sends a free prompt to the configured models
// @Summary Test the generative service connection
// @Tags Health
// @Accept json
// @Produce json
// @Param request body dto.GenAITestRequest true "Prompt"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health/genai [post]
func (h *MealPlanHandler) Test(w http.ResponseWriter, r *http.Request) {
	var req dto.GenAITestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reply, err := h.mealPlanUsecase.Test(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMealPlanDisabled):
			response.ServiceUnavailable(w, "Meal plan generation is not configured")
		case errors.Is(err, service.ErrMealPlanUnavailable):
			response.BadGateway(w, "Generative service test failed", mealPlanFailureDetail(err))
		default:
			response.InternalServerError(w, "Generative service test failed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Generative service replied", reply)
}

func mealPlanFailureDetail(err error) string {
	switch {
	case errors.Is(err, textgen.ErrUnauthorized):
		return "the generative service rejected the configured API key"
	case errors.Is(err, textgen.ErrModelNotFound):
		return "none of the configured models is available; check GENAI_MODELS against the models your key can use"
	default:
		return "the generative service could not be reached"
	}
}
