package handler

import (
	"encoding/json"
	"net/http"

	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/usecase"
	"nutriclinic/pkg/response"
	"nutriclinic/pkg/validator"
)

type MetricsHandler struct {
	metricsUsecase usecase.MetricsUsecase
	validator      *validator.CustomValidator
}

func NewMetricsHandler(metricsUsecase usecase.MetricsUsecase, validator *validator.CustomValidator) *MetricsHandler {
	return &MetricsHandler{
		metricsUsecase: metricsUsecase,
		validator:      validator,
	}
}

func (h *MetricsHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.MetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	metrics, err := h.metricsUsecase.Calculate(&req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusOK, "Metrics calculated successfully", metrics)
}
