package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/usecase"
	"nutriclinic/pkg/response"
	"nutriclinic/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Create handles patient intake
// @Summary Register a patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Intake form"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPatientName):
			response.ValidationError(w, map[string]string{"name": "name is required"})
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

// GetAll lists patients, optionally only those whose name matches exactly
// @Summary List patients
// @Tags Patients
// @Produce json
// @Param name query string false "Exact patient name"
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAll(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.List(w, "Patients retrieved successfully", patients, len(patients))
}

// GetByID handles getting a patient by ID
// @Summary Get patient by ID
// @Tags Patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "Invalid patient ID")
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}
