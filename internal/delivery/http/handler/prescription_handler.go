package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/usecase"
	"nutriclinic/pkg/nutrition"
	"nutriclinic/pkg/response"
	"nutriclinic/pkg/validator"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// Create records a consultation for a patient
// @Summary Create a prescription
// @Tags Prescriptions
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param request body dto.CreatePrescriptionRequest true "Measurements and targets"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/prescriptions [post]
func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "id", "Invalid patient ID")
	if !ok {
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrAgeRequired):
			response.ValidationError(w, map[string]string{"age": err.Error()})
		case errors.Is(err, nutrition.ErrUnknownActivityLevel),
			errors.Is(err, nutrition.ErrInvalidHeight),
			errors.Is(err, nutrition.ErrInvalidWeight),
			errors.Is(err, nutrition.ErrInvalidAge):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	message := "Prescription created successfully"
	if prescription.CarbWarning {
		message = "Prescription created; protein and fat targets exceed the energy budget"
	}
	response.Success(w, http.StatusCreated, message, prescription)
}

// GetAll lists prescriptions
// @Summary List prescriptions
// @Tags Prescriptions
// @Produce json
// @Param patient_id query int false "Patient ID"
// @Success 200 {object} response.Response
// @Router /prescriptions [get]
func (h *PrescriptionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var patientID *int64
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
		patientID = &id
	}

	prescriptions, err := h.prescriptionUsecase.GetAll(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get prescriptions")
		return
	}

	response.List(w, "Prescriptions retrieved successfully", prescriptions, len(prescriptions))
}
