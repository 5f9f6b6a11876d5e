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

type LedgerHandler struct {
	ledgerUsecase usecase.LedgerUsecase
	validator     *validator.CustomValidator
}

func NewLedgerHandler(ledgerUsecase usecase.LedgerUsecase, validator *validator.CustomValidator) *LedgerHandler {
	return &LedgerHandler{
		ledgerUsecase: ledgerUsecase,
		validator:     validator,
	}
}

// Create appends a ledger entry
// @Summary Record a payment
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body dto.CreateLedgerEntryRequest true "Ledger entry"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /ledger [post]
func (h *LedgerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLedgerEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.ledgerUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNegativeAmount):
			response.ValidationError(w, map[string]string{"amount": err.Error()})
		default:
			response.InternalServerError(w, "Failed to record ledger entry")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Ledger entry recorded successfully", entry)
}

// GetAll lists the ledger in insertion order
// @Summary List ledger entries
// @Tags Ledger
// @Produce json
// @Success 200 {object} response.Response
// @Router /ledger [get]
func (h *LedgerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledgerUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get ledger")
		return
	}

	response.List(w, "Ledger retrieved successfully", entries, len(entries))
}

// Total sums every ledger amount
// @Summary Ledger total
// @Tags Ledger
// @Produce json
// @Success 200 {object} response.Response
// @Router /ledger/total [get]
func (h *LedgerHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.ledgerUsecase.Total(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to sum ledger")
		return
	}

	response.Success(w, http.StatusOK, "Ledger total retrieved successfully", total)
}
