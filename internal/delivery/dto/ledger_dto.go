package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateLedgerEntryRequest struct {
	Date   string          `json:"date" validate:"required,datetime=2006-01-02"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method" validate:"omitempty,oneof=cash card pix transfer"`
}

// Response DTOs

type LedgerEntryResponse struct {
	ID     int64           `json:"id"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
}

type LedgerTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}
