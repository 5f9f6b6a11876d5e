package entity

import "github.com/shopspring/decimal"

// LedgerEntry is an append-only billing record.
type LedgerEntry struct {
	ID        int64
	EntryDate string
	Amount    decimal.Decimal
	Method    string
}

const DefaultPaymentMethod = "not informed"

// Payment methods offered by the billing form.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentPix      = "pix"
	PaymentTransfer = "transfer"
)

// LedgerDateLayout is the expected EntryDate format.
const LedgerDateLayout = "2006-01-02"
