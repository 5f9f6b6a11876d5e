package dto

import "github.com/shopspring/decimal"

type DashboardResponse struct {
	Patients      int64           `json:"patients"`
	Prescriptions int64           `json:"prescriptions"`
	Revenue       decimal.Decimal `json:"revenue"`
}
