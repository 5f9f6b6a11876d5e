package repository

import (
	"context"

	"nutriclinic/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// LedgerRepository is append-only: there is no update or delete.
type LedgerRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) (int64, error)
	FindAll(ctx context.Context) ([]entity.LedgerEntry, error)
	// Sum totals every amount; zero when the ledger is empty.
	Sum(ctx context.Context) (decimal.Decimal, error)
}
