package repository

import (
	"context"

	"nutriclinic/internal/domain/entity"
	domainRepo "nutriclinic/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ledgerEntryRow struct {
	ID        int64               `gorm:"column:id;primaryKey;autoIncrement"`
	EntryDate *string             `gorm:"column:entry_date"`
	Amount    decimal.NullDecimal `gorm:"column:amount"`
	Method    *string             `gorm:"column:method"`
}

func (ledgerEntryRow) TableName() string {
	return "ledger_entries"
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) (int64, error) {
	row := ledgerEntryRow{
		EntryDate: &entry.EntryDate,
		Amount:    decimal.NewNullDecimal(entry.Amount),
		Method:    optionalText(entry.Method),
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, storageError("create ledger entry", err)
	}

	entry.ID = row.ID
	return row.ID, nil
}

func (r *ledgerRepository) FindAll(ctx context.Context) ([]entity.LedgerEntry, error) {
	var rows []ledgerEntryRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, storageError("list ledger", err)
	}

	entries := make([]entity.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.LedgerEntry{
			ID:        row.ID,
			EntryDate: textOr(row.EntryDate, ""),
			Amount:    row.Amount.Decimal,
			Method:    textOr(row.Method, entity.DefaultPaymentMethod),
		})
	}
	return entries, nil
}

// Sum adds the amounts in decimal arithmetic. SQLite would add NUMERIC
// values as floats.
func (r *ledgerRepository) Sum(ctx context.Context) (decimal.Decimal, error) {
	var amounts []decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&ledgerEntryRow{}).
		Pluck("amount", &amounts).
		Error
	if err != nil {
		return decimal.Zero, storageError("sum ledger", err)
	}

	total := decimal.Zero
	for _, amount := range amounts {
		if amount.Valid {
			total = total.Add(amount.Decimal)
		}
	}
	return total, nil
}
