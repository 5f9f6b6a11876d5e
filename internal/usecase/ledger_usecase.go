package usecase

import (
	"context"
	"errors"

	"nutriclinic/internal/converter"
	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/domain/entity"
	"nutriclinic/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrNegativeAmount = errors.New("amount must not be negative")

type LedgerUsecase interface {
	Create(ctx context.Context, req *dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error)
	GetAll(ctx context.Context) ([]dto.LedgerEntryResponse, error)
	Total(ctx context.Context) (*dto.LedgerTotalResponse, error)
}

type ledgerUsecase struct {
	log        *logrus.Logger
	ledgerRepo repository.LedgerRepository
}

func NewLedgerUsecase(log *logrus.Logger, ledgerRepo repository.LedgerRepository) LedgerUsecase {
	return &ledgerUsecase{
		log:        log,
		ledgerRepo: ledgerRepo,
	}
}

func (u *ledgerUsecase) Create(ctx context.Context, req *dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	if req.Amount.IsNegative() {
		return nil, ErrNegativeAmount
	}

	entry := &entity.LedgerEntry{
		EntryDate: req.Date,
		Amount:    req.Amount,
		Method:    req.Method,
	}

	if _, err := u.ledgerRepo.Create(ctx, entry); err != nil {
		u.log.Warnf("Failed to create ledger entry: %+v", err)
		return nil, err
	}

	if entry.Method == "" {
		entry.Method = entity.DefaultPaymentMethod
	}
	return converter.LedgerEntryToResponse(entry), nil
}

func (u *ledgerUsecase) GetAll(ctx context.Context) ([]dto.LedgerEntryResponse, error) {
	entries, err := u.ledgerRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list ledger: %+v", err)
		return nil, err
	}
	return converter.LedgerEntriesToResponse(entries), nil
}

func (u *ledgerUsecase) Total(ctx context.Context) (*dto.LedgerTotalResponse, error) {
	total, err := u.ledgerRepo.Sum(ctx)
	if err != nil {
		u.log.Warnf("Failed to sum ledger: %+v", err)
		return nil, err
	}
	return &dto.LedgerTotalResponse{Total: total}, nil
}
