package converter

import (
	"nutriclinic/internal/delivery/dto"
	"nutriclinic/internal/domain/entity"
)

func LedgerEntryToResponse(entry *entity.LedgerEntry) *dto.LedgerEntryResponse {
	if entry == nil {
		return nil
	}

	return &dto.LedgerEntryResponse{
		ID:     entry.ID,
		Date:   entry.EntryDate,
		Amount: entry.Amount,
		Method: entry.Method,
	}
}

func LedgerEntriesToResponse(entries []entity.LedgerEntry) []dto.LedgerEntryResponse {
	responses := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *LedgerEntryToResponse(&entries[i]))
	}
	return responses
}
