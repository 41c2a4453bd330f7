package di

import (
	catalogRepository "slotbook/internal/domains/catalog/repository"
	"slotbook/internal/domains/reservation/ledger"
)

// NewLedger builds the process-wide reservation ledger over the catalog.
func NewLedger(catalog catalogRepository.Catalog) *ledger.Ledger {
	return ledger.New(catalog)
}
