package tariff

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
)

// serialRates is one year's per-file prices for serial-dispute batches.
type serialRates struct {
	finalized     bool
	commercial    decimal.Decimal
	nonCommercial decimal.Decimal
}

var serialRateTable = map[int]serialRates{
	2024: {finalized: true, commercial: amt(5000), nonCommercial: amt(3000)},
	2025: {finalized: true, commercial: amt(7500), nonCommercial: amt(4500)},
	2026: {finalized: false, commercial: amt(9750), nonCommercial: amt(5850)},
}

// SerialRate returns the per-file rate for a dispute kind and year and
// whether the year's figures are finalized.
func SerialRate(kind domain.SerialDisputeKind, year int) (perFile decimal.Decimal, finalized, ok bool) {
	rates, ok := serialRateTable[year]
	if !ok {
		return decimal.Zero, false, false
	}
	if kind == domain.SerialCommercial {
		return rates.commercial, rates.finalized, true
	}
	return rates.nonCommercial, rates.finalized, true
}

// SerialYearSupported reports whether the serial-rate table covers year.
func SerialYearSupported(year int) bool {
	_, ok := serialRateTable[year]
	return ok
}
