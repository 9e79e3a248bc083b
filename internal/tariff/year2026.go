package tariff

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
)

// Year2026 builds the 2026 mediation fee schedule. The official tariff is
// not yet published; these figures are revaluation estimates and results
// computed under them are marked as such.
func Year2026() Schedule {
	s := &baseSchedule{
		year:      2026,
		finalized: false,
		hourly: map[domain.DisputeCategory]decimal.Decimal{
			domain.CategoryWorkerEmployer:         amt(1530),
			domain.CategoryCommercial:             amt(2250),
			domain.CategoryConsumer:               amt(1530),
			domain.CategoryRent:                   amt(1625),
			domain.CategoryNeighbor:               amt(1625),
			domain.CategoryCondominium:            amt(1625),
			domain.CategoryFamily:                 amt(1530),
			domain.CategoryPartnershipDissolution: amt(1755),
			domain.CategoryAgriculturalProduction: amt(1530),
			domain.CategoryOther:                  amt(1530),
		},
		partyThresholds: []int{2, 5, 10, domain.MaxPartyCount},
		fixed: map[domain.DisputeCategory][]decimal.Decimal{
			domain.CategoryWorkerEmployer:         {amt(1530), amt(1625), amt(1715), amt(1795)},
			domain.CategoryCommercial:             {amt(2250), amt(2340), amt(2440), amt(2535)},
			domain.CategoryConsumer:               {amt(1530), amt(1625), amt(1715), amt(1795)},
			domain.CategoryRent:                   {amt(1625), amt(1715), amt(1795), amt(1870)},
			domain.CategoryNeighbor:               {amt(1625), amt(1715), amt(1795), amt(1870)},
			domain.CategoryCondominium:            {amt(1625), amt(1715), amt(1795), amt(1870)},
			domain.CategoryFamily:                 {amt(1530), amt(1625), amt(1715), amt(1795)},
			domain.CategoryPartnershipDissolution: {amt(1755), amt(1845), amt(1950), amt(2050)},
			domain.CategoryAgriculturalProduction: {amt(1530), amt(1625), amt(1715), amt(1795)},
			domain.CategoryOther:                  {amt(1530), amt(1625), amt(1715), amt(1795)},
		},
		minimums: map[domain.MinimumFeeClass]decimal.Decimal{
			domain.MinimumClassGeneral:    amt(12000),
			domain.MinimumClassCommercial: amt(18000),
		},
		commercialClass: map[domain.DisputeCategory]bool{
			domain.CategoryCommercial:             true,
			domain.CategoryPartnershipDissolution: true,
		},
		brackets: []Bracket{
			{Limit: amt(585_000), Rate: rate(0.06)},
			{Limit: amt(1_520_000), Rate: rate(0.05)},
			{Limit: amt(3_040_000), Rate: rate(0.04)},
			{Limit: amt(6_080_000), Rate: rate(0.03)},
			{Limit: amt(15_210_000), Rate: rate(0.02)},
			{Limit: amt(27_380_000), Rate: rate(0.015)},
			{Limit: amt(51_710_000), Rate: rate(0.01)},
			{Limit: amt(103_430_000), Rate: rate(0.005)},
			{Limit: decimal.Zero, Rate: rate(0.0025)}, // unbounded
		},
		minimumHours: 2,
	}
	s.validate()
	return s
}
