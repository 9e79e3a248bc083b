package tariff

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
)

// Year2024 builds the 2024 mediation fee schedule (officially published).
func Year2024() Schedule {
	s := &baseSchedule{
		year:      2024,
		finalized: true,
		hourly: map[domain.DisputeCategory]decimal.Decimal{
			domain.CategoryWorkerEmployer:         amt(785),
			domain.CategoryCommercial:             amt(1150),
			domain.CategoryConsumer:               amt(785),
			domain.CategoryRent:                   amt(835),
			domain.CategoryNeighbor:               amt(835),
			domain.CategoryCondominium:            amt(835),
			domain.CategoryFamily:                 amt(785),
			domain.CategoryPartnershipDissolution: amt(900),
			domain.CategoryAgriculturalProduction: amt(785),
			domain.CategoryOther:                  amt(785),
		},
		// Tiers: up to 2 parties, 3-5, 6-10, 11 and more.
		partyThresholds: []int{2, 5, 10, domain.MaxPartyCount},
		fixed: map[domain.DisputeCategory][]decimal.Decimal{
			domain.CategoryWorkerEmployer:         {amt(785), amt(835), amt(880), amt(920)},
			domain.CategoryCommercial:             {amt(1150), amt(1200), amt(1250), amt(1300)},
			domain.CategoryConsumer:               {amt(785), amt(835), amt(880), amt(920)},
			domain.CategoryRent:                   {amt(835), amt(880), amt(920), amt(960)},
			domain.CategoryNeighbor:               {amt(835), amt(880), amt(920), amt(960)},
			domain.CategoryCondominium:            {amt(835), amt(880), amt(920), amt(960)},
			domain.CategoryFamily:                 {amt(785), amt(835), amt(880), amt(920)},
			domain.CategoryPartnershipDissolution: {amt(900), amt(950), amt(1000), amt(1050)},
			domain.CategoryAgriculturalProduction: {amt(785), amt(835), amt(880), amt(920)},
			domain.CategoryOther:                  {amt(785), amt(835), amt(880), amt(920)},
		},
		minimums: map[domain.MinimumFeeClass]decimal.Decimal{
			domain.MinimumClassGeneral:    amt(6000),
			domain.MinimumClassCommercial: amt(9000),
		},
		commercialClass: map[domain.DisputeCategory]bool{
			domain.CategoryCommercial: true,
		},
		brackets: []Bracket{
			{Limit: amt(300_000), Rate: rate(0.06)},
			{Limit: amt(780_000), Rate: rate(0.05)},
			{Limit: amt(1_560_000), Rate: rate(0.04)},
			{Limit: amt(3_120_000), Rate: rate(0.03)},
			{Limit: amt(7_800_000), Rate: rate(0.02)},
			{Limit: amt(14_040_000), Rate: rate(0.015)},
			{Limit: amt(26_520_000), Rate: rate(0.01)},
			{Limit: amt(53_040_000), Rate: rate(0.005)},
			{Limit: decimal.Zero, Rate: rate(0.0025)}, // unbounded
		},
		minimumHours: 2,
	}
	s.validate()
	return s
}
