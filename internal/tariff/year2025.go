package tariff

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
)

// Year2025 builds the 2025 mediation fee schedule (officially published).
// From 2025 on, partnership-dissolution disputes share the commercial
// minimum-fee row.
func Year2025() Schedule {
	s := &baseSchedule{
		year:      2025,
		finalized: true,
		hourly: map[domain.DisputeCategory]decimal.Decimal{
			domain.CategoryWorkerEmployer:         amt(1175),
			domain.CategoryCommercial:             amt(1725),
			domain.CategoryConsumer:               amt(1175),
			domain.CategoryRent:                   amt(1250),
			domain.CategoryNeighbor:               amt(1250),
			domain.CategoryCondominium:            amt(1250),
			domain.CategoryFamily:                 amt(1175),
			domain.CategoryPartnershipDissolution: amt(1350),
			domain.CategoryAgriculturalProduction: amt(1175),
			domain.CategoryOther:                  amt(1175),
		},
		partyThresholds: []int{2, 5, 10, domain.MaxPartyCount},
		fixed: map[domain.DisputeCategory][]decimal.Decimal{
			domain.CategoryWorkerEmployer:         {amt(1175), amt(1250), amt(1320), amt(1380)},
			domain.CategoryCommercial:             {amt(1725), amt(1800), amt(1875), amt(1950)},
			domain.CategoryConsumer:               {amt(1175), amt(1250), amt(1320), amt(1380)},
			domain.CategoryRent:                   {amt(1250), amt(1320), amt(1380), amt(1440)},
			domain.CategoryNeighbor:               {amt(1250), amt(1320), amt(1380), amt(1440)},
			domain.CategoryCondominium:            {amt(1250), amt(1320), amt(1380), amt(1440)},
			domain.CategoryFamily:                 {amt(1175), amt(1250), amt(1320), amt(1380)},
			domain.CategoryPartnershipDissolution: {amt(1350), amt(1420), amt(1500), amt(1575)},
			domain.CategoryAgriculturalProduction: {amt(1175), amt(1250), amt(1320), amt(1380)},
			domain.CategoryOther:                  {amt(1175), amt(1250), amt(1320), amt(1380)},
		},
		minimums: map[domain.MinimumFeeClass]decimal.Decimal{
			domain.MinimumClassGeneral:    amt(9000),
			domain.MinimumClassCommercial: amt(13500),
		},
		commercialClass: map[domain.DisputeCategory]bool{
			domain.CategoryCommercial:             true,
			domain.CategoryPartnershipDissolution: true,
		},
		brackets: []Bracket{
			{Limit: amt(450_000), Rate: rate(0.06)},
			{Limit: amt(1_170_000), Rate: rate(0.05)},
			{Limit: amt(2_340_000), Rate: rate(0.04)},
			{Limit: amt(4_680_000), Rate: rate(0.03)},
			{Limit: amt(11_700_000), Rate: rate(0.02)},
			{Limit: amt(21_060_000), Rate: rate(0.015)},
			{Limit: amt(39_780_000), Rate: rate(0.01)},
			{Limit: amt(79_560_000), Rate: rate(0.005)},
			{Limit: decimal.Zero, Rate: rate(0.0025)}, // unbounded
		},
		minimumHours: 2,
	}
	s.validate()
	return s
}
