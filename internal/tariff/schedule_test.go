package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalfees/tariffengine/internal/domain"
)

func TestRegistrySupportedYears(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []int{2024, 2025, 2026}, reg.Supported())
	assert.True(t, reg.IsSupported(2025))
	assert.False(t, reg.IsSupported(2019))

	_, ok := reg.Lookup(2030)
	assert.False(t, ok)
}

func TestScheduleFinalizationFlags(t *testing.T) {
	assert.True(t, Year2024().Finalized())
	assert.True(t, Year2025().Finalized())
	assert.False(t, Year2026().Finalized())
}

func TestFixedFeeTieringIsTotal(t *testing.T) {
	reg := NewRegistry()
	for _, year := range reg.Supported() {
		sched, _ := reg.Lookup(year)
		for _, cat := range domain.AllCategories {
			for parties := domain.MinPartyCount; parties <= domain.MaxPartyCount; parties++ {
				fee := sched.FixedFee(cat, parties)
				require.True(t, fee.GreaterThan(decimal.Zero),
					"year %d category %s parties %d: non-positive fee", year, cat, parties)
			}
		}
	}
}

func TestFixedFeeTierSelection(t *testing.T) {
	sched := Year2025()

	tests := []struct {
		name     string
		parties  int
		expected string
	}{
		{"two parties first tier", 2, "1175"},
		{"three parties second tier", 3, "1250"},
		{"five parties second tier", 5, "1250"},
		{"six parties third tier", 6, "1320"},
		{"eleven parties last tier", 11, "1380"},
		{"overflow degrades to last tier", 5000, "1380"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := sched.FixedFee(domain.CategoryWorkerEmployer, tt.parties)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, fee)
		})
	}
}

func TestUnknownCategoryFallsBackToOther(t *testing.T) {
	sched := Year2025()
	unknown := domain.DisputeCategory("space_law")

	assert.True(t, sched.HourlyRate(unknown).Equal(sched.HourlyRate(domain.CategoryOther)))
	assert.True(t, sched.FixedFee(unknown, 2).Equal(sched.FixedFee(domain.CategoryOther, 2)))
}

func TestBracketLimitsStrictlyIncrease(t *testing.T) {
	reg := NewRegistry()
	for _, year := range reg.Supported() {
		sched, _ := reg.Lookup(year)
		brackets := sched.Brackets()
		prev := decimal.Zero
		for i, b := range brackets[:len(brackets)-1] {
			require.True(t, b.Limit.GreaterThan(prev),
				"year %d bracket %d limit not increasing", year, i)
			require.False(t, b.Rate.IsNegative())
			prev = b.Limit
		}
	}
}

func TestMinimumClassPerYear(t *testing.T) {
	assert.Equal(t, domain.MinimumClassGeneral, Year2024().MinimumClassFor(domain.CategoryPartnershipDissolution))
	assert.Equal(t, domain.MinimumClassCommercial, Year2025().MinimumClassFor(domain.CategoryPartnershipDissolution))
	assert.Equal(t, domain.MinimumClassCommercial, Year2025().MinimumClassFor(domain.CategoryCommercial))
	assert.Equal(t, domain.MinimumClassGeneral, Year2025().MinimumClassFor(domain.CategoryRent))
}

func TestAttorneyRegistry(t *testing.T) {
	reg := NewAttorneyRegistry()
	assert.Equal(t, []int{2024, 2025, 2026}, reg.Supported())

	tariff2025, ok := reg.Lookup(2025)
	require.True(t, ok)
	assert.True(t, tariff2025.MinimumWithBonus().Equal(decimal.NewFromInt(37_500)))

	base, withBonus, ok := tariff2025.CourtFee(domain.CourtConsumer)
	require.True(t, ok)
	assert.True(t, base.Equal(decimal.NewFromInt(15_000)))
	assert.True(t, withBonus.Equal(decimal.RequireFromString("18750")))

	_, _, ok = tariff2025.CourtFee(domain.CourtType("maritime"))
	assert.False(t, ok)
}

func TestSerialRates(t *testing.T) {
	perFile, finalized, ok := SerialRate(domain.SerialCommercial, 2025)
	require.True(t, ok)
	assert.True(t, finalized)
	assert.True(t, perFile.Equal(decimal.NewFromInt(7_500)))

	perFile, finalized, ok = SerialRate(domain.SerialNonCommercial, 2026)
	require.True(t, ok)
	assert.False(t, finalized)
	assert.True(t, perFile.Equal(decimal.NewFromInt(5_850)))

	_, _, ok = SerialRate(domain.SerialCommercial, 2019)
	assert.False(t, ok)
	assert.False(t, SerialYearSupported(2019))
	assert.True(t, SerialYearSupported(2024))
}
