package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/tariff"
)

func newReinstatement() *ReinstatementFeeCalculator {
	return NewReinstatementFeeCalculator(tariff.NewRegistry())
}

func TestReinstatementAgreementSumsAmountsBeforeBrackets(t *testing.T) {
	calc := newReinstatement()
	r, err := calc.Calculate(domain.ReinstatementInput{
		Agreement:            true,
		NonReinstatementComp: decimal.NewFromInt(200_000),
		IdlePeriodWage:       decimal.NewFromInt(40_000),
		OtherRights:          decimal.NewFromInt(10_000),
		Year:                 2025,
	})
	require.NoError(t, err)
	// 250,000 falls inside the first band: 250,000 * 0.06.
	assert.True(t, r.Fee.Equal(decimal.NewFromInt(15_000)), "got %s", r.Fee)
	assert.True(t, r.Breakdown.BaseAmount.Equal(decimal.NewFromInt(250_000)))
	assert.False(t, r.Breakdown.FloorApplied)
}

func TestReinstatementAgreementFloorsAtGeneralMinimum(t *testing.T) {
	calc := newReinstatement()
	r, err := calc.Calculate(domain.ReinstatementInput{
		Agreement:            true,
		NonReinstatementComp: decimal.NewFromInt(50_000),
		IdlePeriodWage:       decimal.NewFromInt(10_000),
		Year:                 2025,
	})
	require.NoError(t, err)
	// 60,000 * 0.06 = 3,600 is below the 9,000 minimum.
	assert.True(t, r.Fee.Equal(decimal.NewFromInt(9_000)), "got %s", r.Fee)
	assert.True(t, r.Breakdown.FloorApplied)
}

func TestReinstatementNoAgreementUsesWorkerEmployerTier(t *testing.T) {
	calc := newReinstatement()

	tests := []struct {
		name       string
		partyCount int
		expected   string
	}{
		{"two parties", 2, "2350"},   // 1175 * 2
		{"six parties", 6, "2640"},   // 1320 * 2
		{"twelve parties", 12, "2760"}, // 1380 * 2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := calc.Calculate(domain.ReinstatementInput{
				Agreement:  false,
				PartyCount: tt.partyCount,
				Year:       2025,
			})
			require.NoError(t, err)
			assert.True(t, r.Fee.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, r.Fee)
		})
	}
}

func TestReinstatementValidation(t *testing.T) {
	reg := tariff.NewRegistry()

	err := domain.ReinstatementInput{
		Agreement:      true,
		IdlePeriodWage: decimal.NewFromInt(10_000),
		Year:           2025,
	}.Validate(reg)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.CodeAmountOutOfRange, verr.Code)

	err = domain.ReinstatementInput{Agreement: false, PartyCount: 1, Year: 2025}.Validate(reg)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.CodePartyCountOutOfRange, verr.Code)
}
