package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/tariff"
)

func newTenancy() *TenancyFeeCalculator {
	return NewTenancyFeeCalculator(tariff.NewRegistry(), tariff.NewAttorneyRegistry())
}

func TestTenancyMediationModeHalvesEviction(t *testing.T) {
	calc := newTenancy()
	r, err := calc.Calculate(domain.TenancyInput{
		Mode:                     domain.TenancyMediationMode,
		IncludeEviction:          true,
		EvictionAmount:           decimal.NewFromInt(240_000),
		IncludeRentDetermination: true,
		RentDeterminationAmount:  decimal.NewFromInt(60_000),
		Year:                     2025,
	})
	require.NoError(t, err)
	// Eviction 240,000 halved to 120,000 -> 7,200; determination
	// 60,000 -> 3,600. The 10,800 sum clears the 9,000 floor.
	assert.True(t, r.Fee.Equal(decimal.NewFromInt(10_800)), "got %s", r.Fee)
	assert.True(t, r.PreFloorTotal.Equal(decimal.NewFromInt(10_800)))
	assert.False(t, r.FloorApplied)
	require.Len(t, r.Components, 2)
	assert.True(t, r.Components[0].BaseAmount.Equal(decimal.NewFromInt(120_000)))
	assert.True(t, r.Components[0].Fee.Equal(decimal.NewFromInt(7_200)))
	assert.True(t, r.Components[1].Fee.Equal(decimal.NewFromInt(3_600)))
}

func TestTenancyMediationModeFloorsCombinedSum(t *testing.T) {
	calc := newTenancy()
	r, err := calc.Calculate(domain.TenancyInput{
		Mode:            domain.TenancyMediationMode,
		IncludeEviction: true,
		EvictionAmount:  decimal.NewFromInt(100_000),
		Year:            2025,
	})
	require.NoError(t, err)
	// 50,000 * 0.06 = 3,000 is below the agreement minimum.
	assert.True(t, r.Fee.Equal(decimal.NewFromInt(9_000)), "got %s", r.Fee)
	assert.True(t, r.PreFloorTotal.Equal(decimal.NewFromInt(3_000)))
	assert.True(t, r.FloorApplied)
	assert.True(t, r.FloorValue.Equal(decimal.NewFromInt(9_000)))
}

func TestTenancyAttorneyModeSmallAmountsUseMinimumWithBonus(t *testing.T) {
	calc := newTenancy()
	r, err := calc.Calculate(domain.TenancyInput{
		Mode:                     domain.TenancyAttorneyMode,
		IncludeEviction:          true,
		EvictionAmount:           decimal.NewFromInt(150_000),
		IncludeRentDetermination: true,
		RentDeterminationAmount:  decimal.NewFromInt(100_000),
		Year:                     2025,
	})
	require.NoError(t, err)
	// Both amounts sit below the 187,500 threshold: 37,500 each.
	assert.True(t, r.Fee.Equal(decimal.NewFromInt(75_000)), "got %s", r.Fee)
	assert.True(t, r.PreFloorTotal.Equal(decimal.NewFromInt(75_000)))
	assert.False(t, r.FloorApplied)
	assert.True(t, r.FloorValue.Equal(decimal.NewFromInt(18_000)))
}

func TestTenancyAttorneyModeBracketsLargeAmounts(t *testing.T) {
	calc := newTenancy()
	r, err := calc.Calculate(domain.TenancyInput{
		Mode:            domain.TenancyAttorneyMode,
		IncludeEviction: true,
		EvictionAmount:  decimal.NewFromInt(600_000),
		Year:            2025,
	})
	require.NoError(t, err)
	// 600,000 * 0.16 = 96,000, with the quarter bonus.
	assert.True(t, r.Fee.Equal(decimal.NewFromInt(120_000)), "got %s", r.Fee)
}

func TestTenancyValidation(t *testing.T) {
	reg := tariff.NewRegistry()

	tests := []struct {
		name     string
		input    domain.TenancyInput
		expected domain.ValidationCode
	}{
		{
			name:     "no sub-amount selected",
			input:    domain.TenancyInput{Mode: domain.TenancyMediationMode, Year: 2025},
			expected: domain.CodeMissingField,
		},
		{
			name: "non-positive eviction amount",
			input: domain.TenancyInput{
				Mode:            domain.TenancyMediationMode,
				IncludeEviction: true,
				EvictionAmount:  decimal.NewFromInt(-1),
				Year:            2025,
			},
			expected: domain.CodeAmountOutOfRange,
		},
		{
			name: "unknown mode",
			input: domain.TenancyInput{
				Mode:            "hybrid",
				IncludeEviction: true,
				EvictionAmount:  decimal.NewFromInt(100),
				Year:            2025,
			},
			expected: domain.CodeUnknownKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate(reg)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expected, verr.Code)
		})
	}
}
