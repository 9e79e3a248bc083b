package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubYears is a fixed supported-year set for validation tests.
type stubYears map[int]bool

func (s stubYears) IsSupported(year int) bool { return s[year] }

var years = stubYears{2024: true, 2025: true, 2026: true}

func TestMediationInputValidate(t *testing.T) {
	valid := MediationInput{
		Category:      CategoryCommercial,
		Monetary:      true,
		Agreement:     true,
		DisputeAmount: decimal.NewFromInt(10_000),
		PartyCount:    2,
		Year:          2025,
	}
	assert.NoError(t, valid.Validate(years))

	tests := []struct {
		name     string
		mutate   func(in *MediationInput)
		expected ValidationCode
	}{
		{
			name:     "unknown category",
			mutate:   func(in *MediationInput) { in.Category = "space_law" },
			expected: CodeUnknownKey,
		},
		{
			name:     "unsupported year",
			mutate:   func(in *MediationInput) { in.Year = 2010 },
			expected: CodeUnsupportedYear,
		},
		{
			name:     "single party",
			mutate:   func(in *MediationInput) { in.PartyCount = 1 },
			expected: CodePartyCountOutOfRange,
		},
		{
			name:     "too many parties",
			mutate:   func(in *MediationInput) { in.PartyCount = 1000 },
			expected: CodePartyCountOutOfRange,
		},
		{
			name:     "monetary agreement without amount",
			mutate:   func(in *MediationInput) { in.DisputeAmount = decimal.Zero },
			expected: CodeAmountOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate(years)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expected, verr.Code)
		})
	}
}

func TestMediationAmountIgnoredWithoutAgreement(t *testing.T) {
	in := MediationInput{
		Category:   CategoryRent,
		Monetary:   true,
		Agreement:  false,
		PartyCount: 2,
		Year:       2025,
	}
	assert.NoError(t, in.Validate(years))
}

func TestSMMInputValidate(t *testing.T) {
	assert.NoError(t, SMMInput{Amount: decimal.NewFromInt(100)}.Validate())

	err := SMMInput{Amount: decimal.NewFromInt(-1)}.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeAmountOutOfRange, verr.Code)
}

func TestValidationErrorCarriesMessageKey(t *testing.T) {
	err := MediationInput{Category: "nope", Year: 2025, PartyCount: 2}.Validate(years)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "validation.unknown_enumerated_key", verr.MessageKey)
	assert.Equal(t, "category", verr.Field)
	assert.Contains(t, verr.Error(), "unknown_enumerated_key")
}
