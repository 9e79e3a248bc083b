package output

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalfees/tariffengine/internal/calculation"
	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/tariff"
)

func mediationResult(t *testing.T) *domain.MediationResult {
	t.Helper()
	calc := calculation.NewMediationFeeCalculator(tariff.NewRegistry())
	r, err := calc.Calculate(domain.MediationInput{
		Category:   domain.CategoryWorkerEmployer,
		PartyCount: 2,
		Year:       2025,
	})
	require.NoError(t, err)
	return r
}

func TestConsoleFormatterMediation(t *testing.T) {
	out := NewConsoleFormatter().FormatMediation(mediationResult(t))

	assert.Contains(t, out, "Mediation Fee")
	assert.Contains(t, out, "Tariff year: 2025")
	assert.Contains(t, out, "Category: worker_employer")
	assert.Contains(t, out, "Fee: 2350.00 TL")
}

func TestConsoleFormatterMarksEstimatedYears(t *testing.T) {
	calc := calculation.NewMediationFeeCalculator(tariff.NewRegistry())
	r, err := calc.Calculate(domain.MediationInput{
		Category:   domain.CategoryOther,
		PartyCount: 2,
		Year:       2026,
	})
	require.NoError(t, err)

	out := NewConsoleFormatter().FormatMediation(r)
	assert.Contains(t, out, "estimates")
}

func TestConsoleFormatterSMMColumns(t *testing.T) {
	solver := calculation.NewSMMGrossUpSolver()
	r, err := solver.Solve(domain.SMMInput{
		Amount:              decimal.NewFromInt(1200),
		VATIncluded:         true,
		WithholdingIncluded: true,
	})
	require.NoError(t, err)

	out := NewConsoleFormatter().FormatSMM(r)
	assert.Contains(t, out, "Legal person")
	assert.Contains(t, out, "Real person")
	assert.Contains(t, out, "Withholding")
	assert.Contains(t, out, "1000.00 TL")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	jf := &JSONFormatter{Pretty: true}
	s, err := jf.Format(mediationResult(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &decoded))
	assert.Contains(t, decoded, "fee")
	assert.Contains(t, decoded, "breakdown")
	assert.Contains(t, s, "2350")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1234.50 TL", FormatCurrency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "0.00 TL", FormatCurrency(decimal.Zero))
}
