package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legalfees/tariffengine/internal/domain"
)

var tolerance = decimal.RequireFromString("0.01")

func assertClose(t *testing.T, expected string, got decimal.Decimal, label string) {
	t.Helper()
	want := decimal.RequireFromString(expected)
	diff := got.Sub(want).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance),
		"%s: expected %s, got %s (diff %s)", label, expected, got, diff)
}

func TestSMMBothIncluded(t *testing.T) {
	solver := NewSMMGrossUpSolver()
	r, err := solver.Solve(domain.SMMInput{
		Amount:              decimal.RequireFromString("4520.00"),
		VATIncluded:         true,
		WithholdingIncluded: true,
	})
	require.NoError(t, err)

	assertClose(t, "3766.67", r.LegalPerson.Gross, "gross")
	assertClose(t, "753.33", r.LegalPerson.VAT, "vat")
	assertClose(t, "753.33", r.LegalPerson.Withholding, "withholding")
	assertClose(t, "3013.33", r.LegalPerson.Net, "net")
	assertClose(t, "3766.67", r.LegalPerson.Collected, "collected")
}

func TestSMMInvariantsHoldInEveryMode(t *testing.T) {
	solver := NewSMMGrossUpSolver()
	amount := decimal.RequireFromString("1234.56")

	modes := []struct {
		name    string
		vat, wh bool
	}{
		{"vat included withholding included", true, true},
		{"vat included withholding excluded", true, false},
		{"vat excluded withholding included", false, true},
		{"vat excluded withholding excluded", false, false},
	}

	for _, mode := range modes {
		t.Run(mode.name, func(t *testing.T) {
			r, err := solver.Solve(domain.SMMInput{
				Amount:              amount,
				VATIncluded:         mode.vat,
				WithholdingIncluded: mode.wh,
			})
			require.NoError(t, err)

			for _, col := range []domain.SMMColumn{r.LegalPerson, r.RealPerson} {
				// net + withholding = gross
				assert.True(t, col.Net.Add(col.Withholding).Equal(col.Gross),
					"net %s + withholding %s != gross %s", col.Net, col.Withholding, col.Gross)
				// gross + VAT = VAT-inclusive total
				assert.True(t, col.Gross.Add(col.VAT).Equal(col.Gross.Mul(decimal.RequireFromString("1.2"))),
					"gross %s + vat %s is not the VAT-inclusive total", col.Gross, col.VAT)
			}
		})
	}
}

func TestSMMModeFormulas(t *testing.T) {
	solver := NewSMMGrossUpSolver()
	amount := decimal.NewFromInt(1200)

	tests := []struct {
		name          string
		vat, wh       bool
		expectedGross string
	}{
		{"both included backs out VAT", true, true, "1000"},
		// At equal 20/20 rates the withholding removed and the VAT
		// added cancel out.
		{"vat included withholding excluded", true, false, "1200"},
		{"vat excluded withholding included is the gross itself", false, true, "1200"},
		{"vat excluded withholding excluded grosses up the net", false, false, "1500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := solver.Solve(domain.SMMInput{
				Amount:              amount,
				VATIncluded:         tt.vat,
				WithholdingIncluded: tt.wh,
			})
			require.NoError(t, err)
			assertClose(t, tt.expectedGross, r.LegalPerson.Gross, "gross")
		})
	}
}

func TestSMMRealPersonColumnHasNoWithholding(t *testing.T) {
	solver := NewSMMGrossUpSolver()
	r, err := solver.Solve(domain.SMMInput{
		Amount:      decimal.NewFromInt(1200),
		VATIncluded: true,
	})
	require.NoError(t, err)

	assert.True(t, r.RealPerson.Withholding.IsZero())
	assert.True(t, r.RealPerson.Net.Equal(r.RealPerson.Gross))
	assertClose(t, "1000", r.RealPerson.Gross, "gross")
	assertClose(t, "1200", r.RealPerson.Collected, "collected")
}

func TestSMMRejectsNonPositiveAmount(t *testing.T) {
	solver := NewSMMGrossUpSolver()
	_, err := solver.Solve(domain.SMMInput{Amount: decimal.Zero})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.CodeAmountOutOfRange, verr.Code)
}
