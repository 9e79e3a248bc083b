package calculation

import (
	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/tariff"
)

// AttorneyFeeCalculator computes the statutory minimum attorney fee. It
// runs on its own tariff (bracket table, minimum constants, court fee
// rows), separate from the mediation schedules.
type AttorneyFeeCalculator struct {
	Tariffs *tariff.AttorneyRegistry
}

// NewAttorneyFeeCalculator creates an attorney fee calculator over the
// given tariff registry.
func NewAttorneyFeeCalculator(reg *tariff.AttorneyRegistry) *AttorneyFeeCalculator {
	return &AttorneyFeeCalculator{Tariffs: reg}
}

// Calculate computes the fee for a validated input.
func (c *AttorneyFeeCalculator) Calculate(in domain.AttorneyInput) (*domain.AttorneyResult, error) {
	t, ok := c.Tariffs.Lookup(in.Year)
	if !ok {
		return nil, domain.UnsupportedYearError("year")
	}

	result := &domain.AttorneyResult{Input: in, Estimated: !t.Finalized()}
	bd := &result.Breakdown

	if in.Monetary {
		if !in.Agreement {
			result.Fee = t.MinimumFee()
			bd.MinimumFee = t.MinimumFee()
			bd.AddStep("breakdown.statutory_minimum", result.Fee)
			return result, nil
		}

		bd.BaseAmount = in.AgreementAmount
		// Small agreements pay the precomputed minimum with the one
		// quarter agreement bonus; the bracket table only engages above
		// the threshold.
		if in.AgreementAmount.LessThanOrEqual(t.MinimumThreshold()) {
			result.Fee = t.MinimumWithBonus()
			bd.MinimumFee = t.MinimumFee()
			bd.FloorApplied = true
			bd.AddStep("breakdown.minimum_with_bonus", result.Fee)
			return result, nil
		}

		raw := ProgressiveFee(in.AgreementAmount, t.Brackets())
		result.Fee = raw.Mul(t.AgreementMultiplier())
		bd.BracketTotal = raw
		bd.AddStep("breakdown.bracket_total", raw)
		bd.AddStep("breakdown.agreement_bonus", result.Fee.Sub(raw))
		bd.AddStep("breakdown.fee", result.Fee)
		return result, nil
	}

	base, withBonus, ok := t.CourtFee(in.Court)
	if !ok {
		return nil, &domain.ValidationError{
			Code:       domain.CodeUnknownKey,
			Field:      "court",
			MessageKey: "validation.unknown_enumerated_key",
		}
	}
	if in.Agreement {
		result.Fee = withBonus
		bd.AddStep("breakdown.court_fee", base)
		bd.AddStep("breakdown.agreement_bonus", withBonus.Sub(base))
	} else {
		result.Fee = base
		bd.AddStep("breakdown.court_fee", base)
	}
	bd.AddStep("breakdown.fee", result.Fee)
	return result, nil
}
