package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/tariff"
)

// ReinstatementFeeCalculator computes the labor-law reinstatement
// mediation fee. It always runs on the worker-employer category's data.
type ReinstatementFeeCalculator struct {
	Registry *tariff.Registry
}

// NewReinstatementFeeCalculator creates a reinstatement fee calculator
// over the given registry.
func NewReinstatementFeeCalculator(reg *tariff.Registry) *ReinstatementFeeCalculator {
	return &ReinstatementFeeCalculator{Registry: reg}
}

// Calculate computes the fee for a validated input.
func (c *ReinstatementFeeCalculator) Calculate(in domain.ReinstatementInput) (*domain.ReinstatementResult, error) {
	sched, ok := c.Registry.Lookup(in.Year)
	if !ok {
		return nil, domain.UnsupportedYearError("year")
	}

	result := &domain.ReinstatementResult{Input: in, Estimated: !sched.Finalized()}
	bd := &result.Breakdown

	if !in.Agreement {
		fixed := sched.FixedFee(domain.CategoryWorkerEmployer, in.PartyCount)
		hours := decimal.NewFromInt(int64(sched.MinimumHours()))
		result.Fee = fixed.Mul(hours)

		bd.FixedFeeUsed = fixed
		bd.HourlyRateUsed = sched.HourlyRate(domain.CategoryWorkerEmployer)
		bd.AddStep("breakdown.fixed_fee_tier", fixed)
		bd.AddStep("breakdown.minimum_hours", hours)
		bd.AddStep("breakdown.fee", result.Fee)
		return result, nil
	}

	total := in.NonReinstatementComp.Add(in.IdlePeriodWage).Add(in.OtherRights)
	raw := ProgressiveFee(total, sched.Brackets())
	minimum := sched.MinimumFee(domain.MinimumClassGeneral)
	fee, floored := applyFloor(raw, minimum)

	result.Fee = fee
	bd.BaseAmount = total
	bd.BracketTotal = raw
	bd.MinimumFee = minimum
	bd.FloorApplied = floored
	bd.AddStep("breakdown.total_agreement_amount", total)
	bd.AddStep("breakdown.bracket_total", raw)
	if floored {
		bd.AddStep("breakdown.minimum_applied", minimum)
	}
	bd.AddStep("breakdown.fee", fee)
	return result, nil
}
