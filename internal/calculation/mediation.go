package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/tariff"
)

// MediationFeeCalculator computes the general mediation fee for
// monetary/non-monetary disputes with or without agreement.
type MediationFeeCalculator struct {
	Registry *tariff.Registry
}

// NewMediationFeeCalculator creates a mediation fee calculator over the
// given registry.
func NewMediationFeeCalculator(reg *tariff.Registry) *MediationFeeCalculator {
	return &MediationFeeCalculator{Registry: reg}
}

// Calculate computes the fee for a validated input. The caller is
// expected to have run in.Validate first; only the year lookup is
// re-checked here to keep table access in range.
func (c *MediationFeeCalculator) Calculate(in domain.MediationInput) (*domain.MediationResult, error) {
	sched, ok := c.Registry.Lookup(in.Year)
	if !ok {
		return nil, domain.UnsupportedYearError("year")
	}

	result := &domain.MediationResult{Input: in, Estimated: !sched.Finalized()}
	bd := &result.Breakdown

	if !in.Monetary || !in.Agreement {
		// Statutory minimum session length: fixed fee per hour, tiered
		// by party count, times the minimum hours.
		fixed := sched.FixedFee(in.Category, in.PartyCount)
		hours := decimal.NewFromInt(int64(sched.MinimumHours()))
		result.Fee = fixed.Mul(hours)

		bd.FixedFeeUsed = fixed
		bd.HourlyRateUsed = sched.HourlyRate(in.Category)
		bd.AddStep("breakdown.fixed_fee_tier", fixed)
		bd.AddStep("breakdown.minimum_hours", hours)
		bd.AddStep("breakdown.fee", result.Fee)
		return result, nil
	}

	raw := ProgressiveFee(in.DisputeAmount, sched.Brackets())
	minimum := sched.MinimumFee(sched.MinimumClassFor(in.Category))

	fee, floored := applyFloor(raw, minimum)
	// The agreement fee may not exceed the principal claim.
	fee, capped := applyCeiling(fee, in.DisputeAmount)

	result.Fee = fee
	bd.BaseAmount = in.DisputeAmount
	bd.BracketTotal = raw
	bd.MinimumFee = minimum
	bd.FloorApplied = floored
	bd.CeilingApplied = capped
	bd.AddStep("breakdown.dispute_amount", in.DisputeAmount)
	bd.AddStep("breakdown.bracket_total", raw)
	if floored {
		bd.AddStep("breakdown.minimum_applied", minimum)
	}
	if capped {
		bd.AddStep("breakdown.ceiling_applied", in.DisputeAmount)
	}
	bd.AddStep("breakdown.fee", fee)
	return result, nil
}
