package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/tariff"
)

var half = decimal.NewFromFloat(0.5)

// TenancyFeeCalculator computes the eviction / rent-determination fee in
// either attorney-fee or mediation-fee mode. Each selected sub-amount
// contributes independently; the single floor pass runs on the combined
// sum and the pre-floor value is recorded.
type TenancyFeeCalculator struct {
	Registry *tariff.Registry
	Tariffs  *tariff.AttorneyRegistry
}

// NewTenancyFeeCalculator creates a tenancy fee calculator over the two
// registries.
func NewTenancyFeeCalculator(reg *tariff.Registry, att *tariff.AttorneyRegistry) *TenancyFeeCalculator {
	return &TenancyFeeCalculator{Registry: reg, Tariffs: att}
}

// Calculate computes the fee for a validated input.
func (c *TenancyFeeCalculator) Calculate(in domain.TenancyInput) (*domain.TenancyResult, error) {
	if in.Mode == domain.TenancyAttorneyMode {
		return c.attorneyMode(in)
	}
	return c.mediationMode(in)
}

// attorneyMode runs each selected sub-amount through the attorney
// monetary-agreement path and floors the combined result against the
// civil peace court minimum, the court the statute names as the floor.
func (c *TenancyFeeCalculator) attorneyMode(in domain.TenancyInput) (*domain.TenancyResult, error) {
	t, ok := c.Tariffs.Lookup(in.Year)
	if !ok {
		return nil, domain.UnsupportedYearError("year")
	}

	result := &domain.TenancyResult{Input: in, Estimated: !t.Finalized()}
	bd := &result.Breakdown

	total := decimal.Zero
	add := func(label string, amount decimal.Decimal) {
		fee := attorneyAgreementFee(t, amount)
		result.Components = append(result.Components, domain.TenancyComponent{
			Label:      label,
			BaseAmount: amount,
			Fee:        fee,
		})
		bd.AddStep(label, fee)
		total = total.Add(fee)
	}
	if in.IncludeEviction {
		add("breakdown.eviction_fee", in.EvictionAmount)
	}
	if in.IncludeRentDetermination {
		add("breakdown.rent_determination_fee", in.RentDeterminationAmount)
	}

	floor, _, _ := t.CourtFee(domain.CourtCivilPeace)
	fee, floored := applyFloor(total, floor)

	result.Fee = fee
	result.PreFloorTotal = total
	result.FloorApplied = floored
	result.FloorValue = floor
	bd.MinimumFee = floor
	bd.FloorApplied = floored
	bd.AddStep("breakdown.combined_total", total)
	if floored {
		bd.AddStep("breakdown.minimum_applied", floor)
	}
	bd.AddStep("breakdown.fee", fee)
	return result, nil
}

// attorneyAgreementFee is the attorney monetary-agreement path for one
// amount: minimum-with-bonus at or below the threshold, bracket total
// with the agreement bonus above it.
func attorneyAgreementFee(t *tariff.AttorneyTariff, amount decimal.Decimal) decimal.Decimal {
	if amount.LessThanOrEqual(t.MinimumThreshold()) {
		return t.MinimumWithBonus()
	}
	return ProgressiveFee(amount, t.Brackets()).Mul(t.AgreementMultiplier())
}

// mediationMode brackets the eviction amount halved (half of one year's
// rent) and the determination amount as entered against the mediation
// brackets, then floors the sum against the agreement minimum.
func (c *TenancyFeeCalculator) mediationMode(in domain.TenancyInput) (*domain.TenancyResult, error) {
	sched, ok := c.Registry.Lookup(in.Year)
	if !ok {
		return nil, domain.UnsupportedYearError("year")
	}

	result := &domain.TenancyResult{Input: in, Estimated: !sched.Finalized()}
	bd := &result.Breakdown

	total := decimal.Zero
	if in.IncludeEviction {
		base := in.EvictionAmount.Mul(half)
		fee := ProgressiveFee(base, sched.Brackets())
		result.Components = append(result.Components, domain.TenancyComponent{
			Label:      "breakdown.eviction_fee",
			BaseAmount: base,
			Fee:        fee,
		})
		bd.AddStep("breakdown.eviction_half_base", base)
		bd.AddStep("breakdown.eviction_fee", fee)
		total = total.Add(fee)
	}
	if in.IncludeRentDetermination {
		fee := ProgressiveFee(in.RentDeterminationAmount, sched.Brackets())
		result.Components = append(result.Components, domain.TenancyComponent{
			Label:      "breakdown.rent_determination_fee",
			BaseAmount: in.RentDeterminationAmount,
			Fee:        fee,
		})
		bd.AddStep("breakdown.rent_determination_fee", fee)
		total = total.Add(fee)
	}

	floor := sched.MinimumFee(domain.MinimumClassGeneral)
	fee, floored := applyFloor(total, floor)

	result.Fee = fee
	result.PreFloorTotal = total
	result.FloorApplied = floored
	result.FloorValue = floor
	bd.MinimumFee = floor
	bd.FloorApplied = floored
	bd.AddStep("breakdown.combined_total", total)
	if floored {
		bd.AddStep("breakdown.minimum_applied", floor)
	}
	bd.AddStep("breakdown.fee", fee)
	return result, nil
}
