package domain

import (
	"github.com/shopspring/decimal"
)

// BreakdownStep is one human-readable line of a calculation trace.
// Label is a stable message key; the presentation layer localizes it.
type BreakdownStep struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// Breakdown carries every intermediate figure of a fee calculation so a
// presentation layer can re-display the result without recomputation.
type Breakdown struct {
	Steps          []BreakdownStep `json:"steps"`
	BaseAmount     decimal.Decimal `json:"base_amount"`
	BracketTotal   decimal.Decimal `json:"bracket_total"`
	FixedFeeUsed   decimal.Decimal `json:"fixed_fee_used"`
	HourlyRateUsed decimal.Decimal `json:"hourly_rate_used"`
	MinimumFee     decimal.Decimal `json:"minimum_fee"`
	FloorApplied   bool            `json:"floor_applied"`
	CeilingApplied bool            `json:"ceiling_applied"`
}

// AddStep appends one labeled value to the trace.
func (b *Breakdown) AddStep(label string, value decimal.Decimal) {
	b.Steps = append(b.Steps, BreakdownStep{Label: label, Value: value})
}

// MediationResult is the outcome of a general mediation fee calculation.
// Estimated is set when the governing tariff year is not yet finalized.
type MediationResult struct {
	Input     MediationInput  `json:"input"`
	Fee       decimal.Decimal `json:"fee"`
	Estimated bool            `json:"estimated"`
	Breakdown Breakdown       `json:"breakdown"`
}

// AttorneyResult is the outcome of a statutory minimum attorney fee
// calculation.
type AttorneyResult struct {
	Input     AttorneyInput   `json:"input"`
	Fee       decimal.Decimal `json:"fee"`
	Estimated bool            `json:"estimated"`
	Breakdown Breakdown       `json:"breakdown"`
}

// ReinstatementResult is the outcome of a reinstatement mediation fee
// calculation.
type ReinstatementResult struct {
	Input     ReinstatementInput `json:"input"`
	Fee       decimal.Decimal    `json:"fee"`
	Estimated bool               `json:"estimated"`
	Breakdown Breakdown          `json:"breakdown"`
}

// SerialDisputesResult is the outcome of a serial-disputes fee
// calculation.
type SerialDisputesResult struct {
	Input       SerialDisputesInput `json:"input"`
	Fee         decimal.Decimal     `json:"fee"`
	PerFileRate decimal.Decimal     `json:"per_file_rate"`
	Estimated   bool                `json:"estimated"`
	Breakdown   Breakdown           `json:"breakdown"`
}

// TenancyComponent records one sub-amount's contribution to a tenancy fee.
type TenancyComponent struct {
	Label      string          `json:"label"`
	BaseAmount decimal.Decimal `json:"base_amount"`
	Fee        decimal.Decimal `json:"fee"`
}

// TenancyResult is the outcome of a tenancy fee calculation. PreFloorTotal
// is the combined fee before the single floor pass; FloorApplied records
// whether that floor fired.
type TenancyResult struct {
	Input         TenancyInput       `json:"input"`
	Fee           decimal.Decimal    `json:"fee"`
	PreFloorTotal decimal.Decimal    `json:"pre_floor_total"`
	FloorApplied  bool               `json:"floor_applied"`
	FloorValue    decimal.Decimal    `json:"floor_value"`
	Components    []TenancyComponent `json:"components"`
	Estimated     bool               `json:"estimated"`
	Breakdown     Breakdown          `json:"breakdown"`
}

// SMMColumn is one payer category's decomposition of an SMM figure.
type SMMColumn struct {
	Gross       decimal.Decimal `json:"gross"`
	VAT         decimal.Decimal `json:"vat"`
	Withholding decimal.Decimal `json:"withholding"`
	Net         decimal.Decimal `json:"net"`
	Collected   decimal.Decimal `json:"collected"`
}

// SMMResult carries the gross-up decomposition for both payer categories
// side by side. A legal-person payer withholds at source; a real-person
// payer has no withholding obligation.
type SMMResult struct {
	Input       SMMInput  `json:"input"`
	LegalPerson SMMColumn `json:"legal_person"`
	RealPerson  SMMColumn `json:"real_person"`
}
