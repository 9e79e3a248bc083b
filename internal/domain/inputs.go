package domain

import (
	"github.com/shopspring/decimal"
)

// Statutory bounds shared by the input records.
const (
	MinPartyCount = 2
	MaxPartyCount = 999
	MinFileCount  = 1
	MaxFileCount  = 1000
)

func positive(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero)
}

// MediationInput describes one general mediation fee calculation.
// For non-monetary disputes, and for monetary disputes that ended without
// agreement, DisputeAmount is ignored.
type MediationInput struct {
	Category      DisputeCategory `json:"category"`
	Monetary      bool            `json:"monetary"`
	Agreement     bool            `json:"agreement"`
	DisputeAmount decimal.Decimal `json:"dispute_amount"`
	PartyCount    int             `json:"party_count"`
	Year          int             `json:"year"`
}

// Validate checks the input against the supported-year set and the
// statutory ranges. It must succeed before Calculate is invoked.
func (in MediationInput) Validate(years YearSet) error {
	if !in.Category.Valid() {
		return unknownKeyError("category")
	}
	if !years.IsSupported(in.Year) {
		return UnsupportedYearError("year")
	}
	if in.PartyCount < MinPartyCount || in.PartyCount > MaxPartyCount {
		return partyCountError("party_count")
	}
	if in.Monetary && in.Agreement && !positive(in.DisputeAmount) {
		return amountError("dispute_amount")
	}
	return nil
}

// AttorneyInput describes one statutory minimum attorney fee calculation.
// AgreementAmount is required for monetary disputes that ended with
// agreement; Court is required for non-monetary disputes that ended with
// agreement or without one.
type AttorneyInput struct {
	Monetary        bool            `json:"monetary"`
	Agreement       bool            `json:"agreement"`
	AgreementAmount decimal.Decimal `json:"agreement_amount"`
	Court           CourtType       `json:"court"`
	Year            int             `json:"year"`
}

// Validate checks mode-dependent required fields before calculation.
func (in AttorneyInput) Validate(years YearSet) error {
	if !years.IsSupported(in.Year) {
		return UnsupportedYearError("year")
	}
	if in.Monetary {
		if in.Agreement && !positive(in.AgreementAmount) {
			if in.AgreementAmount.IsZero() {
				return missingFieldError("agreement_amount")
			}
			return amountError("agreement_amount")
		}
		return nil
	}
	if in.Court == "" {
		return missingFieldError("court")
	}
	if !in.Court.Valid() {
		return unknownKeyError("court")
	}
	return nil
}

// ReinstatementInput describes a labor-law reinstatement mediation fee
// calculation. The three amounts only matter when the parties agreed;
// OtherRights may be zero.
type ReinstatementInput struct {
	Agreement            bool            `json:"agreement"`
	NonReinstatementComp decimal.Decimal `json:"non_reinstatement_compensation"`
	IdlePeriodWage       decimal.Decimal `json:"idle_period_wage"`
	OtherRights          decimal.Decimal `json:"other_rights"`
	PartyCount           int             `json:"party_count"`
	Year                 int             `json:"year"`
}

// Validate checks the input ranges for the selected mode.
func (in ReinstatementInput) Validate(years YearSet) error {
	if !years.IsSupported(in.Year) {
		return UnsupportedYearError("year")
	}
	if in.Agreement {
		if !positive(in.NonReinstatementComp) {
			return amountError("non_reinstatement_compensation")
		}
		if !positive(in.IdlePeriodWage) {
			return amountError("idle_period_wage")
		}
		if in.OtherRights.IsNegative() {
			return amountError("other_rights")
		}
		return nil
	}
	if in.PartyCount < MinPartyCount || in.PartyCount > MaxPartyCount {
		return partyCountError("party_count")
	}
	return nil
}

// SerialDisputesInput describes a batch of identical disputes priced
// linearly per file.
type SerialDisputesInput struct {
	Kind      SerialDisputeKind `json:"kind"`
	FileCount int               `json:"file_count"`
	Year      int               `json:"year"`
}

// Validate checks the kind tag, the year, and the closed file-count range.
func (in SerialDisputesInput) Validate(years YearSet) error {
	if !in.Kind.Valid() {
		return unknownKeyError("kind")
	}
	if !years.IsSupported(in.Year) {
		return UnsupportedYearError("year")
	}
	if in.FileCount < MinFileCount || in.FileCount > MaxFileCount {
		return fileCountError("file_count")
	}
	return nil
}

// TenancyInput describes an eviction and/or rent-determination fee
// calculation. At least one sub-amount must be selected; each selected
// amount must independently pass the positive-amount check.
type TenancyInput struct {
	Mode                     TenancyFeeMode  `json:"mode"`
	IncludeEviction          bool            `json:"include_eviction"`
	EvictionAmount           decimal.Decimal `json:"eviction_amount"`
	IncludeRentDetermination bool            `json:"include_rent_determination"`
	RentDeterminationAmount  decimal.Decimal `json:"rent_determination_amount"`
	Year                     int             `json:"year"`
}

// Validate checks the mode tag, the year, and every selected sub-amount.
func (in TenancyInput) Validate(years YearSet) error {
	if !in.Mode.Valid() {
		return unknownKeyError("mode")
	}
	if !years.IsSupported(in.Year) {
		return UnsupportedYearError("year")
	}
	if !in.IncludeEviction && !in.IncludeRentDetermination {
		return missingFieldError("eviction_amount")
	}
	if in.IncludeEviction && !positive(in.EvictionAmount) {
		return amountError("eviction_amount")
	}
	if in.IncludeRentDetermination && !positive(in.RentDeterminationAmount) {
		return amountError("rent_determination_amount")
	}
	return nil
}

// SMMInput describes one self-employment receipt gross-up. The two
// inclusion flags state which taxes are already embedded in Amount.
type SMMInput struct {
	Amount              decimal.Decimal `json:"amount"`
	VATIncluded         bool            `json:"vat_included"`
	WithholdingIncluded bool            `json:"withholding_included"`
}

// Validate checks the entered figure is positive. The solver needs no
// tariff year; its rates are fixed by statute.
func (in SMMInput) Validate() error {
	if !positive(in.Amount) {
		return amountError("amount")
	}
	return nil
}
