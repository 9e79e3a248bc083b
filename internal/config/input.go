package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/legalfees/tariffengine/internal/domain"
)

// CalculationKind names the calculator a request file drives.
type CalculationKind string

const (
	KindMediation      CalculationKind = "mediation"
	KindAttorney       CalculationKind = "attorney"
	KindReinstatement  CalculationKind = "reinstatement"
	KindSerialDisputes CalculationKind = "serial_disputes"
	KindTenancy        CalculationKind = "tenancy"
	KindSMM            CalculationKind = "smm"
)

// CalculationRequest is the YAML shape of a request file. Exactly the
// section matching Calculation must be present.
type CalculationRequest struct {
	Calculation   CalculationKind       `yaml:"calculation"`
	Mediation     *MediationRequest     `yaml:"mediation,omitempty"`
	Attorney      *AttorneyRequest      `yaml:"attorney,omitempty"`
	Reinstatement *ReinstatementRequest `yaml:"reinstatement,omitempty"`
	Serial        *SerialRequest        `yaml:"serial_disputes,omitempty"`
	Tenancy       *TenancyRequest       `yaml:"tenancy,omitempty"`
	SMM           *SMMRequest           `yaml:"smm,omitempty"`
}

// MediationRequest mirrors domain.MediationInput in YAML form.
type MediationRequest struct {
	Category      string          `yaml:"category"`
	Monetary      bool            `yaml:"monetary"`
	Agreement     bool            `yaml:"agreement"`
	DisputeAmount decimal.Decimal `yaml:"dispute_amount"`
	PartyCount    int             `yaml:"party_count"`
	Year          int             `yaml:"year"`
}

// ToInput converts the request to the engine's input record.
func (r *MediationRequest) ToInput() domain.MediationInput {
	return domain.MediationInput{
		Category:      domain.DisputeCategory(r.Category),
		Monetary:      r.Monetary,
		Agreement:     r.Agreement,
		DisputeAmount: r.DisputeAmount,
		PartyCount:    r.PartyCount,
		Year:          r.Year,
	}
}

// AttorneyRequest mirrors domain.AttorneyInput in YAML form.
type AttorneyRequest struct {
	Monetary        bool            `yaml:"monetary"`
	Agreement       bool            `yaml:"agreement"`
	AgreementAmount decimal.Decimal `yaml:"agreement_amount"`
	Court           string          `yaml:"court"`
	Year            int             `yaml:"year"`
}

// ToInput converts the request to the engine's input record.
func (r *AttorneyRequest) ToInput() domain.AttorneyInput {
	return domain.AttorneyInput{
		Monetary:        r.Monetary,
		Agreement:       r.Agreement,
		AgreementAmount: r.AgreementAmount,
		Court:           domain.CourtType(r.Court),
		Year:            r.Year,
	}
}

// ReinstatementRequest mirrors domain.ReinstatementInput in YAML form.
type ReinstatementRequest struct {
	Agreement            bool            `yaml:"agreement"`
	NonReinstatementComp decimal.Decimal `yaml:"non_reinstatement_compensation"`
	IdlePeriodWage       decimal.Decimal `yaml:"idle_period_wage"`
	OtherRights          decimal.Decimal `yaml:"other_rights"`
	PartyCount           int             `yaml:"party_count"`
	Year                 int             `yaml:"year"`
}

// ToInput converts the request to the engine's input record.
func (r *ReinstatementRequest) ToInput() domain.ReinstatementInput {
	return domain.ReinstatementInput{
		Agreement:            r.Agreement,
		NonReinstatementComp: r.NonReinstatementComp,
		IdlePeriodWage:       r.IdlePeriodWage,
		OtherRights:          r.OtherRights,
		PartyCount:           r.PartyCount,
		Year:                 r.Year,
	}
}

// SerialRequest mirrors domain.SerialDisputesInput in YAML form.
type SerialRequest struct {
	Kind      string `yaml:"kind"`
	FileCount int    `yaml:"file_count"`
	Year      int    `yaml:"year"`
}

// ToInput converts the request to the engine's input record.
func (r *SerialRequest) ToInput() domain.SerialDisputesInput {
	return domain.SerialDisputesInput{
		Kind:      domain.SerialDisputeKind(r.Kind),
		FileCount: r.FileCount,
		Year:      r.Year,
	}
}

// TenancyRequest mirrors domain.TenancyInput in YAML form. A sub-amount
// is selected by being present and positive.
type TenancyRequest struct {
	Mode                    string          `yaml:"mode"`
	EvictionAmount          decimal.Decimal `yaml:"eviction_amount"`
	RentDeterminationAmount decimal.Decimal `yaml:"rent_determination_amount"`
	Year                    int             `yaml:"year"`
}

// ToInput converts the request to the engine's input record.
func (r *TenancyRequest) ToInput() domain.TenancyInput {
	return domain.TenancyInput{
		Mode:                     domain.TenancyFeeMode(r.Mode),
		IncludeEviction:          !r.EvictionAmount.IsZero(),
		EvictionAmount:           r.EvictionAmount,
		IncludeRentDetermination: !r.RentDeterminationAmount.IsZero(),
		RentDeterminationAmount:  r.RentDeterminationAmount,
		Year:                     r.Year,
	}
}

// SMMRequest mirrors domain.SMMInput in YAML form.
type SMMRequest struct {
	Amount              decimal.Decimal `yaml:"amount"`
	VATIncluded         bool            `yaml:"vat_included"`
	WithholdingIncluded bool            `yaml:"withholding_included"`
}

// ToInput converts the request to the engine's input record.
func (r *SMMRequest) ToInput() domain.SMMInput {
	return domain.SMMInput{
		Amount:              r.Amount,
		VATIncluded:         r.VATIncluded,
		WithholdingIncluded: r.WithholdingIncluded,
	}
}

// InputParser handles parsing of calculation request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation request from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and structurally validates a request document.
func (ip *InputParser) Parse(data []byte) (*CalculationRequest, error) {
	var req CalculationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.validate(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

// validate checks the request names a known calculation and carries the
// matching section. Field-level validation belongs to the input records.
func (ip *InputParser) validate(req *CalculationRequest) error {
	switch req.Calculation {
	case KindMediation:
		if req.Mediation == nil {
			return fmt.Errorf("mediation section is required")
		}
	case KindAttorney:
		if req.Attorney == nil {
			return fmt.Errorf("attorney section is required")
		}
	case KindReinstatement:
		if req.Reinstatement == nil {
			return fmt.Errorf("reinstatement section is required")
		}
	case KindSerialDisputes:
		if req.Serial == nil {
			return fmt.Errorf("serial_disputes section is required")
		}
	case KindTenancy:
		if req.Tenancy == nil {
			return fmt.Errorf("tenancy section is required")
		}
	case KindSMM:
		if req.SMM == nil {
			return fmt.Errorf("smm section is required")
		}
	case "":
		return fmt.Errorf("calculation is required")
	default:
		return fmt.Errorf("unknown calculation %q", req.Calculation)
	}
	return nil
}
