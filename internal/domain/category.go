package domain

// DisputeCategory is the legal subject-matter classification of a dispute.
// Every lookup table in the tariff package is keyed by this type.
type DisputeCategory string

const (
	CategoryWorkerEmployer         DisputeCategory = "worker_employer"
	CategoryCommercial             DisputeCategory = "commercial"
	CategoryConsumer               DisputeCategory = "consumer"
	CategoryRent                   DisputeCategory = "rent"
	CategoryNeighbor               DisputeCategory = "neighbor"
	CategoryCondominium            DisputeCategory = "condominium"
	CategoryFamily                 DisputeCategory = "family"
	CategoryPartnershipDissolution DisputeCategory = "partnership_dissolution"
	CategoryAgriculturalProduction DisputeCategory = "agricultural_production"
	CategoryOther                  DisputeCategory = "other"
)

// AllCategories lists every recognized dispute category.
var AllCategories = []DisputeCategory{
	CategoryWorkerEmployer,
	CategoryCommercial,
	CategoryConsumer,
	CategoryRent,
	CategoryNeighbor,
	CategoryCondominium,
	CategoryFamily,
	CategoryPartnershipDissolution,
	CategoryAgriculturalProduction,
	CategoryOther,
}

// Valid reports whether c belongs to the closed category set.
func (c DisputeCategory) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// MinimumFeeClass selects which minimum-fee row of a schedule applies.
// Commercial disputes (and in some tariff years partnership-dissolution
// disputes) carry a higher agreement minimum than the general row.
type MinimumFeeClass string

const (
	MinimumClassGeneral    MinimumFeeClass = "general"
	MinimumClassCommercial MinimumFeeClass = "commercial"
)

// CourtType identifies the court whose tariff row applies to a
// non-monetary attorney fee.
type CourtType string

const (
	CourtCivilPeace         CourtType = "civil_peace"
	CourtCivilFirstInstance CourtType = "civil_first_instance"
	CourtConsumer           CourtType = "consumer"
	CourtLabor              CourtType = "labor"
	CourtCommercial         CourtType = "commercial"
	CourtAdministrative     CourtType = "administrative"
)

// AllCourtTypes lists every recognized court type.
var AllCourtTypes = []CourtType{
	CourtCivilPeace,
	CourtCivilFirstInstance,
	CourtConsumer,
	CourtLabor,
	CourtCommercial,
	CourtAdministrative,
}

// Valid reports whether t belongs to the closed court-type set.
func (t CourtType) Valid() bool {
	for _, known := range AllCourtTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SerialDisputeKind splits serial-dispute batches by per-file pricing.
type SerialDisputeKind string

const (
	SerialCommercial    SerialDisputeKind = "commercial"
	SerialNonCommercial SerialDisputeKind = "non_commercial"
)

// Valid reports whether k belongs to the closed serial-kind set.
func (k SerialDisputeKind) Valid() bool {
	return k == SerialCommercial || k == SerialNonCommercial
}

// TenancyFeeMode selects which statute's arithmetic a tenancy calculation
// runs under.
type TenancyFeeMode string

const (
	TenancyAttorneyMode  TenancyFeeMode = "attorney"
	TenancyMediationMode TenancyFeeMode = "mediation"
)

// Valid reports whether m belongs to the closed mode set.
func (m TenancyFeeMode) Valid() bool {
	return m == TenancyAttorneyMode || m == TenancyMediationMode
}
