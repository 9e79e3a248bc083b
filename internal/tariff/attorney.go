package tariff

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
)

// AttorneyTariff is one year's statutory minimum attorney fee data. It is
// issued under a different statute than the mediation schedules and keeps
// its own bracket table and constants.
type AttorneyTariff struct {
	year                int
	finalized           bool
	brackets            []Bracket
	minimumFee          decimal.Decimal
	minimumThreshold    decimal.Decimal
	agreementMultiplier decimal.Decimal
	courtFees           map[domain.CourtType]decimal.Decimal
}

func (t *AttorneyTariff) Year() int       { return t.year }
func (t *AttorneyTariff) Finalized() bool { return t.finalized }

// Brackets returns the attorney-statute progressive table.
func (t *AttorneyTariff) Brackets() []Bracket { return t.brackets }

// MinimumFee is the fixed statutory fee for monetary disputes ended
// without agreement.
func (t *AttorneyTariff) MinimumFee() decimal.Decimal { return t.minimumFee }

// MinimumThreshold is the agreement amount at or below which the
// minimum-with-bonus constant applies instead of the bracket table.
func (t *AttorneyTariff) MinimumThreshold() decimal.Decimal { return t.minimumThreshold }

// AgreementMultiplier is the statutory agreement bonus (one quarter on
// top of the base fee).
func (t *AttorneyTariff) AgreementMultiplier() decimal.Decimal { return t.agreementMultiplier }

// MinimumWithBonus is the minimum fee with the agreement bonus applied.
func (t *AttorneyTariff) MinimumWithBonus() decimal.Decimal {
	return t.minimumFee.Mul(t.agreementMultiplier)
}

// CourtFee returns a court type's base fee and its with-bonus value.
func (t *AttorneyTariff) CourtFee(c domain.CourtType) (base, withBonus decimal.Decimal, ok bool) {
	base, ok = t.courtFees[c]
	if !ok {
		return decimal.Zero, decimal.Zero, false
	}
	return base, base.Mul(t.agreementMultiplier), true
}

func (t *AttorneyTariff) validate() {
	if len(t.brackets) == 0 {
		panic(fmt.Sprintf("attorney tariff %d: empty bracket table", t.year))
	}
	prev := decimal.Zero
	for i, b := range t.brackets {
		if i < len(t.brackets)-1 && !b.Limit.GreaterThan(prev) {
			panic(fmt.Sprintf("attorney tariff %d: bracket limits must strictly increase", t.year))
		}
		prev = b.Limit
	}
	if len(t.courtFees) == 0 {
		panic(fmt.Sprintf("attorney tariff %d: empty court fee table", t.year))
	}
}

// AttorneyRegistry holds every supported year's attorney tariff. It
// implements domain.YearSet.
type AttorneyRegistry struct {
	tariffs map[int]*AttorneyTariff
}

// NewAttorneyRegistry builds the registry with every supported year.
func NewAttorneyRegistry() *AttorneyRegistry {
	r := &AttorneyRegistry{tariffs: make(map[int]*AttorneyTariff)}
	for _, t := range []*AttorneyTariff{Attorney2024(), Attorney2025(), Attorney2026()} {
		t.validate()
		r.tariffs[t.year] = t
	}
	return r
}

// IsSupported reports whether the registry holds a tariff for year.
func (r *AttorneyRegistry) IsSupported(year int) bool {
	_, ok := r.tariffs[year]
	return ok
}

// Lookup returns the attorney tariff for year.
func (r *AttorneyRegistry) Lookup(year int) (*AttorneyTariff, bool) {
	t, ok := r.tariffs[year]
	return t, ok
}

// Supported returns the supported years in ascending order.
func (r *AttorneyRegistry) Supported() []int {
	years := make([]int, 0, len(r.tariffs))
	for y := range r.tariffs {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

var quarterBonus = decimal.NewFromFloat(1.25)

// Attorney2024 builds the 2024 attorney minimum fee tariff.
func Attorney2024() *AttorneyTariff {
	return &AttorneyTariff{
		year:      2024,
		finalized: true,
		brackets: []Bracket{
			{Limit: amt(400_000), Rate: rate(0.16)},
			{Limit: amt(800_000), Rate: rate(0.15)},
			{Limit: amt(1_600_000), Rate: rate(0.14)},
			{Limit: amt(2_800_000), Rate: rate(0.11)},
			{Limit: amt(4_400_000), Rate: rate(0.08)},
			{Limit: amt(6_400_000), Rate: rate(0.05)},
			{Limit: amt(8_800_000), Rate: rate(0.03)},
			{Limit: amt(11_600_000), Rate: rate(0.02)},
			{Limit: decimal.Zero, Rate: rate(0.01)}, // unbounded
		},
		minimumFee:          amt(17_900),
		minimumThreshold:    amt(111_875),
		agreementMultiplier: quarterBonus,
		courtFees: map[domain.CourtType]decimal.Decimal{
			domain.CourtCivilPeace:         amt(10_700),
			domain.CourtCivilFirstInstance: amt(17_900),
			domain.CourtConsumer:           amt(9_000),
			domain.CourtLabor:              amt(17_900),
			domain.CourtCommercial:         amt(17_900),
			domain.CourtAdministrative:     amt(13_000),
		},
	}
}

// Attorney2025 builds the 2025 attorney minimum fee tariff.
func Attorney2025() *AttorneyTariff {
	return &AttorneyTariff{
		year:      2025,
		finalized: true,
		brackets: []Bracket{
			{Limit: amt(600_000), Rate: rate(0.16)},
			{Limit: amt(1_200_000), Rate: rate(0.15)},
			{Limit: amt(2_400_000), Rate: rate(0.14)},
			{Limit: amt(4_200_000), Rate: rate(0.11)},
			{Limit: amt(6_600_000), Rate: rate(0.08)},
			{Limit: amt(9_600_000), Rate: rate(0.05)},
			{Limit: amt(13_200_000), Rate: rate(0.03)},
			{Limit: amt(17_400_000), Rate: rate(0.02)},
			{Limit: decimal.Zero, Rate: rate(0.01)}, // unbounded
		},
		minimumFee:          amt(30_000),
		minimumThreshold:    amt(187_500),
		agreementMultiplier: quarterBonus,
		courtFees: map[domain.CourtType]decimal.Decimal{
			domain.CourtCivilPeace:         amt(18_000),
			domain.CourtCivilFirstInstance: amt(30_000),
			domain.CourtConsumer:           amt(15_000),
			domain.CourtLabor:              amt(30_000),
			domain.CourtCommercial:         amt(30_000),
			domain.CourtAdministrative:     amt(22_000),
		},
	}
}

// Attorney2026 builds the 2026 attorney minimum fee tariff (estimated).
func Attorney2026() *AttorneyTariff {
	return &AttorneyTariff{
		year:      2026,
		finalized: false,
		brackets: []Bracket{
			{Limit: amt(780_000), Rate: rate(0.16)},
			{Limit: amt(1_560_000), Rate: rate(0.15)},
			{Limit: amt(3_120_000), Rate: rate(0.14)},
			{Limit: amt(5_460_000), Rate: rate(0.11)},
			{Limit: amt(8_580_000), Rate: rate(0.08)},
			{Limit: amt(12_480_000), Rate: rate(0.05)},
			{Limit: amt(17_160_000), Rate: rate(0.03)},
			{Limit: amt(22_620_000), Rate: rate(0.02)},
			{Limit: decimal.Zero, Rate: rate(0.01)}, // unbounded
		},
		minimumFee:          amt(39_000),
		minimumThreshold:    amt(243_750),
		agreementMultiplier: quarterBonus,
		courtFees: map[domain.CourtType]decimal.Decimal{
			domain.CourtCivilPeace:         amt(23_400),
			domain.CourtCivilFirstInstance: amt(39_000),
			domain.CourtConsumer:           amt(19_500),
			domain.CourtLabor:              amt(39_000),
			domain.CourtCommercial:         amt(39_000),
			domain.CourtAdministrative:     amt(28_600),
		},
	}
}
