package tariff

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
)

// Bracket is one progressive band of a tariff table. Limit is the
// cumulative upper bound of the band; the final bracket of a table
// absorbs all remaining amount regardless of its Limit.
type Bracket struct {
	Limit decimal.Decimal `json:"limit"`
	Rate  decimal.Decimal `json:"rate"`
}

// Schedule is one tariff year's mediation fee data. Schedules are built
// once at process start and never mutated; adding a year means adding a
// new constructor, never editing an existing one.
type Schedule interface {
	Year() int
	// Finalized reports whether the year's figures are officially
	// published rather than estimated.
	Finalized() bool
	HourlyRate(c domain.DisputeCategory) decimal.Decimal
	// FixedFee selects the party-count tier for the category. Lookups
	// never fail: out-of-range party counts degrade to the nearest
	// defined tier and unknown categories fall back to the "other" row.
	FixedFee(c domain.DisputeCategory, partyCount int) decimal.Decimal
	MinimumFee(class domain.MinimumFeeClass) decimal.Decimal
	// MinimumClassFor maps a dispute category to the minimum-fee row it
	// uses in this year.
	MinimumClassFor(c domain.DisputeCategory) domain.MinimumFeeClass
	Brackets() []Bracket
	// MinimumHours is the statutory minimum session length multiplier
	// applied when no agreement is reached.
	MinimumHours() int
}

type baseSchedule struct {
	year            int
	finalized       bool
	hourly          map[domain.DisputeCategory]decimal.Decimal
	fixed           map[domain.DisputeCategory][]decimal.Decimal
	partyThresholds []int
	minimums        map[domain.MinimumFeeClass]decimal.Decimal
	commercialClass map[domain.DisputeCategory]bool
	brackets        []Bracket
	minimumHours    int
}

// validate panics on a malformed table. A schedule missing its "other"
// fallback row or with non-increasing bracket limits is a broken build,
// not bad user input.
func (s *baseSchedule) validate() {
	if _, ok := s.hourly[domain.CategoryOther]; !ok {
		panic(fmt.Sprintf("tariff %d: hourly table missing %q fallback row", s.year, domain.CategoryOther))
	}
	if _, ok := s.fixed[domain.CategoryOther]; !ok {
		panic(fmt.Sprintf("tariff %d: fixed-fee table missing %q fallback row", s.year, domain.CategoryOther))
	}
	for cat, tiers := range s.fixed {
		if len(tiers) != len(s.partyThresholds) {
			panic(fmt.Sprintf("tariff %d: category %q has %d tiers for %d thresholds", s.year, cat, len(tiers), len(s.partyThresholds)))
		}
		for _, fee := range tiers {
			if !fee.GreaterThan(decimal.Zero) {
				panic(fmt.Sprintf("tariff %d: category %q has a non-positive fixed-fee tier", s.year, cat))
			}
		}
	}
	prev := decimal.Zero
	for i, b := range s.brackets {
		if b.Rate.IsNegative() {
			panic(fmt.Sprintf("tariff %d: bracket %d has a negative rate", s.year, i))
		}
		if i < len(s.brackets)-1 && !b.Limit.GreaterThan(prev) {
			panic(fmt.Sprintf("tariff %d: bracket limits must strictly increase", s.year))
		}
		prev = b.Limit
	}
	if s.minimumHours <= 0 {
		panic(fmt.Sprintf("tariff %d: minimum hours must be positive", s.year))
	}
}

func (s *baseSchedule) Year() int       { return s.year }
func (s *baseSchedule) Finalized() bool { return s.finalized }

func (s *baseSchedule) HourlyRate(c domain.DisputeCategory) decimal.Decimal {
	if rate, ok := s.hourly[c]; ok {
		return rate
	}
	return s.hourly[domain.CategoryOther]
}

func (s *baseSchedule) FixedFee(c domain.DisputeCategory, partyCount int) decimal.Decimal {
	tiers, ok := s.fixed[c]
	if !ok {
		tiers = s.fixed[domain.CategoryOther]
	}
	// First threshold not exceeded by the party count wins; past the last
	// threshold the final tier applies (its threshold is unbounded by
	// convention).
	for i, limit := range s.partyThresholds {
		if partyCount <= limit {
			return tiers[i]
		}
	}
	return tiers[len(tiers)-1]
}

func (s *baseSchedule) MinimumFee(class domain.MinimumFeeClass) decimal.Decimal {
	if min, ok := s.minimums[class]; ok {
		return min
	}
	return s.minimums[domain.MinimumClassGeneral]
}

func (s *baseSchedule) MinimumClassFor(c domain.DisputeCategory) domain.MinimumFeeClass {
	if s.commercialClass[c] {
		return domain.MinimumClassCommercial
	}
	return domain.MinimumClassGeneral
}

func (s *baseSchedule) Brackets() []Bracket { return s.brackets }
func (s *baseSchedule) MinimumHours() int   { return s.minimumHours }

// Registry holds every supported tariff year's schedule. It implements
// domain.YearSet so input validation can reject unsupported years before
// any table access.
type Registry struct {
	schedules map[int]Schedule
}

// NewRegistry builds the registry with every supported year registered.
func NewRegistry() *Registry {
	r := &Registry{schedules: make(map[int]Schedule)}
	for _, s := range []Schedule{Year2024(), Year2025(), Year2026()} {
		r.schedules[s.Year()] = s
	}
	return r
}

// IsSupported reports whether the registry holds a schedule for year.
func (r *Registry) IsSupported(year int) bool {
	_, ok := r.schedules[year]
	return ok
}

// Lookup returns the schedule for year.
func (r *Registry) Lookup(year int) (Schedule, bool) {
	s, ok := r.schedules[year]
	return s, ok
}

// Supported returns the supported years in ascending order.
func (r *Registry) Supported() []int {
	years := make([]int, 0, len(r.schedules))
	for y := range r.schedules {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func amt(v int64) decimal.Decimal    { return decimal.NewFromInt(v) }
func rate(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
