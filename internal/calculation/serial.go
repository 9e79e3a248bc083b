package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/tariff"
)

// SerialDisputesFeeCalculator prices batches of identical disputes
// linearly per file. No brackets, no floor, no ceiling.
type SerialDisputesFeeCalculator struct{}

// NewSerialDisputesFeeCalculator creates a serial-disputes calculator.
func NewSerialDisputesFeeCalculator() *SerialDisputesFeeCalculator {
	return &SerialDisputesFeeCalculator{}
}

// Calculate computes the fee for a validated input.
func (c *SerialDisputesFeeCalculator) Calculate(in domain.SerialDisputesInput) (*domain.SerialDisputesResult, error) {
	perFile, finalized, ok := tariff.SerialRate(in.Kind, in.Year)
	if !ok {
		return nil, domain.UnsupportedYearError("year")
	}

	fee := perFile.Mul(decimal.NewFromInt(int64(in.FileCount)))
	result := &domain.SerialDisputesResult{
		Input:       in,
		Fee:         fee,
		PerFileRate: perFile,
		Estimated:   !finalized,
	}
	result.Breakdown.AddStep("breakdown.per_file_rate", perFile)
	result.Breakdown.AddStep("breakdown.file_count", decimal.NewFromInt(int64(in.FileCount)))
	result.Breakdown.AddStep("breakdown.fee", fee)
	return result, nil
}
