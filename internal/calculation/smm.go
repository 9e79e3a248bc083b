package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
)

// SMMGrossUpSolver decomposes a self-employment receipt figure into its
// gross fee, VAT, withholding, net, and collected amounts. It is
// independent of the tariff registries; its rates are fixed by statute.
//
// The entered amount's composition is fixed by the two inclusion flags.
// With v = VAT rate, w = withholding rate, g = the VAT-exclusive gross:
//
//	VAT incl, withholding incl:  A = g(1+v)    -> g = A/(1+v)
//	VAT incl, withholding excl:  A = g(1-w+v)  -> g = A/(1-w+v)
//	VAT excl, withholding incl:  A = g         -> g = A
//	VAT excl, withholding excl:  A = g(1-w)    -> g = A/(1-w)
//
// Every mode satisfies net + withholding = gross and
// gross + VAT = VAT-inclusive total.
type SMMGrossUpSolver struct {
	VATRate         decimal.Decimal
	WithholdingRate decimal.Decimal
}

// NewSMMGrossUpSolver creates a solver at the statutory rates: VAT 20%,
// withholding 20%.
func NewSMMGrossUpSolver() *SMMGrossUpSolver {
	return &SMMGrossUpSolver{
		VATRate:         decimal.NewFromFloat(0.20),
		WithholdingRate: decimal.NewFromFloat(0.20),
	}
}

// Solve decomposes the entered figure for both payer categories. A
// legal-person payer withholds at source and hands the recipient
// net + VAT; a real-person payer has no withholding obligation, so for
// that column net equals gross and the withholding flag is moot.
func (s *SMMGrossUpSolver) Solve(in domain.SMMInput) (*domain.SMMResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	one := decimal.NewFromInt(1)

	var legalGross decimal.Decimal
	switch {
	case in.VATIncluded && in.WithholdingIncluded:
		legalGross = in.Amount.Div(one.Add(s.VATRate))
	case in.VATIncluded && !in.WithholdingIncluded:
		legalGross = in.Amount.Div(one.Sub(s.WithholdingRate).Add(s.VATRate))
	case !in.VATIncluded && in.WithholdingIncluded:
		legalGross = in.Amount
	default:
		legalGross = in.Amount.Div(one.Sub(s.WithholdingRate))
	}

	legalVAT := legalGross.Mul(s.VATRate)
	legalWithholding := legalGross.Mul(s.WithholdingRate)
	legalNet := legalGross.Sub(legalWithholding)

	var realGross decimal.Decimal
	if in.VATIncluded {
		realGross = in.Amount.Div(one.Add(s.VATRate))
	} else {
		realGross = in.Amount
	}
	realVAT := realGross.Mul(s.VATRate)

	return &domain.SMMResult{
		Input: in,
		LegalPerson: domain.SMMColumn{
			Gross:       legalGross,
			VAT:         legalVAT,
			Withholding: legalWithholding,
			Net:         legalNet,
			Collected:   legalNet.Add(legalVAT),
		},
		RealPerson: domain.SMMColumn{
			Gross:       realGross,
			VAT:         realVAT,
			Withholding: decimal.Zero,
			Net:         realGross,
			Collected:   realGross.Add(realVAT),
		},
	}, nil
}
