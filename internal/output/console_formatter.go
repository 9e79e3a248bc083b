package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/legalfees/tariffengine/internal/domain"
)

// ConsoleFormatter renders result records as human-readable text. It is a
// development-time surface; the real presentation layer localizes the
// breakdown message keys itself.
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a console formatter.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatCurrency renders a monetary value with two decimal places.
func FormatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2) + " TL"
}

func writeHeader(b *strings.Builder, title string, year int, estimated bool) {
	fmt.Fprintf(b, "%s\n", title)
	fmt.Fprintf(b, "%s\n", strings.Repeat("=", len(title)))
	if year > 0 {
		fmt.Fprintf(b, "Tariff year: %d\n", year)
	}
	if estimated {
		b.WriteString("NOTE: tariff figures for this year are estimates, not officially published\n")
	}
}

func writeBreakdown(b *strings.Builder, bd domain.Breakdown) {
	for _, step := range bd.Steps {
		fmt.Fprintf(b, "  %-40s %s\n", step.Label, FormatCurrency(step.Value))
	}
	if bd.FloorApplied {
		b.WriteString("  (statutory minimum applied)\n")
	}
	if bd.CeilingApplied {
		b.WriteString("  (fee capped at the claim amount)\n")
	}
}

// FormatMediation renders a general mediation fee result.
func (cf *ConsoleFormatter) FormatMediation(r *domain.MediationResult) string {
	var b strings.Builder
	writeHeader(&b, "Mediation Fee", r.Input.Year, r.Estimated)
	fmt.Fprintf(&b, "Category: %s\n", r.Input.Category)
	fmt.Fprintf(&b, "Parties: %d\n", r.Input.PartyCount)
	fmt.Fprintf(&b, "Agreement: %t\n\n", r.Input.Agreement)
	writeBreakdown(&b, r.Breakdown)
	fmt.Fprintf(&b, "\nFee: %s\n", FormatCurrency(r.Fee))
	return b.String()
}

// FormatAttorney renders an attorney minimum fee result.
func (cf *ConsoleFormatter) FormatAttorney(r *domain.AttorneyResult) string {
	var b strings.Builder
	writeHeader(&b, "Attorney Minimum Fee", r.Input.Year, r.Estimated)
	if r.Input.Monetary {
		b.WriteString("Dispute: monetary\n\n")
	} else {
		fmt.Fprintf(&b, "Dispute: non-monetary (court: %s)\n\n", r.Input.Court)
	}
	writeBreakdown(&b, r.Breakdown)
	fmt.Fprintf(&b, "\nFee: %s\n", FormatCurrency(r.Fee))
	return b.String()
}

// FormatReinstatement renders a reinstatement fee result.
func (cf *ConsoleFormatter) FormatReinstatement(r *domain.ReinstatementResult) string {
	var b strings.Builder
	writeHeader(&b, "Reinstatement Mediation Fee", r.Input.Year, r.Estimated)
	fmt.Fprintf(&b, "Agreement: %t\n\n", r.Input.Agreement)
	writeBreakdown(&b, r.Breakdown)
	fmt.Fprintf(&b, "\nFee: %s\n", FormatCurrency(r.Fee))
	return b.String()
}

// FormatSerial renders a serial-disputes fee result.
func (cf *ConsoleFormatter) FormatSerial(r *domain.SerialDisputesResult) string {
	var b strings.Builder
	writeHeader(&b, "Serial Disputes Fee", r.Input.Year, r.Estimated)
	fmt.Fprintf(&b, "Kind: %s, files: %d\n\n", r.Input.Kind, r.Input.FileCount)
	writeBreakdown(&b, r.Breakdown)
	fmt.Fprintf(&b, "\nFee: %s\n", FormatCurrency(r.Fee))
	return b.String()
}

// FormatTenancy renders a tenancy fee result.
func (cf *ConsoleFormatter) FormatTenancy(r *domain.TenancyResult) string {
	var b strings.Builder
	writeHeader(&b, "Tenancy Fee", r.Input.Year, r.Estimated)
	fmt.Fprintf(&b, "Mode: %s\n\n", r.Input.Mode)
	writeBreakdown(&b, r.Breakdown)
	fmt.Fprintf(&b, "\nPre-floor total: %s\n", FormatCurrency(r.PreFloorTotal))
	fmt.Fprintf(&b, "Fee: %s\n", FormatCurrency(r.Fee))
	return b.String()
}

// FormatSMM renders the side-by-side SMM gross-up decomposition.
func (cf *ConsoleFormatter) FormatSMM(r *domain.SMMResult) string {
	var b strings.Builder
	writeHeader(&b, "SMM Gross-Up", 0, false)
	fmt.Fprintf(&b, "Entered amount: %s (VAT included: %t, withholding included: %t)\n\n",
		FormatCurrency(r.Input.Amount), r.Input.VATIncluded, r.Input.WithholdingIncluded)
	fmt.Fprintf(&b, "%-16s %18s %18s\n", "", "Legal person", "Real person")
	row := func(label string, l, p decimal.Decimal) {
		fmt.Fprintf(&b, "%-16s %18s %18s\n", label, FormatCurrency(l), FormatCurrency(p))
	}
	row("Gross fee", r.LegalPerson.Gross, r.RealPerson.Gross)
	row("VAT", r.LegalPerson.VAT, r.RealPerson.VAT)
	row("Withholding", r.LegalPerson.Withholding, r.RealPerson.Withholding)
	row("Net", r.LegalPerson.Net, r.RealPerson.Net)
	row("Collected", r.LegalPerson.Collected, r.RealPerson.Collected)
	return b.String()
}
