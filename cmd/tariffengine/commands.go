package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/output"
	"github.com/legalfees/tariffengine/internal/tariff"
)

// serialYears adapts the serial-rate table to domain.YearSet.
type serialYears struct{}

func (serialYears) IsSupported(year int) bool { return tariff.SerialYearSupported(year) }

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func mediationCmd(eng *engine) *cobra.Command {
	var (
		category   string
		monetary   bool
		agreement  bool
		amount     string
		partyCount int
		year       int
	)
	cmd := &cobra.Command{
		Use:   "mediation",
		Short: "Calculate the general mediation fee",
		RunE: func(cmd *cobra.Command, args []string) error {
			disputeAmount, err := parseAmount(amount)
			if err != nil {
				return err
			}
			in := domain.MediationInput{
				Category:      domain.DisputeCategory(category),
				Monetary:      monetary,
				Agreement:     agreement,
				DisputeAmount: disputeAmount,
				PartyCount:    partyCount,
				Year:          year,
			}
			if err := in.Validate(eng.registry); err != nil {
				return err
			}
			r, err := eng.mediation.Calculate(in)
			if err != nil {
				return err
			}
			return emit(cmd, output.NewConsoleFormatter().FormatMediation(r), r)
		},
	}
	cmd.Flags().StringVar(&category, "category", "other", "Dispute category")
	cmd.Flags().BoolVar(&monetary, "monetary", false, "Monetary dispute")
	cmd.Flags().BoolVar(&agreement, "agreement", false, "Parties reached agreement")
	cmd.Flags().StringVar(&amount, "amount", "", "Disputed amount (monetary with agreement)")
	cmd.Flags().IntVar(&partyCount, "parties", 2, "Number of parties")
	cmd.Flags().IntVar(&year, "year", 2025, "Tariff year")
	return cmd
}

func attorneyCmd(eng *engine) *cobra.Command {
	var (
		monetary  bool
		agreement bool
		amount    string
		court     string
		year      int
	)
	cmd := &cobra.Command{
		Use:   "attorney",
		Short: "Calculate the statutory minimum attorney fee",
		RunE: func(cmd *cobra.Command, args []string) error {
			agreementAmount, err := parseAmount(amount)
			if err != nil {
				return err
			}
			in := domain.AttorneyInput{
				Monetary:        monetary,
				Agreement:       agreement,
				AgreementAmount: agreementAmount,
				Court:           domain.CourtType(court),
				Year:            year,
			}
			if err := in.Validate(eng.attorneys); err != nil {
				return err
			}
			r, err := eng.attorney.Calculate(in)
			if err != nil {
				return err
			}
			return emit(cmd, output.NewConsoleFormatter().FormatAttorney(r), r)
		},
	}
	cmd.Flags().BoolVar(&monetary, "monetary", true, "Monetary dispute")
	cmd.Flags().BoolVar(&agreement, "agreement", false, "Parties reached agreement")
	cmd.Flags().StringVar(&amount, "amount", "", "Agreement amount (monetary with agreement)")
	cmd.Flags().StringVar(&court, "court", "", "Court type (non-monetary)")
	cmd.Flags().IntVar(&year, "year", 2025, "Tariff year")
	return cmd
}

func reinstatementCmd(eng *engine) *cobra.Command {
	var (
		agreement   bool
		comp        string
		idleWage    string
		otherRights string
		partyCount  int
		year        int
	)
	cmd := &cobra.Command{
		Use:   "reinstatement",
		Short: "Calculate the reinstatement mediation fee",
		RunE: func(cmd *cobra.Command, args []string) error {
			compAmt, err := parseAmount(comp)
			if err != nil {
				return err
			}
			idleAmt, err := parseAmount(idleWage)
			if err != nil {
				return err
			}
			otherAmt, err := parseAmount(otherRights)
			if err != nil {
				return err
			}
			in := domain.ReinstatementInput{
				Agreement:            agreement,
				NonReinstatementComp: compAmt,
				IdlePeriodWage:       idleAmt,
				OtherRights:          otherAmt,
				PartyCount:           partyCount,
				Year:                 year,
			}
			if err := in.Validate(eng.registry); err != nil {
				return err
			}
			r, err := eng.reinstatement.Calculate(in)
			if err != nil {
				return err
			}
			return emit(cmd, output.NewConsoleFormatter().FormatReinstatement(r), r)
		},
	}
	cmd.Flags().BoolVar(&agreement, "agreement", false, "Parties reached agreement")
	cmd.Flags().StringVar(&comp, "compensation", "", "Non-reinstatement compensation")
	cmd.Flags().StringVar(&idleWage, "idle-wage", "", "Idle period wage")
	cmd.Flags().StringVar(&otherRights, "other-rights", "", "Other rights (optional)")
	cmd.Flags().IntVar(&partyCount, "parties", 2, "Number of parties")
	cmd.Flags().IntVar(&year, "year", 2025, "Tariff year")
	return cmd
}

func serialCmd(eng *engine) *cobra.Command {
	var (
		kind      string
		fileCount int
		year      int
	)
	cmd := &cobra.Command{
		Use:   "serial",
		Short: "Calculate the serial-disputes fee",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.SerialDisputesInput{
				Kind:      domain.SerialDisputeKind(kind),
				FileCount: fileCount,
				Year:      year,
			}
			if err := in.Validate(serialYears{}); err != nil {
				return err
			}
			r, err := eng.serial.Calculate(in)
			if err != nil {
				return err
			}
			return emit(cmd, output.NewConsoleFormatter().FormatSerial(r), r)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "non_commercial", "Dispute kind: commercial or non_commercial")
	cmd.Flags().IntVar(&fileCount, "files", 1, "Number of files in the batch")
	cmd.Flags().IntVar(&year, "year", 2025, "Tariff year")
	return cmd
}

func tenancyRun(cmd *cobra.Command, eng *engine, in domain.TenancyInput, years domain.YearSet) error {
	if err := in.Validate(years); err != nil {
		return err
	}
	r, err := eng.tenancy.Calculate(in)
	if err != nil {
		return err
	}
	return emit(cmd, output.NewConsoleFormatter().FormatTenancy(r), r)
}

func tenancyCmd(eng *engine) *cobra.Command {
	var (
		mode          string
		eviction      string
		determination string
		year          int
	)
	cmd := &cobra.Command{
		Use:   "tenancy",
		Short: "Calculate the eviction / rent-determination fee",
		RunE: func(cmd *cobra.Command, args []string) error {
			evictionAmt, err := parseAmount(eviction)
			if err != nil {
				return err
			}
			determinationAmt, err := parseAmount(determination)
			if err != nil {
				return err
			}
			in := domain.TenancyInput{
				Mode:                     domain.TenancyFeeMode(mode),
				IncludeEviction:          !evictionAmt.IsZero(),
				EvictionAmount:           evictionAmt,
				IncludeRentDetermination: !determinationAmt.IsZero(),
				RentDeterminationAmount:  determinationAmt,
				Year:                     year,
			}
			if in.Mode == domain.TenancyAttorneyMode {
				return tenancyRun(cmd, eng, in, eng.attorneys)
			}
			return tenancyRun(cmd, eng, in, eng.registry)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "mediation", "Fee mode: attorney or mediation")
	cmd.Flags().StringVar(&eviction, "eviction", "", "Eviction amount (one year's rent)")
	cmd.Flags().StringVar(&determination, "determination", "", "Rent determination amount")
	cmd.Flags().IntVar(&year, "year", 2025, "Tariff year")
	return cmd
}

func smmCmd(eng *engine) *cobra.Command {
	var (
		amount      string
		vatIncl     bool
		withholding bool
	)
	cmd := &cobra.Command{
		Use:   "smm",
		Short: "Decompose a self-employment receipt figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}
			in := domain.SMMInput{
				Amount:              amt,
				VATIncluded:         vatIncl,
				WithholdingIncluded: withholding,
			}
			r, err := eng.smm.Solve(in)
			if err != nil {
				return err
			}
			return emit(cmd, output.NewConsoleFormatter().FormatSMM(r), r)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "Entered amount")
	cmd.Flags().BoolVar(&vatIncl, "vat-included", false, "VAT already included in the amount")
	cmd.Flags().BoolVar(&withholding, "withholding-included", false, "Withholding already included in the amount")
	return cmd
}
