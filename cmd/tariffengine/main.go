package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/legalfees/tariffengine/internal/calculation"
	"github.com/legalfees/tariffengine/internal/config"
	"github.com/legalfees/tariffengine/internal/domain"
	"github.com/legalfees/tariffengine/internal/output"
	"github.com/legalfees/tariffengine/internal/tariff"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// engine bundles the registries and calculators every command shares.
// Tables are built once at startup and read-only afterwards.
type engine struct {
	registry      *tariff.Registry
	attorneys     *tariff.AttorneyRegistry
	mediation     *calculation.MediationFeeCalculator
	attorney      *calculation.AttorneyFeeCalculator
	reinstatement *calculation.ReinstatementFeeCalculator
	serial        *calculation.SerialDisputesFeeCalculator
	tenancy       *calculation.TenancyFeeCalculator
	smm           *calculation.SMMGrossUpSolver
}

func newEngine() *engine {
	reg := tariff.NewRegistry()
	att := tariff.NewAttorneyRegistry()
	return &engine{
		registry:      reg,
		attorneys:     att,
		mediation:     calculation.NewMediationFeeCalculator(reg),
		attorney:      calculation.NewAttorneyFeeCalculator(att),
		reinstatement: calculation.NewReinstatementFeeCalculator(reg),
		serial:        calculation.NewSerialDisputesFeeCalculator(),
		tenancy:       calculation.NewTenancyFeeCalculator(reg, att),
		smm:           calculation.NewSMMGrossUpSolver(),
	}
}

var outputFormat string

// emit renders a result in the selected output format.
func emit(cmd *cobra.Command, console string, result any) error {
	if outputFormat == "json" {
		jf := &output.JSONFormatter{Pretty: true}
		s, err := jf.Format(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), console)
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "tariffengine",
	Short: "Statutory mediation and attorney fee calculator",
	Long:  "Computes mediation fees, attorney minimum fees, and SMM gross-ups under the annually revised tariff schedules",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "tariffengine %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func yearsCmd(eng *engine) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List supported tariff years",
		Run: func(cmd *cobra.Command, args []string) {
			for _, y := range eng.registry.Supported() {
				sched, _ := eng.registry.Lookup(y)
				status := "published"
				if !sched.Finalized() {
					status = "estimated"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %-10s  agreement minimum %s, commercial %s\n",
					y, status,
					output.FormatCurrency(sched.MinimumFee(domain.MinimumClassGeneral)),
					output.FormatCurrency(sched.MinimumFee(domain.MinimumClassCommercial)))
			}
		},
	}
}

// calculateCmd runs whichever calculation a YAML request file describes.
func calculateCmd(eng *engine) *cobra.Command {
	return &cobra.Command{
		Use:   "calculate [request-file]",
		Short: "Run the calculation described by a YAML request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			req, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			return runRequest(cmd, eng, req)
		},
	}
}

func runRequest(cmd *cobra.Command, eng *engine, req *config.CalculationRequest) error {
	cf := output.NewConsoleFormatter()
	switch req.Calculation {
	case config.KindMediation:
		in := req.Mediation.ToInput()
		if err := in.Validate(eng.registry); err != nil {
			return err
		}
		r, err := eng.mediation.Calculate(in)
		if err != nil {
			return err
		}
		return emit(cmd, cf.FormatMediation(r), r)
	case config.KindAttorney:
		in := req.Attorney.ToInput()
		if err := in.Validate(eng.attorneys); err != nil {
			return err
		}
		r, err := eng.attorney.Calculate(in)
		if err != nil {
			return err
		}
		return emit(cmd, cf.FormatAttorney(r), r)
	case config.KindReinstatement:
		in := req.Reinstatement.ToInput()
		if err := in.Validate(eng.registry); err != nil {
			return err
		}
		r, err := eng.reinstatement.Calculate(in)
		if err != nil {
			return err
		}
		return emit(cmd, cf.FormatReinstatement(r), r)
	case config.KindSerialDisputes:
		in := req.Serial.ToInput()
		if err := in.Validate(serialYears{}); err != nil {
			return err
		}
		r, err := eng.serial.Calculate(in)
		if err != nil {
			return err
		}
		return emit(cmd, cf.FormatSerial(r), r)
	case config.KindTenancy:
		in := req.Tenancy.ToInput()
		if in.Mode == domain.TenancyAttorneyMode {
			return tenancyRun(cmd, eng, in, eng.attorneys)
		}
		return tenancyRun(cmd, eng, in, eng.registry)
	case config.KindSMM:
		in := req.SMM.ToInput()
		r, err := eng.smm.Solve(in)
		if err != nil {
			return err
		}
		return emit(cmd, cf.FormatSMM(r), r)
	}
	return fmt.Errorf("unknown calculation %q", req.Calculation)
}

func main() {
	eng := newEngine()

	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "console", "Output format: console or json")

	rootCmd.AddCommand(
		versionCmd(),
		yearsCmd(eng),
		calculateCmd(eng),
		mediationCmd(eng),
		attorneyCmd(eng),
		reinstatementCmd(eng),
		serialCmd(eng),
		tenancyCmd(eng),
		smmCmd(eng),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
