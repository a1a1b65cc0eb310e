package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/keanyaoha/greenprint/internal/greenops"
	"github.com/keanyaoha/greenprint/internal/logging"
	"github.com/keanyaoha/greenprint/internal/report"
	"github.com/keanyaoha/greenprint/internal/session"
	"github.com/keanyaoha/greenprint/internal/tui"
)

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate your monthly carbon footprint",
		Long: "Calculate your monthly carbon footprint. Without flags this starts the " +
			"interactive questionnaire; with --country and --inputs it computes directly " +
			"from a saved inputs file.",
		RunE: runCalc,
	}

	cmd.Flags().String("country", "", "country to calculate for (skips the questionnaire)")
	cmd.Flags().String("inputs", "", "YAML file mapping activity ids to monthly quantities")
	cmd.Flags().StringP("output", "o", "text", "output format: text or json")
	cmd.Flags().String("report", "", "also write the report document to this path")

	return cmd
}

func runCalc(cmd *cobra.Command, _ []string) error {
	country, _ := cmd.Flags().GetString("country")

	if country == "" {
		return runWizard(cmd)
	}
	return runDirect(cmd, country)
}

// runWizard starts the interactive questionnaire.
func runWizard(cmd *cobra.Command) error {
	if !isTerminal(os.Stdin) {
		return fmt.Errorf("interactive mode needs a terminal; use --country and --inputs instead")
	}

	ctx := cmd.Context()
	store, cat, engine, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	sess := session.New(store, engine, cat)
	model := tui.NewModel(ctx, store, cat, sess)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// inputsFile is the on-disk shape of a saved questionnaire: activity
// ids mapped to monthly quantities.
type inputsFile struct {
	Activities map[string]float64 `yaml:"activities"`
}

// runDirect computes a footprint without the questionnaire.
func runDirect(cmd *cobra.Command, country string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	inputsPath, _ := cmd.Flags().GetString("inputs")
	if inputsPath == "" {
		return fmt.Errorf("--inputs is required with --country")
	}

	data, err := os.ReadFile(inputsPath)
	if err != nil {
		return fmt.Errorf("reading inputs: %w", err)
	}
	var inputs inputsFile
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return fmt.Errorf("parsing inputs %s: %w", inputsPath, err)
	}
	for id, qty := range inputs.Activities {
		if qty < 0 {
			return fmt.Errorf("%w: %s = %g", session.ErrNegativeQuantity, id, qty)
		}
	}

	store, cat, engine, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	sess := session.New(store, engine, cat)
	if err := sess.SelectCountry(ctx, country); err != nil {
		return err
	}
	for id, qty := range inputs.Activities {
		if err := sess.SetQuantity(id, qty); err != nil {
			return err
		}
	}
	sess.SetConfirmed(true)

	result, comparison, err := sess.Calculate(ctx)
	if err != nil {
		return err
	}

	equiv, err := greenops.ForMonthlyTotal(result.GrandTotal)
	if err != nil {
		return err
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		bundle := report.Bundle{
			Result:      result,
			Comparison:  comparison,
			Equivalency: equiv,
			GeneratedAt: time.Now(),
		}
		doc, renderErr := report.Render(bundle)
		if renderErr == nil {
			renderErr = os.WriteFile(reportPath, doc, 0o644)
		}
		if renderErr != nil {
			// The computed bundle stays valid; report the export
			// failure but still print the results.
			log.Warn().Str("component", "cli").Err(renderErr).Msg("report export failed")
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: report export failed: %v\n", renderErr)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", reportPath)
		}
	}

	format, _ := cmd.Flags().GetString("output")
	return renderCalcOutput(cmd.OutOrStdout(), format, result, comparison, equiv)
}
