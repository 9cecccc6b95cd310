package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/propkit/propkit/pkg/config"
	"github.com/propkit/propkit/pkg/logger"
	"github.com/propkit/propkit/pkg/report"
	"github.com/propkit/propkit/pkg/ruleset"
	"github.com/propkit/propkit/pkg/tabular"
	"github.com/propkit/propkit/pkg/validation"
)

// errValidationFailed signals a clean run whose data carried error-severity
// messages; the report itself is the diagnostic output.
var errValidationFailed = errors.New("validation failed")

type cliConfig struct {
	LogLevel  string `env:"PROPKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PROPKIT_LOG_FORMAT" envDefault:"text"`
}

func newValidateCmd() *cobra.Command {
	var (
		rulesPath string
		inputPath string
		sheet     string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an xlsx worksheet against a YAML rule definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load[cliConfig]()
			if err != nil {
				return err
			}
			log := logger.New(
				logger.WithLevelName(cfg.LogLevel),
				logger.WithFormat(logger.Format(cfg.LogFormat)),
			)

			var outFormat report.Format
			switch format {
			case "text":
				outFormat = report.FormatText
			case "yaml":
				outFormat = report.FormatYAML
			default:
				return fmt.Errorf("unknown output format %q: must be text or yaml", format)
			}

			rs, err := ruleset.LoadFile(rulesPath)
			if err != nil {
				return err
			}
			log.Debug("loaded ruleset",
				slog.Int("properties", rs.Schema.Len()),
				slog.Int("rules", len(rs.Rules)))

			in, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer in.Close()

			containers, err := tabular.ReadSheet(in, sheet, tabular.NewMapping(rs.Schema))
			if err != nil {
				return err
			}
			log.Info("imported rows", slog.Int("rows", len(containers)))

			results := make([][]validation.Message, len(containers))
			for i, c := range containers {
				results[i] = validation.Validate(c, rs.Rules)
			}

			rep, err := report.Build(containers, results)
			if err != nil {
				return err
			}
			renderer := report.NewRenderer(report.WithFormat(outFormat))
			if err := renderer.Render(cmd.OutOrStdout(), rep); err != nil {
				return err
			}

			if rep.Errors() > 0 {
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "path to the YAML rule definition")
	cmd.Flags().StringVar(&inputPath, "input", "", "path to the xlsx document")
	cmd.Flags().StringVar(&sheet, "sheet", tabular.DefaultSheet, "worksheet name")
	cmd.Flags().StringVar(&format, "format", "text", "report format: text or yaml")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
