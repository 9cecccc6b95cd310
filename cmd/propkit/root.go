package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propkit",
		Short: "Validate tabular documents against declarative property rules",
		Long: `propkit imports xlsx worksheets into typed property containers and
validates each row against a YAML rule definition, rendering an ordered,
severity-tagged report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newValidateCmd())
	return cmd
}
