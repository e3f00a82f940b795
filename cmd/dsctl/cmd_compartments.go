package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var compartmentsOutput string

// compartmentsCmd represents the compartments command
var compartmentsCmd = &cobra.Command{
	Use:   "compartments",
	Short: "List compartments in the tenancy",
	Long: `List the tenancy root and every active compartment in the subtree.
Compartment listings are not cached; this always queries the directory.`,
	RunE: runCompartments,
}

func init() {
	rootCmd.AddCommand(compartmentsCmd)

	compartmentsCmd.Flags().StringVarP(&compartmentsOutput, "output", "o", "table", "Output format: table, json, csv")
}

func runCompartments(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if !validOutput(compartmentsOutput) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			compartmentsOutput, strings.Join(outputFormats, ", "))
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	compartments, err := a.dir.ListCompartments(ctx)
	if err != nil {
		return err
	}

	return printCompartments(cmd.OutOrStdout(), compartmentsOutput, compartments)
}
