package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsctl/dsctl/internal/filter"
	"github.com/dsctl/dsctl/types"
)

var (
	listStates []string
	listTags   []string
	listOutput string
)

// targetsCmd represents the targets command
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List Data Safe target databases in a compartment",
	Example: `  dsctl targets --compartment databases
  dsctl targets --state ACTIVE --state NEEDS_ATTENTION
  dsctl targets --tag env=prod --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, types.KindTarget)
	},
}

// connectorsCmd represents the connectors command
var connectorsCmd = &cobra.Command{
	Use:   "connectors",
	Short: "List Data Safe on-premises connectors in a compartment",
	Example: `  dsctl connectors --compartment databases
  dsctl connectors --state ACTIVE --output csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, types.KindConnector)
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(connectorsCmd)

	for _, cmd := range []*cobra.Command{targetsCmd, connectorsCmd} {
		cmd.Flags().StringArrayVarP(&listStates, "state", "s", nil, "Filter by lifecycle state (repeatable)")
		cmd.Flags().StringArrayVarP(&listTags, "tag", "t", nil, "Filter by freeform tag key=value (repeatable)")
		cmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format: table, json, csv")
	}
}

func runList(cmd *cobra.Command, kind types.Kind) error {
	ctx := cmd.Context()

	if !validOutput(listOutput) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)",
			listOutput, strings.Join(outputFormats, ", "))
	}

	states, err := types.NewStateSet(listStates...)
	if err != nil {
		return err
	}
	tags, err := filter.ParseTagFlags(listTags)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	// The state filter is part of the cache key; tags are applied
	// client-side after the cached fetch.
	resources, err := a.resolver.List(ctx, kind, flagCompartment, states)
	if err != nil {
		return err
	}
	resources = filter.New(types.StateSet{}, tags).Apply(resources)

	return printResources(cmd.OutOrStdout(), listOutput, resources)
}
