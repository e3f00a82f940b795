package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	showKind string
	showJSON bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <name-or-ocid>",
	Short: "Show one target or connector record",
	Example: `  dsctl show Prod-DB1
  dsctl show ocid1.datasafetargetdatabase.oc1..example
  dsctl show dc1-connector --kind connector --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showKind, "kind", "k", "target", "Resource kind: target or connector")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the record as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kind, err := parseKind(showKind)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	resource, err := a.resolver.Lookup(ctx, kind, args[0], flagCompartment)
	if err != nil {
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(resource, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", resource.DisplayName)
	fmt.Fprintf(w, "OCID:\t%s\n", resource.OCID)
	fmt.Fprintf(w, "Kind:\t%s\n", resource.Kind)
	fmt.Fprintf(w, "State:\t%s\n", resource.LifecycleState)
	fmt.Fprintf(w, "Compartment:\t%s\n", resource.CompartmentID)
	if resource.Description != "" {
		fmt.Fprintf(w, "Description:\t%s\n", resource.Description)
	}
	if !resource.TimeCreated.IsZero() {
		fmt.Fprintf(w, "Created:\t%s\n", resource.TimeCreated.Format("2006-01-02 15:04:05 MST"))
	}
	for key, value := range resource.FreeformTags {
		fmt.Fprintf(w, "Tag:\t%s=%s\n", key, value)
	}
	return w.Flush()
}
