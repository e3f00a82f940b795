package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsctl/dsctl/types"
)

var (
	resolveKind  string
	resolveQuiet bool
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <name-or-ocid>",
	Short: "Resolve a target or connector name to an OCID",
	Long: `Resolve a human-friendly name to an OCID.

An OCID argument is returned unchanged without any lookup. A name is
matched against the compartment's listing: exact first, then
case-insensitive, then substring. An ambiguous name fails with the full
candidate list.`,
	Example: `  dsctl resolve Prod-DB1                  # Resolve a target name
  dsctl resolve prod --compartment databases
  dsctl resolve dc1 --kind connector      # Resolve a connector
  dsctl resolve Prod-DB1 --quiet          # Print only the OCID`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveKind, "kind", "k", "target", "Resource kind: target or connector")
	resolveCmd.Flags().BoolVarP(&resolveQuiet, "quiet", "q", false, "Print only the OCID")
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kind, err := parseKind(resolveKind)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	var ocid string
	switch kind {
	case types.KindTarget:
		ocid, err = a.resolver.ResolveTarget(ctx, args[0], flagCompartment)
	case types.KindConnector:
		ocid, err = a.resolver.ResolveConnector(ctx, args[0], flagCompartment)
	}
	if err != nil {
		return err
	}

	if resolveQuiet {
		fmt.Println(ocid)
		return nil
	}
	fmt.Printf("%s %s -> %s\n", kind, args[0], ocid)
	return nil
}

func parseKind(s string) (types.Kind, error) {
	switch s {
	case "target":
		return types.KindTarget, nil
	case "connector":
		return types.KindConnector, nil
	default:
		return "", fmt.Errorf("invalid kind %q (must be target or connector)", s)
	}
}
