package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	flagConfig      string
	flagCompartment string
	flagProfile     string
	flagRegion      string
	flagOCIConfig   string
	flagDebug       bool

	rootCmd = &cobra.Command{
		Use:   "dsctl",
		Short: "Oracle Data Safe administration",
		Long: `dsctl - Oracle Data Safe administration

dsctl resolves human-friendly names of Data Safe target databases and
on-premises connectors to OCIDs, lists them per compartment, and caches
compartment listings so repeated invocations stay fast.

Names resolve in tiers: exact match first, then case-insensitive, then
substring. Ambiguous input never picks a winner silently - every
candidate is listed so you can decide.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`dsctl {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to dsctl config file")
	rootCmd.PersistentFlags().StringVarP(&flagCompartment, "compartment", "c", "", "Compartment name or OCID (overrides the configured default)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "OCI config profile")
	rootCmd.PersistentFlags().StringVar(&flagRegion, "region", "", "OCI region")
	rootCmd.PersistentFlags().StringVar(&flagOCIConfig, "oci-config", "", "Path to the OCI config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}
