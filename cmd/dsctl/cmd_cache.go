package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsctl/dsctl/cache"
)

// cacheCmd represents the cache command group
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the listing cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cached listing files and their validity",
	RunE:  runCacheStatus,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove every cached listing file",
	RunE:  runCachePurge,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
}

// newCache builds only the cache, so cache commands work without OCI
// credentials.
func newCache() (*cache.Listings, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cache.New(cfg.CacheDir, cfg.TTL(), logger, nil), nil
}

func runCacheStatus(cmd *cobra.Command, args []string) error {
	listings, err := newCache()
	if err != nil {
		return err
	}

	statuses, err := listings.Status()
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "cache is empty")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tAGE\tSIZE\tVALID")
	for _, s := range statuses {
		key := s.Key
		if key == "" {
			key = s.Path
		}
		fmt.Fprintf(w, "%s\t%s\t%dB\t%t\n", key, s.Age.Round(time.Second), s.Size, s.Valid)
	}
	return w.Flush()
}

func runCachePurge(cmd *cobra.Command, args []string) error {
	listings, err := newCache()
	if err != nil {
		return err
	}

	if err := listings.Purge(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "cache purged")
	return nil
}
