package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scriptkit/lbaction/pkg/action"
	"github.com/scriptkit/lbaction/pkg/store"
)

// NewCacheCmd returns the cache command with all subcommands configured.
// The store lives in the action's cache directory; running outside LaunchBar
// requires LB_CACHE_PATH (or an --env-file providing it).
func NewCacheCmd(act **action.Action) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Read and write the action's cache store",
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "get KEY",
		Short: "Print a cached value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := (*act).CacheStore()
			if err != nil {
				return err
			}
			defer c.Close()

			value, err := c.Get(args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("key %q not cached", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(value))
			return nil
		},
	})

	var ttl time.Duration
	setCmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store a cached value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := (*act).CacheStore()
			if err != nil {
				return err
			}
			defer c.Close()
			return c.Set(args[0], []byte(args[1]), ttl)
		},
	}
	setCmd.Flags().DurationVar(&ttl, "ttl", 0, "expiry, e.g. 10m or 24h (0 = never)")
	cacheCmd.AddCommand(setCmd)

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "delete KEY",
		Short: "Remove a cached value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := (*act).CacheStore()
			if err != nil {
				return err
			}
			defer c.Close()
			return c.Delete(args[0])
		},
	})

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Drop every expired entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := (*act).CacheStore()
			if err != nil {
				return err
			}
			defer c.Close()

			dropped, err := c.Purge()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d entries\n", dropped)
			return nil
		},
	})

	return cacheCmd
}
