package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/xileflig/naming/internal/config"
	"github.com/xileflig/naming/internal/convention"
	"github.com/xileflig/naming/internal/logging"
	"github.com/xileflig/naming/internal/registry"
	"github.com/xileflig/naming/internal/store"
)

var (
	// Flag overrides applied on top of the loaded config.
	storeDirFlag string
	verboseFlag  bool

	cfg    *config.Config
	logger *log.Logger

	rootCmd = &cobra.Command{
		Use:   "naming",
		Short: "Solve and decode names against a shared naming convention",
		Long: `naming manages naming conventions: ordered, typed fields grouped
into profiles. A profile solves a canonical name from partial input and
decodes an existing name back into field values.

Conventions are persisted as JSON documents (one per state group) in a
store directory resolved from NAMING_PATH, the config file, or the
per-user data directory, so every session agrees on the rules.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if storeDirFlag != "" {
				cfg.StoreDir = storeDirFlag
			}
			if verboseFlag {
				cfg.Verbose = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger = logging.New(cfg)
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&storeDirFlag, "store", "", "store directory (overrides NAMING_PATH and config file)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug output")

	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(unsolveCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(checkCmd)
}

// openRegistry loads the persisted convention state from the store
// directory. Commands mutate the returned registry and call Save to
// publish their change.
func openRegistry() (*registry.Registry, error) {
	reg := registry.New(store.NewJSONDriver(cfg.StoreDir))
	if err := reg.Load(); err != nil {
		return nil, fmt.Errorf("load convention state: %w", err)
	}
	return reg, nil
}

// resolveProfile returns the named profile, or the active one when name
// is empty.
func resolveProfile(reg *registry.Registry, name string) (*convention.Profile, error) {
	if name != "" {
		p, ok := reg.Profile(name)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", name)
		}
		return p, nil
	}
	p := reg.ActiveProfile()
	if p == nil {
		return nil, fmt.Errorf("no active profile; add one with 'naming profile add' or pass --profile")
	}
	return p, nil
}
