package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/xileflig/naming/internal/check"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run store diagnostics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !check.Run(cfg, logger) {
			return errors.New("store check failed")
		}
		return nil
	},
}
