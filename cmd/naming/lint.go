package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xileflig/naming/internal/display"
	"github.com/xileflig/naming/internal/lint"
)

var lintProfileFlag string

var lintCmd = &cobra.Command{
	Use:   "lint <dir>",
	Short: "Check file names under a directory against the convention",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		profile, err := resolveProfile(reg, lintProfileFlag)
		if err != nil {
			return err
		}

		report, err := lint.Scan(args[0], profile)
		if err != nil {
			return err
		}
		fmt.Println(display.RenderReport(report))
		if !report.Clean() {
			return fmt.Errorf("%d file(s) violate profile %q", len(report.Violations), profile.Name())
		}
		return nil
	},
}

func init() {
	lintCmd.Flags().StringVarP(&lintProfileFlag, "profile", "p", "", "profile to lint against (default: active profile)")
}
