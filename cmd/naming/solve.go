package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xileflig/naming/internal/display"
)

var solveProfileFlag string

var solveCmd = &cobra.Command{
	Use:   "solve [value]...",
	Short: "Compose a canonical name from candidate values",
	Long: `Solve composes a name from the given candidate values. Each field of
the profile picks the candidates it recognizes: lookup fields match their
keys, int fields match whole numbers, text fields take any string not
claimed by a lookup field. Missing values fall back to field defaults.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		profile, err := resolveProfile(reg, solveProfileFlag)
		if err != nil {
			return err
		}

		candidates := parseCandidates(args)
		for _, ft := range profile.Solve(candidates...) {
			for _, m := range ft.Mismatches {
				logger.Debug("candidate skipped", "field", m.Field, "value", m.Value, "reason", m.Reason)
			}
		}

		name, err := profile.Compose(candidates...)
		if err != nil {
			return err
		}
		fmt.Println(name)
		return nil
	},
}

var unsolveCmd = &cobra.Command{
	Use:   "unsolve <name>",
	Short: "Decode a name back into its field values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		profile, err := resolveProfile(reg, solveProfileFlag)
		if err != nil {
			return err
		}

		values, err := profile.Unsolve(args[0])
		if err != nil {
			return err
		}
		fmt.Println(display.RenderValues(values))
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveProfileFlag, "profile", "p", "", "profile to use (default: active profile)")
	unsolveCmd.Flags().StringVarP(&solveProfileFlag, "profile", "p", "", "profile to use (default: active profile)")
}

// parseCandidates maps CLI arguments to typed candidates: whole numbers
// become ints (so int fields can match), everything else stays a string.
func parseCandidates(args []string) []any {
	out := make([]any, 0, len(args))
	for _, a := range args {
		if n, err := strconv.Atoi(a); err == nil {
			out = append(out, n)
			continue
		}
		out = append(out, a)
	}
	return out
}
