package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xileflig/naming/internal/convention"
	"github.com/xileflig/naming/internal/display"
)

var (
	profileFieldsFlag    []string
	profileSeparatorFlag string
	profileActiveFlag    bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profiles (ordered field sets with a separator)",
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a profile from registered fields (order matters)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		_, err = reg.AddProfile(args[0], profileFieldsFlag, profileActiveFlag,
			convention.WithSeparator(profileSeparatorFlag))
		if err != nil {
			return err
		}
		if err := reg.Save(); err != nil {
			return fmt.Errorf("save convention state: %w", err)
		}
		isActive := reg.ActiveProfile() != nil && reg.ActiveProfile().Name() == args[0]
		logger.Info("profile registered",
			"name", args[0],
			"fields", len(profileFieldsFlag),
			"active", isActive)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles, marking the active one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		active := ""
		if p := reg.ActiveProfile(); p != nil {
			active = p.Name()
		}
		fmt.Println(display.RenderProfiles(reg.Profiles(), active))
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		if err := reg.SetActiveProfile(args[0]); err != nil {
			return err
		}
		if err := reg.Save(); err != nil {
			return fmt.Errorf("save convention state: %w", err)
		}
		logger.Info("active profile set", "name", args[0])
		return nil
	},
}

func init() {
	profileAddCmd.Flags().StringSliceVar(&profileFieldsFlag, "fields", nil, "field names in join order (required)")
	profileAddCmd.Flags().StringVar(&profileSeparatorFlag, "separator", convention.DefaultSeparator, "token separator")
	profileAddCmd.Flags().BoolVar(&profileActiveFlag, "active", false, "make this the active profile")
	_ = profileAddCmd.MarkFlagRequired("fields")

	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileUseCmd)
}
