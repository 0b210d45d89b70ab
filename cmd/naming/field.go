package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xileflig/naming/internal/convention"
	"github.com/xileflig/naming/internal/display"
)

var (
	fieldTypeFlag    string
	fieldPairsFlag   []string
	fieldDefaultFlag string
	fieldPaddingFlag int
	fieldOptionFlag  bool
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage the typed fields of the convention",
}

var fieldAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a field (re-adding a name replaces its definition)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := buildField(cmd, args[0])
		if err != nil {
			return err
		}

		reg, err := openRegistry()
		if err != nil {
			return err
		}
		if err := reg.AddField(field); err != nil {
			return err
		}
		if err := reg.Save(); err != nil {
			return fmt.Errorf("save convention state: %w", err)
		}
		logger.Info("field registered", "name", field.Name(), "kind", field.Kind())
		return nil
	},
}

var fieldListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := openRegistry()
		if err != nil {
			return err
		}
		fmt.Println(display.RenderFields(reg.Fields()))
		return nil
	},
}

func init() {
	fieldAddCmd.Flags().StringVarP(&fieldTypeFlag, "type", "t", "", "field kind: text | lookup | int (required)")
	fieldAddCmd.Flags().StringSliceVar(&fieldPairsFlag, "pairs", nil, "lookup pairs as key=token (order matters)")
	fieldAddCmd.Flags().StringVar(&fieldDefaultFlag, "default", "", "default token (numeric for int fields)")
	fieldAddCmd.Flags().IntVar(&fieldPaddingFlag, "padding", convention.DefaultPadding, "digit width for int fields")
	fieldAddCmd.Flags().BoolVar(&fieldOptionFlag, "optional", false, "omit the field from names when unsatisfied")
	_ = fieldAddCmd.MarkFlagRequired("type")

	fieldCmd.AddCommand(fieldAddCmd)
	fieldCmd.AddCommand(fieldListCmd)
}

func buildField(cmd *cobra.Command, name string) (*convention.Field, error) {
	var opts []convention.Option
	if fieldOptionFlag {
		opts = append(opts, convention.Optional())
	}

	switch strings.ToLower(fieldTypeFlag) {
	case "text":
		if cmd.Flags().Changed("default") {
			opts = append(opts, convention.WithDefault(fieldDefaultFlag))
		}
		return convention.NewTextField(name, opts...)
	case "lookup":
		pairs, err := parsePairs(fieldPairsFlag)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("default") {
			opts = append(opts, convention.WithDefault(fieldDefaultFlag))
		}
		return convention.NewLookupField(name, pairs, opts...)
	case "int", "integer":
		if cmd.Flags().Changed("padding") {
			opts = append(opts, convention.WithPadding(fieldPaddingFlag))
		}
		if cmd.Flags().Changed("default") {
			n, err := strconv.Atoi(fieldDefaultFlag)
			if err != nil {
				return nil, fmt.Errorf("int field default must be numeric (got %q)", fieldDefaultFlag)
			}
			opts = append(opts, convention.WithIntDefault(n))
		}
		return convention.NewIntegerField(name, opts...)
	}
	return nil, fmt.Errorf("invalid field type %q (use 'text', 'lookup' or 'int')", fieldTypeFlag)
}

func parsePairs(raw []string) ([]convention.Pair, error) {
	pairs := make([]convention.Pair, 0, len(raw))
	for _, entry := range raw {
		key, token, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q (use key=token)", entry)
		}
		pairs = append(pairs, convention.Pair{Key: key, Token: token})
	}
	return pairs, nil
}
