package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewFilterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "filter <on|off>",
		Short:     "Toggle the master filter",
		Long:      "Toggles the master filter. When off, conversions pass tags through unfiltered.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			enabled, err := parseToggle(args[0])
			if err != nil {
				return err
			}

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SetMasterEnabled(ctx, enabled); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Master filter %s\n", args[0])
			return nil
		},
	}

	return cmd
}

func NewSimplifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "simplify <on|off>",
		Short:     "Toggle the simplify pass",
		Long:      "Toggles the redundancy simplification pass that drops tags contained in other tags.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			enabled, err := parseToggle(args[0])
			if err != nil {
				return err
			}

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SetSimplifyEnabled(ctx, enabled); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Simplify pass %s\n", args[0])
			return nil
		},
	}

	return cmd
}

func parseToggle(arg string) (bool, error) {
	switch arg {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected 'on' or 'off', got %q", arg)
	}
}
