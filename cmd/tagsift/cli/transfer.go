package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwantia/tagsift/pkg/filter"
)

func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the filter configuration",
		Long:  "Exports the filter configuration as a JSON document. Writes to stdout when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			cfg, err := st.LoadConfig(ctx)
			if err != nil {
				return err
			}

			data, err := filter.Export(cfg, time.Now())
			if err != nil {
				return fmt.Errorf("failed to serialize configuration: %w", err)
			}

			if len(args) == 1 {
				if err := os.WriteFile(args[0], append(data, '\n'), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d group(s) to %s\n", len(cfg.Groups), args[0])
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	return cmd
}

func NewImportCommand() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a filter configuration",
		Long:  "Imports a JSON filter configuration document. Imported groups are appended under fresh ids by default; --replace adopts the document wholesale.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			current, err := st.LoadConfig(ctx)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, falling back to defaults\n", err)
				current = filter.DefaultConfig()
			}

			mode := filter.ImportAppend
			if replace {
				mode = filter.ImportReplace
			}

			result := filter.Import(current, data, mode)
			if !result.Success {
				return fmt.Errorf("import failed: %s", result.Error)
			}

			if err := st.SaveConfig(ctx, result.Config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d group(s)\n", result.Added)
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the current configuration instead of appending groups")

	return cmd
}
