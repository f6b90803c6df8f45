package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwantia/tagsift/pkg/filter"
	"github.com/mwantia/tagsift/pkg/log"
	"github.com/mwantia/tagsift/pkg/pipeline"
)

func NewConvertCommand() *cobra.Command {
	var jsonOutput bool
	var noFilter bool
	var legacySimplify bool
	var formatName string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a raw tag export",
		Long:  "Converts a raw tag export (Danbooru, Gelbooru or plain comma-separated) into a deduplicated, filtered tag list. Reads from stdin when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			st, cfg, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			fcfg, err := st.LoadConfig(ctx)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, falling back to defaults\n", err)
				fcfg = filter.DefaultConfig()
			}
			if noFilter {
				fcfg.MasterEnabled = false
			}

			var opts []filter.Option
			if legacySimplify {
				opts = append(opts, filter.WithSimplifyMode(filter.SimplifyModeLoose))
			}

			logger := log.NewLoggerService("tagsift", cfg.Log)
			conv := pipeline.NewConverter(logger.Named("pipeline"), filter.NewEngine(fcfg, opts...))

			var tags []string
			if formatName != "" {
				format, err := pipeline.ParseFormat(formatName)
				if err != nil {
					return err
				}
				tags = conv.ConvertAs(string(data), format)
			} else {
				tags = conv.Convert(string(data))
			}

			if jsonOutput {
				out := struct {
					Tags   []string        `json:"tags"`
					Status pipeline.Status `json:"status"`
				}{tags, conv.Status()}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tags, ", "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output tags and status snapshot as JSON")
	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "Skip the filter engine")
	cmd.Flags().BoolVar(&legacySimplify, "legacy-simplify", false, "Use plain substring containment for the simplify pass")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Force the input format (standard, danbooru, gelbooru)")

	return cmd
}
