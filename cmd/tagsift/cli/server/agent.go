package server

import (
	"context"
	"fmt"

	"github.com/mwantia/tagsift/internal/agent"
	"github.com/spf13/cobra"

	config "github.com/mwantia/tagsift/internal/config/server"
)

func NewAgentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Start the tagsift watch agent",
		Long:  "Starts the tagsift watch agent, which converts the configured input file on every change and writes the normalized tag list to the output file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load server configuration: %w", err)
			}

			agent := agent.NewAgent(cfg)
			if err := agent.Serve(context.Background()); err != nil {
				return err
			}

			return nil
		},
	}

	return cmd
}
