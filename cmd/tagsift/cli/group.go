package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/mwantia/tagsift/pkg/filter"
)

func NewGroupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage filter groups",
		Long:  "Manage filter groups and list, create or update their keywords and replacements.",
	}

	cmd.AddCommand(NewGroupListCommand())
	cmd.AddCommand(NewGroupAddCommand())
	cmd.AddCommand(NewGroupRemoveCommand())
	cmd.AddCommand(NewGroupEnableCommand())
	cmd.AddCommand(NewGroupDisableCommand())
	cmd.AddCommand(NewGroupSetCommand())
	cmd.AddCommand(NewGroupMoveCommand())

	return cmd
}

func NewGroupListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List filter groups",
		Long:  "List all filter groups in execution order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			groups, err := st.ListGroups(ctx)
			if err != nil {
				return err
			}

			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No filter groups configured")
				return nil
			}

			for i, group := range groups {
				state := "enabled"
				if !group.Enabled {
					state = "disabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s  [%s]  %s  (%d keywords)\n",
					i, group.ID, state, group.Name, len(group.Keywords))
				if group.Replacement != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "   replacement: %s\n", group.Replacement)
				}
			}

			return nil
		},
	}

	return cmd
}

func NewGroupAddCommand() *cobra.Command {
	var keywords []string
	var replacement string
	var disabled bool

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a filter group",
		Long:  "Creates a new filter group appended at the end of the execution order. An empty name gets a generated placeholder.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if _, ok := filter.ValidateReplacement(replacement); !ok {
				return fmt.Errorf("invalid replacement %q: commas must be followed by exactly one space", replacement)
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			group := filter.NewGroup(name, keywords...)
			group.Replacement = replacement
			group.Enabled = !disabled

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.CreateGroup(ctx, group); err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created group %s (%s)\n", group.Name, group.ID)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "Keyword pattern, may be given multiple times")
	cmd.Flags().StringVarP(&replacement, "replacement", "r", "", "Replacement tokens, joined with ', '")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Create the group disabled")

	return cmd
}

func NewGroupRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a filter group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteGroup(ctx, args[0]); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("no group with id %s", args[0])
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed group %s\n", args[0])
			return nil
		},
	}

	return cmd
}

func NewGroupEnableCommand() *cobra.Command {
	return newGroupToggleCommand("enable", true)
}

func NewGroupDisableCommand() *cobra.Command {
	return newGroupToggleCommand("disable", false)
}

func newGroupToggleCommand(verb string, enabled bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   verb + " <id>",
		Short: verb + "s a filter group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SetGroupEnabled(ctx, args[0], enabled); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("no group with id %s", args[0])
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Group %s %sd\n", args[0], verb)
			return nil
		},
	}

	return cmd
}

func NewGroupMoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mv <id> <position>",
		Short: "Move a filter group",
		Long:  "Moves a filter group to the given position in the execution order. Positions start at 0; out-of-range positions clamp to the list ends.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			position, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.MoveGroup(ctx, args[0], position); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("no group with id %s", args[0])
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Moved group %s to position %d\n", args[0], position)
			return nil
		},
	}

	return cmd
}

func NewGroupSetCommand() *cobra.Command {
	var name string
	var keywords []string
	var replacement string

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Update a filter group",
		Long:  "Updates the name, keywords or replacement of an existing filter group. Keywords given here replace the previous list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			group, err := st.GetGroup(ctx, args[0])
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("no group with id %s", args[0])
				}
				return err
			}

			if cmd.Flags().Changed("name") {
				group.Name = name
			}
			if cmd.Flags().Changed("keyword") {
				group.Keywords = keywords
			}
			if cmd.Flags().Changed("replacement") {
				if _, ok := filter.ValidateReplacement(replacement); !ok {
					return fmt.Errorf("invalid replacement %q: commas must be followed by exactly one space", replacement)
				}
				group.Replacement = replacement
			}

			if err := st.UpdateGroup(ctx, group); err != nil {
				return fmt.Errorf("failed to update group: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated group %s\n", group.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "Keyword pattern, may be given multiple times")
	cmd.Flags().StringVarP(&replacement, "replacement", "r", "", "Replacement tokens, joined with ', '")

	return cmd
}
