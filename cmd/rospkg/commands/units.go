package commands

import (
	"fmt"

	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newStackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Query stacks",
	}
	cmd.AddCommand(c.unitCommands(domain.KindStack)...)
	cmd.AddCommand(
		&cobra.Command{
			Use:   "version NAME",
			Short: "Print the version of a stack",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, ok, err := c.app.Version(args[0])
				if err != nil {
					return err
				}
				if ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "contents NAME",
			Short: "List the packages inside a stack",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				pkgs, err := c.app.Contents(args[0])
				if err != nil {
					return err
				}
				printLines(cmd.OutOrStdout(), pkgs)
				return nil
			},
		},
	)
	return cmd
}

func (c *CLI) newPkgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pkg",
		Short: "Query packages",
	}
	cmd.AddCommand(c.unitCommands(domain.KindPackage)...)
	cmd.AddCommand(&cobra.Command{
		Use:   "stack-of NAME",
		Short: "Print the stack a package belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stack, ok, err := c.app.StackOf(args[0])
			if err != nil {
				return err
			}
			if ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), stack)
			}
			return nil
		},
	})
	return cmd
}

// unitCommands returns the queries shared by stacks and packages.
func (c *CLI) unitCommands(kind domain.Kind) []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "list",
			Short: fmt.Sprintf("List every %s on the search path", kind),
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				printLines(cmd.OutOrStdout(), c.app.List(kind))
			},
		},
		{
			Use:   "find NAME",
			Short: fmt.Sprintf("Print the directory of a %s", kind),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := c.app.Find(kind, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		{
			Use:   "depends NAME",
			Short: fmt.Sprintf("List every %s a %s depends on, directly or not", kind, kind),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				deps, err := c.app.Depends(kind, args[0])
				if err != nil {
					return err
				}
				printLines(cmd.OutOrStdout(), deps)
				return nil
			},
		},
		{
			Use:   "depends1 NAME",
			Short: fmt.Sprintf("List the direct dependencies of a %s", kind),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				deps, err := c.app.DirectDepends(kind, args[0])
				if err != nil {
					return err
				}
				printLines(cmd.OutOrStdout(), deps)
				return nil
			},
		},
	}
}
