// Package commands implements the CLI commands for rospkg.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/alessandro-aglietti/rospkg/internal/build"
	"github.com/alessandro-aglietti/rospkg/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for rospkg.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetROSRoot(root string)
	SetPackagePath(packagePath string)

	List(kind domain.Kind) []string
	Find(kind domain.Kind, name string) (string, error)
	Depends(kind domain.Kind, name string) ([]string, error)
	DirectDepends(kind domain.Kind, name string) ([]string, error)

	Version(stack string) (string, bool, error)
	Contents(stack string) ([]string, error)
	StackOf(pkg string) (string, bool, error)
	Expand(names []string) (resolved, unresolved []string, err error)

	CleanCache() error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rospkg",
		Short:         "Locate ROS stacks and packages and query their dependencies",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("ros-root", "", "Root search path (overrides ROS_ROOT)")
	rootCmd.PersistentFlags().String("ros-package-path", "", "Extra search paths (overrides ROS_PACKAGE_PATH)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.applySearchFlags

	rootCmd.AddCommand(c.newStackCmd())
	rootCmd.AddCommand(c.newPkgCmd())
	rootCmd.AddCommand(c.newExpandCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) applySearchFlags(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("ros-root") {
		root, err := flags.GetString("ros-root")
		if err != nil {
			return err
		}
		c.app.SetROSRoot(root)
	}
	if flags.Changed("ros-package-path") {
		packagePath, err := flags.GetString("ros-package-path")
		if err != nil {
			return err
		}
		c.app.SetPackagePath(packagePath)
	}
	return nil
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}
}
