// Package commands implements the CLI commands for packsync.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/packsync/internal/app"
	"go.trai.ch/packsync/internal/build"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for packsync.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	jsonLogs func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Save(ctx context.Context, name string, opts app.SaveOptions) (domain.NamedProfile, error)
	Restore(ctx context.Context, name string, opts app.RestoreOptions) (app.RestoreResult, error)
	Select(ctx context.Context, name string, opts app.RestoreOptions) (app.RestoreResult, error)
	Diff(ctx context.Context, from, to string) (domain.ProfileDiff, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.NamedProfile, error)
}

// Option configures a CLI.
type Option func(*CLI)

// WithJSONLogs registers the callback invoked when --json is given.
func WithJSONLogs(fn func(bool)) Option {
	return func(c *CLI) {
		c.jsonLogs = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "packsync",
		Short:         "Snapshot and restore globally installed npm, yarn and pnpm packages",
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

	flags := rootCmd.PersistentFlags()
	flags.String("pm", "", "Package manager to use: npm, yarn or pnpm")
	flags.Int("concurrency", 0, "Number of packages installed at once (default from config, 3)")
	flags.Bool("exact-version", false, "Install the saved versions instead of the latest ones")
	flags.Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs && c.jsonLogs != nil {
			c.jsonLogs(true)
		}
		return nil
	}

	rootCmd.AddCommand(c.newSaveCmd())
	rootCmd.AddCommand(c.newRestoreCmd())
	rootCmd.AddCommand(c.newSelectCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newDeleteCmd())
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

// managerFlag parses --pm. An empty value means no override.
func managerFlag(cmd *cobra.Command) (domain.Manager, error) {
	raw, _ := cmd.Flags().GetString("pm")
	if raw == "" {
		return "", nil
	}
	return domain.ParseManager(raw)
}

func restoreOptions(cmd *cobra.Command) (app.RestoreOptions, error) {
	m, err := managerFlag(cmd)
	if err != nil {
		return app.RestoreOptions{}, err
	}

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if cmd.Flags().Changed("concurrency") && concurrency < 1 {
		err := zerr.Wrap(domain.ErrInvalidConcurrency, fmt.Sprintf("invalid --concurrency %d", concurrency))
		return app.RestoreOptions{}, zerr.With(err, "concurrency", concurrency)
	}

	exact, _ := cmd.Flags().GetBool("exact-version")

	return app.RestoreOptions{
		Manager:     m,
		Concurrency: concurrency,
		UseLatest:   !exact,
	}, nil
}

func optionalName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
