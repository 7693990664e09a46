// Package cmd wires the tracker command tree and maps command errors to
// exit codes
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/cli/styles"
	"github.com/thenoetrevino/tracker/internal/cli/task"
	"github.com/thenoetrevino/tracker/internal/config"
	"github.com/thenoetrevino/tracker/internal/logging"
)

// EnvFile is the dotenv file read from the working directory at startup
const EnvFile = ".env"

// NewRootCmd builds the tracker command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Tracker - a command-line task tracker",
		Long: `Tracker keeps a list of tasks in a local JSON file.

Tasks are added, listed, updated, deleted and marked by status. The task file
defaults to ~/.tracker/tasks.json and can be moved with --file, TRACKER_FILE
or storage_path in the config file.`,
		Args:              cli.NoArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("file", "", "Task file (overrides storage_path and TRACKER_FILE)")
	rootCmd.PersistentFlags().String("config", "", "Config file (overrides TRACKER_CONFIG)")

	// Flag parsing errors are usage errors
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.NewValidationError("", "%s", err.Error())
	})

	rootCmd.AddCommand(task.Commands()...)
	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	return ExecuteArgs(context.Background(), os.Args[1:])
}

// ExecuteArgs runs the command tree with args. Every error is reported here,
// as a message on stderr or a JSON error object on stdout with --json.
func ExecuteArgs(ctx context.Context, args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)

	executed, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	jsonOutput := false
	if executed != nil {
		jsonOutput, _ = executed.Flags().GetBool("json")
	}
	return cli.ReportError(cli.NewFormatter(jsonOutput, false), err)
}

// setup loads configuration, starts logging and installs the application
// in the command context before any subcommand runs
func setup(cmd *cobra.Command, args []string) error {
	// help, completion and bare "tracker" never touch the task file
	if _, ok := cmd.Annotations[cli.AnnotationRequiresApp]; !ok {
		return nil
	}

	if err := config.LoadEnvFile(EnvFile); err != nil {
		return &cli.ConfigError{Err: err}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return &cli.ConfigError{Err: err}
	}

	// Logging failures never abort a command
	if err := logging.Init(cfg.LogDir, cfg.LogLevel); err != nil {
		logging.Discard()
	}

	if cfg.NoColor {
		styles.Reset()
	} else {
		styles.Init(cfg.ColorScheme)
	}

	slog.Debug("command started",
		"command", cmd.Name(),
		"file", cfg.StoragePath,
		"config", cfg.Source())

	cliInstance, err := cli.NewCLI(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	cmd.SetContext(cli.WithApp(cmd.Context(), cliInstance.App))
	return nil
}

// loadConfig reads the config named by --config, or the default locations,
// then applies --file
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if file, _ := cmd.Flags().GetString("file"); file != "" {
		cfg.SetStoragePath(file)
	}
	return cfg, nil
}
