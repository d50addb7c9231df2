package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskdeck/internal/config"
	"taskdeck/internal/logging"
	"taskdeck/internal/task"
	"taskdeck/internal/ui"
)

var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	logFile    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "taskdeck",
		Short:         "Manage a short task list in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to config.toml (default: user config dir).")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file, overriding [log].path.")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "One of debug, info, warn, error, overriding [log].level.")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the taskdeck version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return cmd
}

func run(opts *options) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.ResolveConfigPath()
	}
	firstLaunch := false
	if _, err := os.Stat(configPath); err != nil {
		firstLaunch = errors.Is(err, os.ErrNotExist)
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.logFile != "" {
		cfg.Log.Path = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, closer, err := logging.New(logging.Options{
		Path:   cfg.Log.Path,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	return ui.Run(task.NewStore(), cfg, logger, configPath, firstLaunch)
}
