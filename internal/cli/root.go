// Package cli wires the command-line entry point around the
// interactive session.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/avazquez/taskline/internal/config"
	"github.com/avazquez/taskline/internal/prompt"
	"github.com/avazquez/taskline/internal/render"
	"github.com/avazquez/taskline/internal/session"
	"github.com/avazquez/taskline/internal/store"
	"github.com/avazquez/taskline/internal/version"
)

var (
	flagFile    string
	flagNoColor bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "taskline",
	Short:        "Personal task tracker with an interactive session",
	Long:         `Taskline tracks personal tasks through a line-oriented interactive session: add, print, edit, and delete tasks. The collection is loaded at startup and saved when the session ends.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE:         runSession,
}

func init() {
	rootCmd.Flags().StringVar(&flagFile, "file", "", "Path to the task file (overrides config)")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable color output")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagFile != "" {
		cfg.StoreFile = flagFile
	}
	if flagNoColor {
		cfg.NoColor = true
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	st, err := store.Load(cfg.StoreFile)
	if err != nil {
		return err
	}
	logger.Debug("store loaded", "path", cfg.StoreFile, "tasks", st.Len())

	sess := session.New(st,
		prompt.New(os.Stdin, os.Stdout),
		render.New(!cfg.NoColor),
		os.Stdout,
		logger)
	if err := sess.Run(); err != nil {
		return err
	}

	if err := store.Save(cfg.StoreFile, st); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	logger.Debug("store saved", "path", cfg.StoreFile, "tasks", st.Len())
	return nil
}
