package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/skincare/internal/config"
	"github.com/jask/skincare/internal/logging"
	"github.com/jask/skincare/internal/tui"
)

// env holds state shared by every command once PersistentPreRunE has run.
type env struct {
	configPath string
	verbose    bool

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "skincare",
		Short: "Build and keep skincare routines",
		Long: `skincare asks for your skin type and concerns, then builds a routine
from a fixed product table. Routines can be saved, listed and exported.

Run without arguments to start the interactive app.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runInteractive(cmd)
		},
	}

	root.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default $SKINCARE_CONFIG or ~/.config/skincare/config.toml)")
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newGenerateCmd(e),
		newRoutinesCmd(e),
		newCatalogCmd(),
		newResetCmd(e),
		newConfigCmd(e),
	)
	return root
}

func (e *env) setup() error {
	var (
		cfg config.Config
		err error
	)
	if e.configPath != "" {
		cfg, err = config.LoadFrom(e.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	e.cfg = cfg

	logger, err := logging.New(cfg.Log, e.verbose)
	if err != nil {
		return err
	}
	e.log = logger
	e.log.Debug("config loaded",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("config", e.resolvedConfigPath()))
	return nil
}

func (e *env) resolvedConfigPath() string {
	if e.configPath != "" {
		return e.configPath
	}
	return config.Path()
}

func (e *env) runInteractive(cmd *cobra.Command) error {
	planner, closeStore, err := e.openPlanner()
	if err != nil {
		return err
	}
	defer closeStore()

	var opts []tea.ProgramOption
	if e.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout()))

	p := tea.NewProgram(tui.New(cmd.Context(), e.cfg.UI, planner, e.log), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
