package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/popmenu/internal/config"
	"github.com/alexisbeaulieu97/popmenu/internal/logger"
	"github.com/alexisbeaulieu97/popmenu/internal/tui"
)

const (
	minDemoWidth  = 40
	minDemoHeight = 16
)

var errNotInteractive = errors.New("demo requires an interactive terminal")

type demoOptions struct {
	ConfigPath string
	LogFile    string
}

// demoCmdRunner is swapped in tests so the program never takes the terminal.
var demoCmdRunner = runDemo

func newDemoCmd(root *rootFlags) *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open a toolbar of menus from a definition file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			cfg, err := config.ParseConfig(opts.ConfigPath)
			if err != nil {
				return err
			}

			log := logger.Discard()
			if opts.LogFile != "" {
				file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer file.Close()

				log, err = root.newLogger(file, "demo")
				if err != nil {
					return err
				}
			}

			return demoCmdRunner(cfg, log)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to menu definition file")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file while the demo runs")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runDemo(cfg *config.Config, log *logger.Logger) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotInteractive
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	if width < minDemoWidth || height < minDemoHeight {
		return fmt.Errorf("terminal is %dx%d; the demo needs at least %dx%d", width, height, minDemoWidth, minDemoHeight)
	}

	log.WithFields(map[string]any{"menus": len(cfg.Menus), "width": width, "height": height}).Info("starting demo")

	m := tui.NewModel(cfg, log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}

	log.Info("demo closed")
	return nil
}
