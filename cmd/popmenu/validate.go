package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/popmenu/internal/config"
	"github.com/alexisbeaulieu97/popmenu/internal/menu"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a menu definition file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(configPath); err != nil {
				return err
			}

			cfg, err := config.ParseConfig(configPath)
			if err != nil {
				return err
			}

			// Building each menu surfaces degraded options as warnings.
			log, err := root.newLogger(cmd.ErrOrStderr(), "validate")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, def := range cfg.Menus {
				opts := def.MenuOptions()
				opts.Logger = log
				m := menu.New(opts)
				fmt.Fprintf(out, "  %s (%s, %s)\n", def.ID, m.Mode(), m.Size())
			}
			fmt.Fprintf(out, "✓ %s: %d menu(s) valid\n", cfg.Name, len(cfg.Menus))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to menu definition file")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}
