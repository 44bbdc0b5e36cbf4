package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/osiris-intel/osiris/internal/tui"
)

func newTUICmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the dashboard in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("tui needs an interactive terminal; use 'osiris render' for scripted output")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			_, cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			// The screen belongs to bubbletea; logs go to a file or nowhere.
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level()}))

			p := tea.NewProgram(tui.New(cat, tui.WithLogger(logger)), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
