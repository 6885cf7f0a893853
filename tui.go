package main

import (
	"github.com/nconklindev/menuconv/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the conversion with a progress view",
	Long: `tui runs the same conversion as menuconv but shows per-sheet progress and a
summary instead of console log lines. The log file is still written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, closeLog, err := setup(nil)
		if err != nil {
			return err
		}
		defer closeLog()

		m := ui.InitialModel(newConverter(cfg, log), cfg.Input.Path)
		p := tea.NewProgram(m, tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return err
		}
		if err := final.(ui.Model).Err(); err != nil {
			return loggedError{err}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
