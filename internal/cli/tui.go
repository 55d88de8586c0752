package cli

import (
	"bytes"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathfavour/habilidades/internal/tui"
	"github.com/nathfavour/habilidades/pkg/history"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		buf := &bytes.Buffer{}
		reg, err := newRegistry(settings, buf)
		if err != nil {
			return err
		}

		var m tui.Model
		if settings.History.Enabled {
			store, err := history.Open(settings.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()
			m = tui.New(cmd.Context(), reg, buf, store)
		} else {
			m = tui.New(cmd.Context(), reg, buf, nil)
		}

		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}
