package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var emulateCmd = &cobra.Command{
	Use:   "emulate <line>...",
	Short: "Run each argument as a command line, echoing it first",
	Example: `  habilidades emulate ayuda "bitcoin2euro 100"
  habilidades emulate 'listadelacompra insertar "1 kg de peras"' 'listadelacompra listar'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		// Missing arguments are read from stdin when --ask is set.
		sess, err := newSession(settings, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer sess.Close()

		for _, line := range args {
			if sess.shell.Emulate(cmd.Context(), strings.TrimRight(line, "\r\n")) {
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(emulateCmd)
}
