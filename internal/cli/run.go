package cli

import (
	"fmt"
	"io"

	"github.com/nathfavour/habilidades/pkg/skills"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Read commands from standard input until 'salir' or end of input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runInteractive(cmd *cobra.Command) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	sess, err := newSession(settings, cmd.InOrStdin(), out)
	if err != nil {
		return err
	}
	defer sess.Close()

	printWelcome(out)
	return sess.shell.Run(cmd.Context())
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintf(out, "Escribe '%s' para ver las habilidades o '%s' para terminar.\n", skills.HelpCommand, skills.ExitCommand)
}
