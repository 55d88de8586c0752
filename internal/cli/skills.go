package cli

import (
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills [name]",
	Short: "List the available skills, or show the help of one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		reg, err := newRegistry(settings, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		reg.Help(name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}
