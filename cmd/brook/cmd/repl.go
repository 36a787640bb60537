package cmd

import "github.com/spf13/cobra"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive session",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return startREPL()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
