package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mverbeek/verbuig/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "verbuig",
	Short: "Dutch verb conjugation trainer",
	Long:  "Verbuig — terminal app for drilling Dutch verb conjugations across the four main tenses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(app.Options{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(verbsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
