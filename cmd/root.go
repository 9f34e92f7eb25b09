package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "whittle",
		Short:         "whittle: play the elimination guessing game from your terminal",
		Long:          "whittle is a terminal client for the elimination guessing game: the server picks a secret candidate, you whittle the roster down one exclusion at a time until you isolate it or run out of wrong guesses.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newResultsCmd(app),
	)

	return rootCmd
}
