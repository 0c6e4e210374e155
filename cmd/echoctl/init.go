package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Prepare the database and the local user's learning plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Bootstrap(ctx); err != nil {
			return err
		}
		today, err := a.Plans.Today(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "store ready at %s, %d words planned for today\n", a.Config.DBPath, today.TotalWords())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
