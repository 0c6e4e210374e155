package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record a daily check-in and print the streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		date, _ := cmd.Flags().GetString("date")

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.Users.CheckIn(ctx, date)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "streak %d (longest %d), %d words learned\n",
			stats.CurrentStreak, stats.LongestStreak, stats.TotalWordsLearned)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkinCmd)
	checkinCmd.Flags().String("date", "", "check-in day as YYYY-MM-DD (default today)")
}
