package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/wordspark/echo/internal/models"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the words to review and learn on a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		date, _ := cmd.Flags().GetString("date")

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		var plan *models.DailyLearningPlan
		if date == "" {
			plan, err = a.Plans.Today(ctx)
		} else {
			plan, err = a.Plans.DailyPlan(ctx, date)
		}
		if err != nil {
			return err
		}
		printPlan(cmd.OutOrStdout(), plan)
		return nil
	},
}

func printPlan(w io.Writer, plan *models.DailyLearningPlan) {
	fmt.Fprintf(w, "%s  goal %d\n", plan.Date, plan.DailyGoal)
	fmt.Fprintf(w, "review (%d): %s\n", len(plan.ReviewWords), wordList(plan.ReviewWords))
	fmt.Fprintf(w, "new    (%d): %s\n", len(plan.NewWords), wordList(plan.NewWords))
}

func wordList(words []models.Word) string {
	if len(words) == 0 {
		return "-"
	}
	return strings.Join(lo.Map(words, func(w models.Word, _ int) string { return w.Text }), ", ")
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().String("date", "", "day to plan as YYYY-MM-DD (default today)")
}
