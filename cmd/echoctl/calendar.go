package main

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/wordspark/echo/internal/models"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print a month grid with the number of words planned per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		month, _ := cmd.Flags().GetString("month")

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		days, err := a.Calendar.MonthOf(ctx, month)
		if err != nil {
			return err
		}
		printCalendar(cmd.OutOrStdout(), days)
		return nil
	},
}

// printCalendar writes one row per week. Each cell is the day number and
// the planned word count; days outside the month are blank.
func printCalendar(w io.Writer, days []models.CalendarDay) {
	if len(days) == 0 {
		return
	}
	for i := 0; i < 7; i++ {
		fmt.Fprintf(w, "%-9s", days[i].Date.Weekday().String()[:3])
	}
	fmt.Fprintln(w)

	for _, week := range lo.Chunk(days, 7) {
		for _, d := range week {
			switch {
			case !d.IsInCurrentMonth:
				fmt.Fprintf(w, "%-9s", "")
			case d.HasLearningPlan:
				fmt.Fprintf(w, "%-9s", fmt.Sprintf("%2d (%d)", d.DayNumber, d.WordCount))
			default:
				fmt.Fprintf(w, "%-9s", fmt.Sprintf("%2d", d.DayNumber))
			}
		}
		fmt.Fprintln(w)
	}
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().String("month", "", "month as YYYY-MM (default current month)")
}
