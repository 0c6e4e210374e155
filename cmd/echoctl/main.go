package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wordspark/echo/internal/app"
	"github.com/wordspark/echo/internal/config"
	"github.com/wordspark/echo/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "echoctl",
	Short:         "Manage the local Echo vocabulary store",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logger.SetDefault(logger.New(logger.WithLevel(logger.ParseLevel(level)), logger.WithOutput(os.Stderr)))
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "WARN", "log level (DEBUG, INFO, WARN, ERROR)")
}

// openApp loads the environment configuration and opens the store.
func openApp(ctx context.Context) (*app.App, error) {
	return app.New(ctx, config.Load())
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
