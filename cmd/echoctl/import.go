package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wordspark/echo/internal/models"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import words from a JSON file and queue them for learning",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		words, err := models.DecodeImport(f)
		if err != nil {
			return err
		}

		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.Imports.Import(ctx, words)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "received %d, imported %d, skipped %d, queued %d\n",
			result.Received, result.Imported, result.Skipped, result.Queued)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
