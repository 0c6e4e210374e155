package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wordspark/echo/internal/phonetic"
)

var ipaCmd = &cobra.Command{
	Use:     "ipa <arpabet>...",
	Short:   "Convert ARPAbet tokens to IPA",
	Example: "  echoctl ipa HH AH0 L OW1",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), phonetic.ToIPA(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ipaCmd)
}
