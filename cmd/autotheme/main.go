// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autotheme",
	Short: "AutoTheme - OKLCH palette generator",
	Long: `AutoTheme turns one base color into a full theme: five palettes
(primary, secondary, tertiary, accent, neutral) of eleven shades each,
written in hex, rgb, hsl, oklab or oklch.

Themes can be printed, previewed in the terminal, encoded into a compact
text form, saved to a database and served over HTTP as JSON or CSS.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
