// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/autotheme/internal/codec"
	"github.com/thatcatcamp/autotheme/internal/db"
	"github.com/thatcatcamp/autotheme/internal/library"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage saved themes",
	Long:  "Save, list, show, and delete themes in the theme library",
}

var themeSaveCmd = &cobra.Command{
	Use:   "save <name> [color]",
	Short: "Generate and save a theme",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		req, err := saveRequestFromFlags(cmd, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		saved, err := library.SaveTheme(db.GetDB(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving theme: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Theme saved: %s (ID: %d, %s -> %s)\n", saved.Name, saved.ID, saved.BaseColor, saved.ColorType)
	},
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved themes",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		saved, err := library.ListThemes(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing themes: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBASE\tFORMAT\tSHADES\tDARK\tCREATED")
		for _, t := range saved {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d-%d\t%t\t%s\n",
				t.Name, t.BaseColor, t.ColorType, t.MinShade, t.MaxShade, t.DarkMode, t.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		saved, err := library.GetTheme(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		format, _ := cmd.Flags().GetString("output")
		if format == outputEncoded {
			fmt.Println(saved.Encoded)
			return
		}

		theme, err := library.Load(saved)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		dark := saved.DarkMode
		if cmd.Flags().Changed("dark") {
			dark, _ = cmd.Flags().GetBool("dark")
		}
		tw := themeWriter{format: format, dark: dark}
		if err := tw.write(os.Stdout, theme); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var themeDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := library.DeleteTheme(db.GetDB(), args[0]); err != nil {
			if errors.Is(err, library.ErrThemeNotFound) {
				fmt.Fprintf(os.Stderr, "Error: no theme named %s\n", args[0])
			} else {
				fmt.Fprintf(os.Stderr, "Error deleting theme: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Theme deleted: %s\n", args[0])
	},
}

// saveRequestFromFlags builds a library request from the save arguments
func saveRequestFromFlags(cmd *cobra.Command, args []string) (library.SaveRequest, error) {
	base, opts, err := baseFromFlags(cmd, args[1:])
	if err != nil {
		return library.SaveRequest{}, err
	}

	escape, err := codec.EscapeFromString(flagOrConfig(cmd, "escape", "codec.escape"))
	if err != nil {
		return library.SaveRequest{}, err
	}
	version, err := codec.ParseVersion(flagOrConfig(cmd, "version", "codec.version"))
	if err != nil {
		return library.SaveRequest{}, err
	}

	dark, _ := cmd.Flags().GetBool("dark")
	return library.SaveRequest{
		Name:      args[0],
		BaseColor: base,
		Options:   opts,
		DarkMode:  dark,
		Escape:    escape,
		Version:   version,
		CreatedBy: "cli",
	}, nil
}

func init() {
	addThemeFlags(themeSaveCmd)
	addCodecFlags(themeSaveCmd)
	themeSaveCmd.Flags().Bool("dark", false, "serve the dark scheme by default")

	themeShowCmd.Flags().StringP("output", "o", outputText, "output: text, json, yaml, css, encoded or preview")
	themeShowCmd.Flags().Bool("dark", false, "use the dark scheme for css output")

	themeCmd.AddCommand(themeSaveCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeDeleteCmd)
	rootCmd.AddCommand(themeCmd)
}
