// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/autotheme/internal/backup"
	"github.com/thatcatcamp/autotheme/internal/color"
	"github.com/thatcatcamp/autotheme/internal/config"
	"github.com/thatcatcamp/autotheme/internal/db"
	"github.com/thatcatcamp/autotheme/internal/search"
)

var themeSearchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search saved themes by name or nearest color",
	Example: `  autotheme theme search purple
  autotheme theme search --color "#a855f7" --limit 3`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		q := search.Query{}
		if len(args) > 0 {
			q.Text = args[0]
		}
		q.Color, _ = cmd.Flags().GetString("color")
		q.Limit, _ = cmd.Flags().GetInt("limit")
		if q.Color != "" {
			format, err := color.ParseFormat(flagOrConfig(cmd, "in", "theme.input_format"))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			q.Format = format
		}

		results, err := search.Search(db.GetDB(), q)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBASE\tFORMAT\tDISTANCE")
		for _, r := range results {
			distance := "-"
			if r.Distance >= 0 {
				distance = fmt.Sprintf("%.4f", r.Distance)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, r.BaseColor, r.ColorType, distance)
		}
		w.Flush()
	},
}

var themeExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the theme library",
	Long:  "Write every saved theme to a YAML file. Without a file a timestamped export is written to backups.path.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(args) == 0 {
			manager := newBackupManager()
			name, err := manager.CreateBackup(time.Now())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Library exported: %s\n", filepath.Join(manager.BackupPath, name))
			return
		}

		exp, err := backup.Snapshot(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := backup.WriteFile(args[0], exp); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Library exported: %s (%d themes)\n", args[0], len(exp.Themes))
	},
}

var themeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore themes from an export",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		exp, err := backup.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		replace, _ := cmd.Flags().GetBool("replace")
		res, err := backup.Restore(db.GetDB(), exp, replace)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d, replaced %d, skipped %d\n", res.Created, res.Replaced, res.Skipped)
	},
}

func newBackupManager() *backup.BackupManager {
	manager := backup.NewBackupManager(db.GetDB(), config.GetString("backups.path"))
	manager.Keep = config.GetInt("backups.keep")
	return manager
}

func init() {
	themeSearchCmd.Flags().String("color", "", "rank by distance to this color")
	themeSearchCmd.Flags().String("in", "", "format of --color (default from theme.input_format)")
	themeSearchCmd.Flags().Int("limit", search.DefaultLimit, "maximum results")

	themeImportCmd.Flags().Bool("replace", false, "overwrite themes that already exist")

	themeCmd.AddCommand(themeSearchCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeImportCmd)
}
