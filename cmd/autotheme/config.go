// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/autotheme/internal/config"
	"github.com/thatcatcamp/autotheme/internal/db"
	"github.com/thatcatcamp/autotheme/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage AutoTheme configuration",
	Long:  "View and modify AutoTheme configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		value := config.GetString(args[0])
		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := config.Set(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		all := config.GetAll()
		sections := make([]string, 0, len(all))
		for key := range all {
			sections = append(sections, key)
		}
		sort.Strings(sections)
		for _, key := range sections {
			fmt.Printf("%s: %v\n", key, all[key])
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig loads the config file and sets up logging from it
func initConfig() error {
	configPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	if err := config.InitConfig(configPath); err != nil {
		return err
	}

	return logging.Setup(logging.Options{
		Level:      config.GetString("logging.level"),
		Format:     config.GetString("logging.format"),
		File:       config.GetString("logging.file"),
		MaxSizeMB:  config.GetInt("logging.max_size_mb"),
		MaxBackups: config.GetInt("logging.max_backups"),
		Compress:   config.GetBool("logging.compress"),
	})
}

// initSystemDB initializes the saved theme database connection
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}
