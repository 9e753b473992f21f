// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/autotheme/internal/auth"
	"github.com/thatcatcamp/autotheme/internal/db"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API tokens",
	Long:  "Issue, list, and revoke tokens for the theme library write endpoints",
}

var tokenCreateCmd = &cobra.Command{
	Use:   "create <subject>",
	Short: "Issue a new API token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		signed, token, err := auth.IssueToken(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error issuing token: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Token issued for %s (ID: %s, expires %s)\n",
			token.Subject, token.TokenID, token.ExpiresAt.Format("2006-01-02"))
		fmt.Println(signed)
	},
}

var tokenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issued tokens",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		tokens, err := auth.ListTokens(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing tokens: %v\n", err)
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSUBJECT\tREVOKED\tEXPIRES")
		for _, t := range tokens {
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", t.TokenID, t.Subject, t.Revoked, t.ExpiresAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var tokenRevokeCmd = &cobra.Command{
	Use:   "revoke <id>",
	Short: "Revoke a token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := auth.RevokeToken(db.GetDB(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Token revoked: %s\n", args[0])
	},
}

func init() {
	tokenCmd.AddCommand(tokenCreateCmd)
	tokenCmd.AddCommand(tokenListCmd)
	tokenCmd.AddCommand(tokenRevokeCmd)
	rootCmd.AddCommand(tokenCmd)
}
