/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/athletelink/apiserver/config"
	"github.com/athletelink/apiserver/internal/db"
	"github.com/spf13/cobra"
)

// initdbCmd represents the initdb command. The schema is plain
// idempotent DDL; rerunning it against an existing database is safe.
var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database tables and constraints",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		conn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("connect failed: %w", err)
		}
		defer func() {
			_ = conn.Close()
		}()

		if err := db.EnsureSchema(cmd.Context(), conn); err != nil {
			return fmt.Errorf("initdb failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}
