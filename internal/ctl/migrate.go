package ctl

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/memoria/internal/server/repositories/repomanager"
	"github.com/spf13/cobra"
)

// runMigrations is a seam for tests.
var runMigrations = func(cmd *cobra.Command, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return repomanager.NewPostgresRepositoryManager().RunMigrations(cmd.Context(), db)
}

func migrateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.dsn == "" {
				return errors.New("--dsn is required")
			}
			if err := runMigrations(cmd, o.dsn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
