package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
)

// MigrateCmd aplica las migraciones embebidas sin levantar la API.
func MigrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply the embedded goose migrations to the Postgres database.
The DSN comes from --dsn or, if omitted, from DB_DSN (.env is honored).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dsn == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dsn = cfg.DBDSN
			}
			if dsn == "" {
				return errors.New("no database configured: pass --dsn or set DB_DSN")
			}

			db, err := pg.Open(dsn)
			if err != nil {
				return fmt.Errorf("open postgres: %w", err)
			}
			defer db.Close()

			if err := pg.RunMigrations(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "Postgres DSN (default: DB_DSN)")
	return cmd
}
