// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/launchpad/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newDBFromEnv() (*gorm.DB, error) {
	return database.NewFromEnv()
}

func NewMigrateCommand() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}
			return database.RunMigrationsWithDB(db)
		},
	})

	migrate.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}
			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				return err
			}
			slog.Info("migration version", "version", version, "dirty", dirty)
			fmt.Fprintf(cmd.OutOrStdout(), "%d (dirty: %t)\n", version, dirty)
			return nil
		},
	})

	return migrate
}
