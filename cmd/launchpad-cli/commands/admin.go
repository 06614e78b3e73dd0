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

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/database/repositories"
	"github.com/l3montree-dev/launchpad/services"
	"github.com/spf13/cobra"
)

func NewAdminCommand() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Manage the admin role of members",
	}

	admin.AddCommand(newSetRoleCommand("grant <userID>", "Grant the admin role to a member", models.ProfileRoleAdmin))
	admin.AddCommand(newSetRoleCommand("revoke <userID>", "Revoke the admin role of a member", models.ProfileRoleMember))
	return admin
}

func newSetRoleCommand(use, short string, role models.ProfileRole) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}

			db, err := openDB()
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}
			profileService := services.NewProfileService(repositories.NewProfileRepository(db))
			if err := profileService.SetRole(userID, role); err != nil {
				return err
			}
			slog.Info("role updated", "userID", userID, "role", role)
			return nil
		},
	}
}
