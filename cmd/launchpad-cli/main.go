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

package main

import (
	"os"

	"github.com/l3montree-dev/launchpad/cmd/launchpad-cli/commands"
	"github.com/l3montree-dev/launchpad/shared"
)

func Execute() {
	if err := commands.GetRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd := commands.GetRootCmd()
	rootCmd.AddCommand(
		commands.NewMigrateCommand(),
		commands.NewLaunchesCommand(),
		commands.NewAdminCommand(),
		commands.NewRulesCommand(),
	)
}

func main() {
	shared.InitLogger()
	Execute()
}
