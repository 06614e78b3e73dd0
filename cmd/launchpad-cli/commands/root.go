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
	"strings"

	"github.com/l3montree-dev/launchpad/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "launchpad-cli",
	Short: "Management cli",
	Long: `Management cli for the launchpad booking service.

Flags can also be provided as environment variables with the LAUNCHPAD_ prefix,
for example LAUNCHPAD_TZ=Europe/Berlin.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := shared.LoadConfig(); err != nil {
			slog.Debug("no .env file loaded", "err", err)
		}
		initializeConfig(cmd)
		return nil
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// openDB is swapped in tests.
var openDB = func() (*gorm.DB, error) {
	return newDBFromEnv()
}

func initializeConfig(cmd *cobra.Command) {
	viper.SetEnvPrefix("LAUNCHPAD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)
}

func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name))) // nolint: errcheck
		}

		if err := viper.BindPFlag(f.Name, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
