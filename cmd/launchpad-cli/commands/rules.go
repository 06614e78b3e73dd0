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
	"time"

	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/config"
	"github.com/spf13/cobra"
)

func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the active booking rules",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			now := time.Now()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "launches per day:    %d\n", cfg.DailyCap())
			fmt.Fprintf(out, "min days in advance: %d\n", calendar.MinDaysInAdvance)
			fmt.Fprintf(out, "earliest date:       %s\n", calendar.MinLaunchDateString(now))
			return nil
		},
	}
}
