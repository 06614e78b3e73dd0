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
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/database/repositories"
	"github.com/l3montree-dev/launchpad/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func NewLaunchesCommand() *cobra.Command {
	launches := &cobra.Command{
		Use:   "launches",
		Short: "Inspect booked launches",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all launches from a date on",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := viper.GetString("from")
			if from == "" {
				from = calendar.Today(time.Now())
			}
			from, err := calendar.NormalizeDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			tz := viper.GetString("tz")
			if !calendar.IsValidTimeZone(tz) {
				return fmt.Errorf("invalid --tz: %s", tz)
			}

			db, err := openDB()
			if err != nil {
				return fmt.Errorf("could not connect to database: %w", err)
			}
			launches, err := repositories.NewLaunchRepository(db).ListFrom(from)
			if err != nil {
				return err
			}
			switch viper.GetString("output") {
			case "yaml":
				return printLaunchesYAML(cmd.OutOrStdout(), launches, tz)
			case "table":
				printLaunches(cmd.OutOrStdout(), launches, tz)
				return nil
			default:
				return fmt.Errorf("unknown --output %q, use table or yaml", viper.GetString("output"))
			}
		},
	}
	list.Flags().String("from", "", "first launch date to include (YYYY-MM-DD), defaults to today")
	list.Flags().String("tz", "UTC", "timezone used to display the launch time")
	list.Flags().StringP("output", "o", "table", "output format: table or yaml")

	launches.AddCommand(list)
	return launches
}

func printLaunches(w io.Writer, launches []models.Launch, tz string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Date", "Launch time", "Project", "Creator", "Status", "Comment"})
	for _, l := range launches {
		tw.AppendRow(table.Row{
			l.LaunchDateString(),
			calendar.DisplayLaunchTime(l.LaunchDateString(), tz),
			l.Project.NameOrFallback(),
			l.Creator.DisplayName,
			l.Status,
			utils.SafeDereference(l.AdminComment),
		})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "Total", len(launches)})
	tw.Render()
}

type launchRow struct {
	Date       string  `yaml:"date"`
	LaunchTime string  `yaml:"launchTime"`
	Timezone   string  `yaml:"timezone"`
	Project    string  `yaml:"project"`
	Creator    string  `yaml:"creator"`
	Status     string  `yaml:"status"`
	Comment    *string `yaml:"comment,omitempty"`
}

func printLaunchesYAML(w io.Writer, launches []models.Launch, tz string) error {
	rows := utils.Map(launches, func(l models.Launch) launchRow {
		return launchRow{
			Date:       l.LaunchDateString(),
			LaunchTime: calendar.DisplayLaunchTime(l.LaunchDateString(), tz),
			Timezone:   l.Timezone,
			Project:    l.Project.NameOrFallback(),
			Creator:    l.Creator.DisplayName,
			Status:     string(l.Status),
			Comment:    l.AdminComment,
		}
	})
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return enc.Close()
}
