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

package calendar

import (
	"fmt"
	"time"
)

const MonthLayout = "2006-01"

// MonthGrid is the set of days a month view renders: whole weeks starting on
// Sunday that cover every day of the month.
type MonthGrid struct {
	Month time.Time
	Start time.Time
	End   time.Time
}

func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse month %q: %w", month, err)
	}
	return t, nil
}

func NewMonthGrid(month time.Time) MonthGrid {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return MonthGrid{
		Month: first,
		Start: first.AddDate(0, 0, -int(first.Weekday())),
		End:   last.AddDate(0, 0, int(time.Saturday-last.Weekday())),
	}
}

// Days lists every date of the grid in YYYY-MM-DD form.
func (g MonthGrid) Days() []string {
	var days []string
	for d := g.Start; !d.After(g.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}

func (g MonthGrid) InMonth(date string) bool {
	return len(date) >= 7 && date[:7] == g.Month.Format(MonthLayout)
}
