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
	"strconv"
	"strings"
	"time"
)

const (
	// every launch goes live one minute after midnight in this zone
	LaunchTimeZone = "America/Los_Angeles"
	DisplayLayout  = "Jan 2, 2006 3:04 PM"
)

func loadLocationOrUTC(tz string) *time.Location {
	if !IsValidTimeZone(tz) {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LaunchInstant returns 00:01 on launchDate in the launch time zone.
// Out of range components roll over the same way time.Date does.
func LaunchInstant(launchDate string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(launchDate), "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n == 0 {
			return time.Time{}, false
		}
		nums[i] = n
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 1, 0, 0, loadLocationOrUTC(LaunchTimeZone)), true
}

// DisplayLaunchTime renders the launch instant of launchDate in the viewer's
// zone. Unknown zones render in UTC, unparsable dates are returned unchanged.
func DisplayLaunchTime(launchDate string, viewerTimezone string) string {
	instant, ok := LaunchInstant(launchDate)
	if !ok {
		return launchDate
	}
	return instant.In(loadLocationOrUTC(viewerTimezone)).Format(DisplayLayout)
}
