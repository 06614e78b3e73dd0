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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayLaunchTime(t *testing.T) {
	t.Run("should render the launch minute in the viewer zone", func(t *testing.T) {
		assert.Equal(t, "Jun 10, 2025 3:01 AM", DisplayLaunchTime("2025-06-10", "America/New_York"))
	})
	t.Run("should render in the launch zone itself", func(t *testing.T) {
		assert.Equal(t, "Jun 10, 2025 12:01 AM", DisplayLaunchTime("2025-06-10", "America/Los_Angeles"))
	})
	t.Run("should cross the date line for eastern viewers", func(t *testing.T) {
		assert.Equal(t, "Jan 15, 2025 5:01 PM", DisplayLaunchTime("2025-01-15", "Asia/Tokyo"))
	})
	t.Run("should fall back to UTC for unknown zones", func(t *testing.T) {
		assert.Equal(t, "Jun 10, 2025 7:01 AM", DisplayLaunchTime("2025-06-10", "Mars/Olympus"))
	})
	t.Run("should return unparsable input unchanged", func(t *testing.T) {
		assert.Equal(t, "soon", DisplayLaunchTime("soon", "UTC"))
	})
}

func TestLaunchInstant(t *testing.T) {
	instant, ok := LaunchInstant("2025-12-01")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 12, 1, 8, 1, 0, 0, time.UTC), instant.UTC())

	_, ok = LaunchInstant("2025-00-01")
	assert.False(t, ok)
}

func TestMonthGrid(t *testing.T) {
	month, err := ParseMonth("2025-06")
	assert.NoError(t, err)

	grid := NewMonthGrid(month)
	days := grid.Days()

	// june 2025 starts on a sunday and ends on a monday
	assert.Equal(t, "2025-06-01", days[0])
	assert.Equal(t, "2025-07-05", days[len(days)-1])
	assert.Len(t, days, 35)
	assert.True(t, grid.InMonth("2025-06-30"))
	assert.False(t, grid.InMonth("2025-07-01"))

	_, err = ParseMonth("June")
	assert.Error(t, err)
}
