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

func TestIsLaunchDateAllowed(t *testing.T) {
	now := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	t.Run("should reject a date closer than the lead time", func(t *testing.T) {
		assert.False(t, IsLaunchDateAllowed("2025-06-03", now))
	})
	t.Run("should accept the exact boundary", func(t *testing.T) {
		assert.True(t, IsLaunchDateAllowed("2025-06-04", now))
	})
	t.Run("should accept dates further away", func(t *testing.T) {
		assert.True(t, IsLaunchDateAllowed("2025-07-01", now))
	})
	t.Run("should ignore the time of day", func(t *testing.T) {
		lateNight := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, "2025-06-04", MinLaunchDateString(lateNight))
	})
	t.Run("should roll over month boundaries", func(t *testing.T) {
		assert.Equal(t, "2025-07-02", MinLaunchDateString(time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC)))
	})
}

func TestNormalizeDate(t *testing.T) {
	t.Run("should keep a canonical date", func(t *testing.T) {
		d, err := NormalizeDate("2025-06-10")
		assert.NoError(t, err)
		assert.Equal(t, "2025-06-10", d)
	})
	t.Run("should reject an impossible date", func(t *testing.T) {
		_, err := NormalizeDate("2025-13-45")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
	t.Run("should reject garbage", func(t *testing.T) {
		_, err := NormalizeDate("next tuesday")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestIsValidTimeZone(t *testing.T) {
	tests := []struct {
		tz    string
		valid bool
	}{
		{"America/New_York", true},
		{"Europe/Berlin", true},
		{"UTC", true},
		{"Africa/Casablanca", true},
		{"Mars/Olympus", false},
		{"", false},
		{"Local", false},
	}
	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidTimeZone(tt.tz))
		})
	}
}

func TestDailyLaunchCap(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"", 2},
		{"2", 2},
		{"1", 1},
		{"0", 1},
		{"-4", 1},
		{"5", 2},
		{"1.9", 1},
		{" 1 ", 1},
		{"abc", 2},
		{"NaN", 2},
		{"Infinity", 2},
		{"-Infinity", 1},
	}
	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, DailyLaunchCap(tt.raw))
		})
	}
}
