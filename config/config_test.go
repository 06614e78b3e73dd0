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

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, 2, cfg.DailyCap())
		assert.Equal(t, 10, cfg.BookingRatePerMinute)
		assert.Equal(t, time.Minute, cfg.ViewCacheTTL)
		assert.False(t, cfg.DisableAutoMigrate)
	})

	t.Run("should clamp the daily cap", func(t *testing.T) {
		t.Setenv("LAUNCHES_PER_DAY", "5")
		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, 2, cfg.DailyCap())

		t.Setenv("LAUNCHES_PER_DAY", "0")
		cfg, err = Load()
		assert.NoError(t, err)
		assert.Equal(t, 1, cfg.DailyCap())
	})

	t.Run("should fall back to the default cap for junk", func(t *testing.T) {
		t.Setenv("LAUNCHES_PER_DAY", "lots")
		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, 2, cfg.DailyCap())
	})

	t.Run("should read the automigrate flag", func(t *testing.T) {
		t.Setenv("DISABLE_AUTOMIGRATE", "true")
		cfg, err := Load()
		assert.NoError(t, err)
		assert.True(t, cfg.DisableAutoMigrate)
	})

	t.Run("should reject an unparsable duration", func(t *testing.T) {
		t.Setenv("VIEW_CACHE_TTL", "forever")
		_, err := Load()
		assert.Error(t, err)
	})
}
