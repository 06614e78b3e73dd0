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

// Package config reads the runtime configuration of the launchpad service
// from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/l3montree-dev/launchpad/calendar"
)

type Config struct {
	// LaunchesPerDay is kept raw, DailyCap applies the clamping rules.
	LaunchesPerDay string `env:"LAUNCHES_PER_DAY" envDefault:"2"`

	Port             string `env:"PORT" envDefault:"8080"`
	FrontendURL      string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	OryKratosPublic  string `env:"ORY_KRATOS_PUBLIC" envDefault:"http://localhost:4433"`
	AdminToken       string `env:"ADMIN_TOKEN"`
	ErrorTrackingDSN string `env:"ERROR_TRACKING_DSN"`
	Environment      string `env:"ENVIRONMENT" envDefault:"dev"`
	OtelEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	DisableAutoMigrate   bool          `env:"DISABLE_AUTOMIGRATE"`
	BookingRatePerMinute int           `env:"BOOKING_RATE_PER_MINUTE" envDefault:"10"`
	ViewCacheSize        int           `env:"VIEW_CACHE_SIZE" envDefault:"256"`
	ViewCacheTTL         time.Duration `env:"VIEW_CACHE_TTL" envDefault:"1m"`
	// BroadcastInvalidation is needed when more than one instance serves the api.
	BroadcastInvalidation bool `env:"BROADCAST_VIEW_INVALIDATION"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ViewCacheSize <= 0 {
		cfg.ViewCacheSize = 256
	}
	if cfg.BookingRatePerMinute <= 0 {
		cfg.BookingRatePerMinute = 10
	}
	return cfg, nil
}

func (c Config) DailyCap() int {
	return calendar.DailyLaunchCap(c.LaunchesPerDay)
}
