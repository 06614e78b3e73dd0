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

package router

import (
	"database/sql"
)

// InfoResponse is returned by the /info endpoint
type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Process  ProcessInfo  `json:"process"`
	Database DatabaseInfo `json:"database"`
	Booking  BookingInfo  `json:"booking"`
}

type BuildInfo struct {
	Version string `json:"version,omitempty"`
}

// ProcessInfo holds process-level diagnostics
type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type RuntimeInfo struct {
	GoVersion     string `json:"goVersion,omitempty"`
	NumGoroutines int    `json:"numGoroutines,omitempty"`
}

// BookingInfo exposes the effective booking rules of this instance.
type BookingInfo struct {
	DailyCap         int    `json:"dailyCap"`
	MinDaysInAdvance int    `json:"minDaysInAdvance"`
	LaunchTimeZone   string `json:"launchTimeZone"`
}

type PoolInfo struct {
	TotalConns    int `json:"totalConns"`
	IdleConns     int `json:"idleConns"`
	AcquiredConns int `json:"acquiredConns"`
	MaxConns      int `json:"maxConns"`
}

type DatabaseInfo struct {
	sql.DBStats
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool   `json:"migrationDirty,omitempty"`
	MigrationError   *string `json:"migrationError,omitempty"`

	Pool *PoolInfo `json:"pool,omitempty"`
}
