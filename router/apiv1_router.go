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
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/cmd/launchpad/api"
	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/database"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version is set at build time
var Version string

type APIV1Router struct {
	*echo.Group
}

func databaseInfo(db shared.DB, pool *pgxpool.Pool) DatabaseInfo {
	dbInfo := DatabaseInfo{Status: "unknown"}
	sqlDB, err := db.DB()
	if err != nil {
		errMsg := "failed to get database instance"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		return dbInfo
	}
	if err := sqlDB.Ping(); err != nil {
		errMsg := "database ping failed"
		dbInfo.Status = "unhealthy"
		dbInfo.Error = &errMsg
		return dbInfo
	}
	dbInfo.Status = "healthy"

	if pool != nil {
		stats := pool.Stat()
		dbInfo.Pool = &PoolInfo{
			TotalConns:    int(stats.TotalConns()),
			IdleConns:     int(stats.IdleConns()),
			AcquiredConns: int(stats.AcquiredConns()),
			MaxConns:      int(stats.MaxConns()),
		}
	} else {
		dbInfo.DBStats = sqlDB.Stats()
	}

	if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		dbInfo.MigrationVersion = &ver
		dbInfo.MigrationDirty = &dirty
	} else {
		errStr := err.Error()
		dbInfo.MigrationError = &errStr
	}
	return dbInfo
}

func NewAPIV1Router(srv api.Server, db shared.DB, pool *pgxpool.Pool, cfg config.Config) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/info/", func(ctx echo.Context) error {
		resp := InfoResponse{
			Build: BuildInfo{Version: Version},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
			},
			Database: databaseInfo(db, pool),
			Booking: BookingInfo{
				DailyCap:         cfg.DailyCap(),
				MinDaysInAdvance: calendar.MinDaysInAdvance,
				LaunchTimeZone:   calendar.LaunchTimeZone,
			},
		}
		if host, _ := os.Hostname(); host != "" {
			resp.Process.Hostname = host
		}
		return ctx.JSON(200, resp)
	})

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	return APIV1Router{
		Group: apiV1Router,
	}
}
