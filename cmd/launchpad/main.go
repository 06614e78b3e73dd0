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

package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/launchpad/accesscontrol"
	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/cmd/launchpad/api"
	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/controllers"
	"github.com/l3montree-dev/launchpad/database"
	"github.com/l3montree-dev/launchpad/database/repositories"
	"github.com/l3montree-dev/launchpad/monitoring"
	"github.com/l3montree-dev/launchpad/pubsub"
	"github.com/l3montree-dev/launchpad/router"
	"github.com/l3montree-dev/launchpad/services"
	"github.com/l3montree-dev/launchpad/shared"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

//	@title			launchpad API
//	@version		v1
//	@description	Book launch dates for community projects

//	@license.name	AGPL-3

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("could not load configuration", "err", err)
		panic(err)
	}
	router.Version = release

	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	if cfg.OtelEndpoint != "" {
		shutdown, err := monitoring.InitTracer(context.Background(), "launchpad", cfg.Environment, cfg.OtelEndpoint)
		if err != nil {
			slog.Error("could not init tracing", "err", err)
		} else {
			defer shutdown(context.Background()) // nolint: errcheck
		}
	}

	poolConfig, err := database.GetPoolConfigFromEnv()
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to read database configuration"))
	}
	pool, err := database.NewPgxConnPool(poolConfig)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	var brokerOption fx.Option = fx.Options()
	if cfg.BroadcastInvalidation {
		broker, err := pubsub.NewPostgreSQLBroker(poolConfig.DSN())
		if err != nil {
			slog.Error("failed to create broker", "err", err)
			panic(err)
		}
		defer broker.Close() // nolint: errcheck
		brokerOption = fx.Provide(func() shared.PubSubBroker { return broker })
	}

	slog.Info("booking rules", "dailyCap", cfg.DailyCap(), "minDaysInAdvance", calendar.MinDaysInAdvance)

	fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		brokerOption,
		api.Module,
		repositories.Module,
		services.ServiceModule,
		controllers.ControllerModule,
		router.RouterModule,
		accesscontrol.AccessControlModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.LaunchRouter) {}),
		fx.Invoke(func(router.ProjectRouter) {}),
		fx.Invoke(func(router.ProfileRouter) {}),
		fx.Invoke(func(router.AdminRouter) {}),
		fx.Invoke(func(api.Server) {}),
	).Run()
}

func initSentry(cfg config.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.ErrorTrackingDSN,
		Environment: cfg.Environment,
		Release:     release,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: cfg.Environment == "dev",

		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
