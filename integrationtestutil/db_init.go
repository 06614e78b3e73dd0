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

package integrationtestutil

import (
	"context"
	"log"
	"log/slog"

	"github.com/l3montree-dev/launchpad/database"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// InitPostgresContainer starts an empty postgres container.
func InitPostgresContainer() (database.PoolConfig, func()) {
	ctx := context.Background()

	dbName := "launchpad"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	return database.PoolConfig{
		User:         dbUser,
		Password:     dbPassword,
		Host:         host,
		Port:         port.Port(),
		DBName:       dbName,
		MaxOpenConns: 10,
	}, terminate
}

// InitDatabaseContainer starts a postgres container, connects gorm through the
// pgx pool and applies the embedded migrations.
func InitDatabaseContainer() (shared.DB, func()) {
	poolConfig, terminate := InitPostgresContainer()

	pool, err := database.NewPgxConnPool(poolConfig)
	if err != nil {
		log.Printf("failed to create connection pool: %s", err)
		panic(err)
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		log.Printf("failed to connect to database: %s", err)
		panic(err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		panic(err)
	}

	return db, func() {
		pool.Close()
		terminate()
	}
}
