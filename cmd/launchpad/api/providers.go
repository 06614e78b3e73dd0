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

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

func GetOryAPIClient(url string) *client.APIClient {
	cfg := client.NewConfiguration()
	cfg.Servers = client.ServerConfigurations{
		{URL: url},
	}
	// session lookups show up as child spans of the request
	cfg.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	return client.NewAPIClient(cfg)
}

type adminClient struct {
	apiClient *client.APIClient
}

func NewAdminClient(apiClient *client.APIClient) adminClient {
	return adminClient{apiClient: apiClient}
}

func (a adminClient) GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error) {
	session, _, err := a.apiClient.FrontendAPI.ToSession(ctx).Cookie(cookie).Execute()
	if err != nil {
		return client.Identity{}, fmt.Errorf("could not get identity from cookie: %w", err)
	}
	if session.Identity == nil {
		return client.Identity{}, fmt.Errorf("identity not found in session")
	}
	return *session.Identity, nil
}

// AuthModule provides the kratos client used to resolve session cookies
var AuthModule = fx.Options(
	fx.Provide(func(cfg config.Config) shared.AdminClient {
		return NewAdminClient(GetOryAPIClient(cfg.OryKratosPublic))
	}),
)

var Module = fx.Options(
	fx.Provide(NewServer),
	AuthModule,
)
