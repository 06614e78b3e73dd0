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

package middlewares

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/l3montree-dev/launchpad/accesscontrol"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/labstack/echo/v4"
	"github.com/ory/client-go"
)

const oryKratosSessionCookie = "ory_kratos_session"

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, oryAPIClient shared.AdminClient, cookie string) (client.Identity, error) {
	unescaped, err := url.QueryUnescape(cookie)
	if err != nil {
		return client.Identity{}, err
	}
	return oryAPIClient.GetIdentityFromCookie(ctx, unescaped)
}

// identityTraits reads email and display name from the kratos identity
// traits. The name trait is either a string or a {first, last} object.
func identityTraits(identity client.Identity) (email string, name string) {
	traits, ok := identity.Traits.(map[string]any)
	if !ok {
		return "", ""
	}
	email, _ = traits["email"].(string)

	switch n := traits["name"].(type) {
	case string:
		name = n
	case map[string]any:
		first, _ := n["first"].(string)
		last, _ := n["last"].(string)
		name = strings.TrimSpace(first + " " + last)
	}
	return email, name
}

// SessionMiddleware attaches the session of the caller. Callers without a
// valid identity get accesscontrol.NoSession, the services reject them where
// a session is needed. When adminToken is set, requests carrying it in
// X-Admin-Token may act as the user named in X-User-ID.
func SessionMiddleware(oryAPIClient shared.AdminClient, adminToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if cookie := getCookie(oryKratosSessionCookie, ctx.Cookies()); cookie != nil {
				identity, err := cookieAuth(ctx.Request().Context(), oryAPIClient, cookie.String())
				if err != nil {
					slog.Warn("could not get identity from cookie", "err", err)
					shared.SetSession(ctx, accesscontrol.NoSession)
					return next(ctx)
				}
				email, name := identityTraits(identity)
				shared.SetSession(ctx, accesscontrol.NewSession(identity.Id, email, name))
				return next(ctx)
			}

			adminTokenHeader := ctx.Request().Header.Get("X-Admin-Token")
			if adminToken != "" && adminTokenHeader != "" {
				if subtle.ConstantTimeCompare([]byte(adminTokenHeader), []byte(adminToken)) != 1 {
					return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{"message": "invalid admin token", "kind": shared.KindUnauthenticated})
				}
				slog.Warn("admin token header is set, using it to create session")
				shared.SetSession(ctx, accesscontrol.NewSession(
					ctx.Request().Header.Get("X-User-ID"),
					ctx.Request().Header.Get("X-User-Email"),
					ctx.Request().Header.Get("X-User-Name"),
				))
				return next(ctx)
			}

			shared.SetSession(ctx, accesscontrol.NoSession)
			return next(ctx)
		}
	}
}
