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
	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/middlewares"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/labstack/echo/v4"
)

type SessionRouter struct {
	*echo.Group
}

// @Summary Get current user info
// @Security CookieAuth
// @Success 200 {object} object{userID=string}
// @Router /whoami [get]
func whoami(ctx echo.Context) error {
	return ctx.JSON(200, map[string]string{
		"userID": shared.GetSession(ctx).GetUserID(),
	})
}

// NewSessionRouter attaches the caller session to every route below it.
// Routes that need a signed in user add middlewares.SessionRequired.
func NewSessionRouter(apiV1Router APIV1Router, adminClient shared.AdminClient, cfg config.Config) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("", middlewares.SessionMiddleware(adminClient, cfg.AdminToken))
	sessionRouter.GET("/whoami/", whoami, middlewares.SessionRequired())

	return SessionRouter{Group: sessionRouter}
}
