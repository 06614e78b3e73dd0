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
	"github.com/l3montree-dev/launchpad/controllers"
	"github.com/l3montree-dev/launchpad/middlewares"
	"github.com/labstack/echo/v4"
)

type AdminRouter struct {
	*echo.Group
}

// NewAdminRouter registers the review routes. The admin role itself is
// checked by the services.
func NewAdminRouter(sessionGroup SessionRouter, adminController *controllers.AdminController) AdminRouter {
	adminRouter := sessionGroup.Group.Group("/admin", middlewares.SessionRequired())
	adminRouter.GET("/launches/", adminController.Launches)
	adminRouter.PATCH("/launches/:launchID/status/", adminController.SetStatus)
	adminRouter.DELETE("/launches/:launchID/", adminController.Delete)
	adminRouter.GET("/members/:memberID/launches/", adminController.MemberLaunches)

	return AdminRouter{Group: adminRouter}
}
