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

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/l3montree-dev/launchpad/transformer"
)

type LaunchController struct {
	launchService     shared.LaunchService
	launchViewService shared.LaunchViewService
}

func NewLaunchController(launchService shared.LaunchService, launchViewService shared.LaunchViewService) *LaunchController {
	return &LaunchController{
		launchService:     launchService,
		launchViewService: launchViewService,
	}
}

// @Summary Get booking rules
// @Success 200 {object} dtos.LaunchRulesDTO
// @Router /launch-rules [get]
func (c *LaunchController) Rules(ctx shared.Context) error {
	return ctx.JSON(http.StatusOK, c.launchViewService.Rules())
}

// @Summary List upcoming launches
// @Param tz query string false "Timezone of the viewer"
// @Success 200 {array} dtos.LaunchListItemDTO
// @Router /launches [get]
func (c *LaunchController) Upcoming(ctx shared.Context) error {
	launches, err := c.launchViewService.Upcoming(viewerTimezone(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, launches)
}

// @Summary Get the launch calendar of a month
// @Param month query string false "Month formatted as YYYY-MM"
// @Param tz query string false "Timezone of the viewer"
// @Success 200 {object} dtos.MonthCalendarDTO
// @Router /calendar [get]
func (c *LaunchController) Calendar(ctx shared.Context) error {
	month, err := c.launchViewService.MonthCalendar(ctx.QueryParam("month"), viewerTimezone(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, month)
}

// @Summary List own launches
// @Security CookieAuth
// @Success 200 {array} dtos.MyLaunchDTO
// @Router /launches/mine [get]
func (c *LaunchController) Mine(ctx shared.Context) error {
	launches, err := c.launchViewService.MyLaunches(shared.GetSession(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, launches)
}

// @Summary Create a project and book its launch
// @Security CookieAuth
// @Param body body dtos.ProjectLaunchRequest true "Request body"
// @Success 201 {object} dtos.MyLaunchDTO
// @Router /projects [post]
func (c *LaunchController) Create(ctx shared.Context) error {
	var req dtos.ProjectLaunchRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	launch, err := c.launchService.CreateProjectAndLaunch(shared.GetSession(ctx), req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.LaunchModelToMyLaunch(launch, launch.Timezone))
}

// @Summary Read an own project with its launch
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Success 200 {object} dtos.ProjectDTO
// @Router /projects/{projectID} [get]
func (c *LaunchController) ReadProject(ctx shared.Context) error {
	projectID, err := uuidParam(ctx, "projectID")
	if err != nil {
		return err
	}

	project, err := c.launchService.ReadOwnProject(shared.GetSession(ctx), projectID)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.ProjectModelToDTO(project))
}

// @Summary Update a project and reschedule its launch
// @Security CookieAuth
// @Param projectID path string true "Project ID"
// @Param body body dtos.ProjectLaunchRequest true "Request body"
// @Success 200 {object} dtos.MyLaunchDTO
// @Router /projects/{projectID} [put]
func (c *LaunchController) UpdateProject(ctx shared.Context) error {
	projectID, err := uuidParam(ctx, "projectID")
	if err != nil {
		return err
	}

	var req dtos.ProjectLaunchRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	launch, err := c.launchService.UpdateProjectAndLaunch(shared.GetSession(ctx), projectID, req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.LaunchModelToMyLaunch(launch, launch.Timezone))
}
