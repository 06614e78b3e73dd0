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

type AdminController struct {
	launchService     shared.LaunchService
	reviewService     shared.ReviewService
	launchViewService shared.LaunchViewService
}

func NewAdminController(launchService shared.LaunchService, reviewService shared.ReviewService, launchViewService shared.LaunchViewService) *AdminController {
	return &AdminController{
		launchService:     launchService,
		reviewService:     reviewService,
		launchViewService: launchViewService,
	}
}

// @Summary List the review queue
// @Security CookieAuth
// @Success 200 {array} dtos.AdminLaunchDTO
// @Router /admin/launches [get]
func (c *AdminController) Launches(ctx shared.Context) error {
	launches, err := c.launchViewService.AdminLaunches(shared.GetSession(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, launches)
}

// @Summary Set the review status of a launch
// @Security CookieAuth
// @Param launchID path string true "Launch ID"
// @Param body body dtos.LaunchStatusUpdateRequest true "Request body"
// @Success 200 {object} dtos.LaunchDTO
// @Router /admin/launches/{launchID}/status [patch]
func (c *AdminController) SetStatus(ctx shared.Context) error {
	launchID, err := uuidParam(ctx, "launchID")
	if err != nil {
		return err
	}

	var req dtos.LaunchStatusUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	launch, err := c.reviewService.SetStatus(shared.GetSession(ctx), launchID, req.Status, req.AdminComment)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.LaunchModelToDTO(launch))
}

// @Summary Delete a launch
// @Security CookieAuth
// @Param launchID path string true "Launch ID"
// @Success 204
// @Router /admin/launches/{launchID} [delete]
func (c *AdminController) Delete(ctx shared.Context) error {
	launchID, err := uuidParam(ctx, "launchID")
	if err != nil {
		return err
	}

	if err := c.launchService.DeleteLaunch(shared.GetSession(ctx), launchID); err != nil {
		return toHTTPError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// @Summary List the launches of a member
// @Security CookieAuth
// @Param memberID path string true "Member ID"
// @Success 200 {object} dtos.MemberLaunchesDTO
// @Router /admin/members/{memberID}/launches [get]
func (c *AdminController) MemberLaunches(ctx shared.Context) error {
	memberID, err := uuidParam(ctx, "memberID")
	if err != nil {
		return err
	}

	var res dtos.MemberLaunchesDTO
	if res, err = c.launchViewService.MemberLaunches(shared.GetSession(ctx), memberID); err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, res)
}
