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

type ProfileController struct {
	profileService shared.ProfileService
}

func NewProfileController(profileService shared.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// @Summary Get the own profile
// @Security CookieAuth
// @Success 200 {object} dtos.ProfileDTO
// @Router /profile [get]
func (c *ProfileController) Read(ctx shared.Context) error {
	profile, err := c.profileService.Read(shared.GetSession(ctx))
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.ProfileModelToDTO(profile))
}

// @Summary Change the display name
// @Security CookieAuth
// @Param body body dtos.DisplayNameUpdateRequest true "Request body"
// @Success 200 {object} dtos.ProfileDTO
// @Router /profile/display-name [patch]
func (c *ProfileController) UpdateDisplayName(ctx shared.Context) error {
	var req dtos.DisplayNameUpdateRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	profile, err := c.profileService.UpdateDisplayName(shared.GetSession(ctx), req.DisplayName)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.ProfileModelToDTO(profile))
}

// @Summary Change contact details and timezone
// @Security CookieAuth
// @Param body body dtos.ProfileContactRequest true "Request body"
// @Success 200 {object} dtos.ProfileDTO
// @Router /profile/contact [patch]
func (c *ProfileController) UpdateContact(ctx shared.Context) error {
	var req dtos.ProfileContactRequest
	if err := ctx.Bind(&req); err != nil {
		return bindError(err)
	}

	profile, err := c.profileService.UpdateContact(shared.GetSession(ctx), req)
	if err != nil {
		return toHTTPError(err)
	}
	return ctx.JSON(http.StatusOK, transformer.ProfileModelToDTO(profile))
}
