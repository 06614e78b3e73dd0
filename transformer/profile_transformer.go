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

package transformer

import (
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/utils"
)

func ProfileModelToDTO(profile models.Profile) dtos.ProfileDTO {
	return dtos.ProfileDTO{
		ID:          profile.ID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		Role:        string(profile.Role),
		Phone:       profile.Phone,
		TwitterURL:  profile.TwitterURL,
		LinkedinURL: profile.LinkedinURL,
		GithubURL:   profile.GithubURL,
		Timezone:    profile.Timezone,
	}
}

// ApplyProfileContactRequest trims every contact field and stores blanks as NULL.
func ApplyProfileContactRequest(req dtos.ProfileContactRequest, profile *models.Profile) {
	profile.Phone = utils.TrimmedOrNil(req.Phone)
	profile.TwitterURL = utils.TrimmedOrNil(req.TwitterURL)
	profile.LinkedinURL = utils.TrimmedOrNil(req.LinkedinURL)
	profile.GithubURL = utils.TrimmedOrNil(req.GithubURL)
	profile.Timezone = utils.TrimmedOrNil(req.Timezone)
}
