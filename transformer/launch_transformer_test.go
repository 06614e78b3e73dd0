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
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/utils"
	"github.com/stretchr/testify/assert"
)

func TestProjectLaunchRequestToProject(t *testing.T) {
	ownerID := uuid.New()
	req := dtos.ProjectLaunchRequest{
		Name:           " Rocket ",
		Tagline:        "Ship it",
		ProductHuntURL: "https://www.producthunt.com/posts/rocket",
		LaunchDate:     "2025-07-01",
	}.Normalize()

	project := ProjectLaunchRequestToProject(req, ownerID)

	assert.Equal(t, ownerID, project.OwnerID)
	assert.Equal(t, "Rocket", project.Name)
	assert.Nil(t, project.AskFromFounder, "blank optional fields should be stored as NULL")
	assert.Nil(t, project.ShortExplanation)
	assert.Equal(t, dtos.DefaultTimezone, req.Timezone)
}

func TestLaunchModelToListItem(t *testing.T) {
	date, err := models.ToLaunchDate("2025-06-10")
	assert.NoError(t, err)

	launch := models.Launch{
		LaunchDate: date,
		Status:     models.LaunchStatusInReview,
		Project:    models.Project{Tagline: "t"},
		Creator:    models.Profile{DisplayName: "  "},
	}

	t.Run("should use fallbacks for blank names", func(t *testing.T) {
		item := LaunchModelToListItem(launch, "America/New_York")
		assert.Equal(t, "Untitled project", item.ProjectName)
		assert.Equal(t, "Member", item.OwnerDisplayName)
		assert.Equal(t, "Jun 10, 2025 3:01 AM", item.LaunchTime)
	})

	t.Run("should use a dash for unknown owners in the admin view", func(t *testing.T) {
		item := LaunchModelToAdminLaunch(launch, "UTC")
		assert.Equal(t, "—", item.OwnerDisplayName)
		assert.Equal(t, "2025-06-10", item.LaunchDate)
	})
}

func TestApplyProfileContactRequest(t *testing.T) {
	profile := models.Profile{Phone: utils.Ptr("old")}
	ApplyProfileContactRequest(dtos.ProfileContactRequest{
		Phone:      utils.Ptr("   "),
		TwitterURL: utils.Ptr(" https://x.com/launchpad "),
	}, &profile)

	assert.Nil(t, profile.Phone)
	assert.Equal(t, "https://x.com/launchpad", *profile.TwitterURL)
	assert.Nil(t, profile.GithubURL)
}
