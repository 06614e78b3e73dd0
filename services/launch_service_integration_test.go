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

package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/accesscontrol"
	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/database/repositories"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/integrationtestutil"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/l3montree-dev/launchpad/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

type launchStack struct {
	db             shared.DB
	profileService *profileService
	launchService  *launchService
	reviewService  *reviewService
	viewService    *launchViewService
}

func newLaunchStack(t *testing.T, db shared.DB) launchStack {
	policy, err := accesscontrol.NewLaunchPolicy()
	assert.NoError(t, err)

	cfg := config.Config{LaunchesPerDay: "2", ViewCacheSize: 16, ViewCacheTTL: time.Minute}
	clock := calendar.FixedClock(testNow)

	profileRepository := repositories.NewProfileRepository(db)
	projectRepository := repositories.NewProjectRepository(db)
	launchRepository := repositories.NewLaunchRepository(db)

	profiles := NewProfileService(profileRepository)
	ledger := NewCapacityLedger(launchRepository, cfg)
	views := NewLaunchViewService(launchRepository, profileRepository, profiles, policy, ledger, clock, cfg)

	return launchStack{
		db:             db,
		profileService: profiles,
		launchService:  NewLaunchService(projectRepository, launchRepository, profiles, ledger, policy, views, clock),
		reviewService:  NewReviewService(launchRepository, profiles, policy, views),
		viewService:    views,
	}
}

func newMember(name string) shared.AuthSession {
	id := uuid.New()
	return accesscontrol.NewSession(id.String(), fmt.Sprintf("%s@example.com", name), name)
}

func requestFor(name string, date string) dtos.ProjectLaunchRequest {
	return dtos.ProjectLaunchRequest{
		Name:           name,
		Tagline:        "The tagline of " + name,
		ProductHuntURL: "https://www.producthunt.com/posts/" + name,
		LaunchDate:     date,
		Timezone:       "Europe/Berlin",
	}
}

func countLaunchesOn(t *testing.T, db shared.DB, date string) int64 {
	d, err := models.ToLaunchDate(date)
	assert.NoError(t, err)
	var count int64
	assert.NoError(t, db.Model(&models.Launch{}).Where("launch_date = ?", d).Count(&count).Error)
	return count
}

func TestLaunchBookingIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	stack := newLaunchStack(t, db)

	t.Run("should never book more launches on one date than the daily cap", func(t *testing.T) {
		results := make([]error, 5)
		var g errgroup.Group
		for i := range results {
			g.Go(func() error {
				_, results[i] = stack.launchService.CreateProjectAndLaunch(newMember(fmt.Sprintf("founder%d", i)), requestFor(fmt.Sprintf("rush%d", i), "2025-06-20"))
				return nil
			})
		}
		assert.NoError(t, g.Wait())

		succeeded := utils.Filter(results, func(err error) bool { return err == nil })
		rejected := utils.Filter(results, func(err error) bool { return shared.KindOf(err) == shared.KindCapacityExceeded })
		assert.Len(t, succeeded, 2)
		assert.Len(t, rejected, 3)
		assert.Equal(t, int64(2), countLaunchesOn(t, db, "2025-06-20"))

		var projects int64
		assert.NoError(t, db.Model(&models.Project{}).Where("name LIKE ?", "rush%").Count(&projects).Error)
		assert.Equal(t, int64(2), projects, "rejected bookings must not leave projects behind")
	})

	t.Run("should reschedule without counting the launch against itself", func(t *testing.T) {
		owner := newMember("grace")
		launch, err := stack.launchService.CreateProjectAndLaunch(owner, requestFor("compiler", "2025-06-24"))
		assert.NoError(t, err)

		other := newMember("alan")
		_, err = stack.launchService.CreateProjectAndLaunch(other, requestFor("engine", "2025-06-24"))
		assert.NoError(t, err)

		// the date is full, resaving the same date must still work
		req := requestFor("compiler v2", "2025-06-24")
		updated, err := stack.launchService.UpdateProjectAndLaunch(owner, launch.ProjectID, req)
		assert.NoError(t, err)
		assert.Equal(t, "compiler v2", updated.Project.Name)

		// moving to a free date frees the old one
		_, err = stack.launchService.UpdateProjectAndLaunch(owner, launch.ProjectID, requestFor("compiler v2", "2025-06-25"))
		assert.NoError(t, err)
		assert.Equal(t, int64(1), countLaunchesOn(t, db, "2025-06-24"))

		// fill the old date again and try to move back
		_, err = stack.launchService.CreateProjectAndLaunch(newMember("barbara"), requestFor("liskov", "2025-06-24"))
		assert.NoError(t, err)

		_, err = stack.launchService.UpdateProjectAndLaunch(owner, launch.ProjectID, requestFor("compiler v3", "2025-06-24"))
		assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
		assert.Equal(t, "That date is full. Limit is 2 launches per day.", err.Error())

		project, err := stack.launchService.ReadOwnProject(owner, launch.ProjectID)
		assert.NoError(t, err)
		assert.Equal(t, "compiler v2", project.Name, "a failed reschedule must not keep the field changes")
		assert.Equal(t, "2025-06-25", project.Launch.LaunchDateString())
	})

	t.Run("should let admins review and delete launches", func(t *testing.T) {
		owner := newMember("katherine")
		launch, err := stack.launchService.CreateProjectAndLaunch(owner, requestFor("orbit", "2025-06-27"))
		assert.NoError(t, err)

		admin := newMember("margaret")
		_, err = stack.profileService.EnsureProfile(nil, admin)
		assert.NoError(t, err)

		_, err = stack.reviewService.SetStatus(admin, launch.ID, "passed", nil)
		assert.ErrorIs(t, err, shared.ErrForbidden)

		adminID, err := uuid.Parse(admin.GetUserID())
		assert.NoError(t, err)
		assert.NoError(t, stack.profileService.SetRole(adminID, models.ProfileRoleAdmin))

		reviewed, err := stack.reviewService.SetStatus(admin, launch.ID, "need_editing", utils.Ptr(" Add a demo video. "))
		assert.NoError(t, err)
		assert.Equal(t, models.LaunchStatusNeedEditing, reviewed.Status)

		mine, err := stack.viewService.MyLaunches(owner)
		assert.NoError(t, err)
		assert.Len(t, mine, 1)
		assert.Equal(t, string(models.LaunchStatusNeedEditing), mine[0].Status)
		assert.Equal(t, " Add a demo video. ", *mine[0].AdminComment)

		queue, err := stack.viewService.AdminLaunches(admin)
		assert.NoError(t, err)
		assert.True(t, utils.Any(queue, func(l dtos.AdminLaunchDTO) bool { return l.ID == launch.ID }))

		assert.NoError(t, stack.launchService.DeleteLaunch(admin, launch.ID))
		assert.ErrorIs(t, stack.launchService.DeleteLaunch(admin, launch.ID), shared.ErrNotFound)
		assert.Equal(t, int64(0), countLaunchesOn(t, db, "2025-06-27"))

		project, err := stack.launchService.ReadOwnProject(owner, launch.ProjectID)
		assert.NoError(t, err)
		assert.Nil(t, project.Launch)
	})
}
