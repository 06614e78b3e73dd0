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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/accesscontrol"
	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/mocks"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/l3montree-dev/launchpad/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type launchViewMocks struct {
	launchRepository  *mocks.LaunchRepository
	profileRepository *mocks.ProfileRepository
	profileService    *mocks.ProfileService
}

func newTestLaunchViewService(t *testing.T) (*launchViewService, launchViewMocks) {
	policy, err := accesscontrol.NewLaunchPolicy()
	assert.NoError(t, err)

	cfg := config.Config{LaunchesPerDay: "2", ViewCacheSize: 16, ViewCacheTTL: time.Minute}
	m := launchViewMocks{
		launchRepository:  mocks.NewLaunchRepository(t),
		profileRepository: mocks.NewProfileRepository(t),
		profileService:    mocks.NewProfileService(t),
	}
	s := NewLaunchViewService(m.launchRepository, m.profileRepository, m.profileService, policy, NewCapacityLedger(m.launchRepository, cfg), calendar.FixedClock(testNow), cfg)
	return s, m
}

func launchOn(t *testing.T, date string, name string) models.Launch {
	l := mustLaunchDate(t, date)
	l.ID = uuid.New()
	l.Status = models.LaunchStatusInReview
	l.Timezone = "UTC"
	l.Project = models.Project{Name: name, Tagline: "tagline"}
	l.Creator = models.Profile{DisplayName: "Ada", Email: "ada@example.com"}
	return l
}

func TestRules(t *testing.T) {
	s, _ := newTestLaunchViewService(t)

	rules := s.Rules()
	assert.Equal(t, 3, rules.MinDaysInAdvance)
	assert.Equal(t, 2, rules.DailyCap)
	assert.Equal(t, "2025-06-13", rules.MinLaunchDate)
}

func TestUpcoming(t *testing.T) {
	t.Run("should serve repeated reads from the cache until invalidated", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)

		m.launchRepository.On("ListFrom", "2025-06-10").Return([]models.Launch{launchOn(t, "2025-06-20", "Rocket")}, nil).Twice()

		first, err := s.Upcoming("America/New_York")
		assert.NoError(t, err)
		second, err := s.Upcoming("America/New_York")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		m.launchRepository.AssertNumberOfCalls(t, "ListFrom", 1)

		s.Invalidate()
		_, err = s.Upcoming("America/New_York")
		assert.NoError(t, err)
		m.launchRepository.AssertNumberOfCalls(t, "ListFrom", 2)
	})

	t.Run("should render launch times for the viewer", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.launchRepository.On("ListFrom", "2025-06-10").Return([]models.Launch{launchOn(t, "2025-06-10", "Rocket")}, nil)

		items, err := s.Upcoming("America/New_York")
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Jun 10, 2025 3:01 AM", items[0].LaunchTime)
		assert.Equal(t, "Rocket", items[0].ProjectName)
	})
}

func TestMonthCalendar(t *testing.T) {
	t.Run("should mark today, bookable and full days", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.launchRepository.On("ListBetween", "2025-06-01", "2025-07-05").Return([]models.Launch{
			launchOn(t, "2025-06-20", "A"),
			launchOn(t, "2025-06-20", "B"),
			launchOn(t, "2025-06-21", "C"),
		}, nil)

		month, err := s.MonthCalendar("2025-06", "UTC")
		assert.NoError(t, err)
		assert.Equal(t, "2025-06", month.Month)
		assert.Equal(t, 2, month.DailyCap)
		assert.Len(t, month.Weeks, 5)

		days := map[string]bool{}
		for _, week := range month.Weeks {
			assert.Len(t, week, 7)
			for _, day := range week {
				days[day.Date] = true
				switch day.Date {
				case "2025-06-10":
					assert.True(t, day.IsToday)
					assert.False(t, day.Bookable)
				case "2025-06-12":
					assert.False(t, day.Bookable)
				case "2025-06-13":
					assert.True(t, day.Available)
				case "2025-06-20":
					assert.True(t, day.Full)
					assert.False(t, day.Available)
					assert.Equal(t, 2, day.Count)
					assert.Len(t, day.Launches, 2)
				case "2025-06-21":
					assert.True(t, day.Available)
					assert.Equal(t, 1, day.Count)
				case "2025-07-01":
					assert.False(t, day.InMonth)
				}
			}
		}
		assert.Len(t, days, 35)
	})

	t.Run("should default to the current month", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.launchRepository.On("ListBetween", "2025-06-01", "2025-07-05").Return([]models.Launch{}, nil)

		month, err := s.MonthCalendar("", "UTC")
		assert.NoError(t, err)
		assert.Equal(t, "2025-06", month.Month)
	})

	t.Run("should reject malformed months", func(t *testing.T) {
		s, _ := newTestLaunchViewService(t)

		_, err := s.MonthCalendar("June", "UTC")
		assert.ErrorIs(t, err, shared.ErrValidation)
	})
}

func TestMyLaunches(t *testing.T) {
	userID := uuid.New()
	session := accesscontrol.NewSession(userID.String(), "ada@example.com", "Ada")

	t.Run("should use the profile timezone", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.launchRepository.On("ListByCreator", userID, false).Return([]models.Launch{launchOn(t, "2025-06-10", "Rocket")}, nil)
		m.profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{ID: userID, Timezone: utils.Ptr("America/Los_Angeles")}, nil)

		launches, err := s.MyLaunches(session)
		assert.NoError(t, err)
		assert.Len(t, launches, 1)
		assert.Equal(t, "Jun 10, 2025 12:01 AM", launches[0].LaunchTime)
	})

	t.Run("should fall back to UTC", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.launchRepository.On("ListByCreator", userID, false).Return([]models.Launch{launchOn(t, "2025-06-10", "Rocket")}, nil)
		m.profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{}, gorm.ErrRecordNotFound)

		launches, err := s.MyLaunches(session)
		assert.NoError(t, err)
		assert.Equal(t, "Jun 10, 2025 7:01 AM", launches[0].LaunchTime)
	})

	t.Run("should require a session", func(t *testing.T) {
		s, _ := newTestLaunchViewService(t)

		_, err := s.MyLaunches(accesscontrol.NoSession)
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})
}

func TestAdminLaunches(t *testing.T) {
	adminID := uuid.New()
	session := accesscontrol.NewSession(adminID.String(), "admin@example.com", "Admin")

	t.Run("should list upcoming launches with owner emails", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.profileService.On("ResolveActor", session).Return(shared.Actor{UserID: adminID, Role: models.ProfileRoleAdmin}, nil)
		m.launchRepository.On("ListFrom", "2025-06-10").Return([]models.Launch{launchOn(t, "2025-06-20", "Rocket")}, nil)
		m.profileRepository.On("FindByID", mock.Anything, adminID).Return(models.Profile{ID: adminID}, nil)

		launches, err := s.AdminLaunches(session)
		assert.NoError(t, err)
		assert.Len(t, launches, 1)
		assert.Equal(t, "ada@example.com", launches[0].OwnerEmail)
	})

	t.Run("should hide the queue from members", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.profileService.On("ResolveActor", session).Return(shared.Actor{UserID: adminID, Role: models.ProfileRoleMember}, nil)

		_, err := s.AdminLaunches(session)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestMemberLaunches(t *testing.T) {
	adminID := uuid.New()
	memberID := uuid.New()
	session := accesscontrol.NewSession(adminID.String(), "admin@example.com", "Admin")
	admin := shared.Actor{UserID: adminID, Role: models.ProfileRoleAdmin}

	t.Run("should list the launches of a member newest first", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.profileService.On("ResolveActor", session).Return(admin, nil)
		m.profileRepository.On("FindByID", mock.Anything, memberID).Return(models.Profile{ID: memberID, DisplayName: "Grace"}, nil)
		m.profileRepository.On("FindByID", mock.Anything, adminID).Return(models.Profile{ID: adminID}, nil)
		m.launchRepository.On("ListByCreator", memberID, true).Return([]models.Launch{launchOn(t, "2025-07-01", "B"), launchOn(t, "2025-06-01", "A")}, nil)

		res, err := s.MemberLaunches(session, memberID)
		assert.NoError(t, err)
		assert.Equal(t, "Grace", res.Member.DisplayName)
		assert.Len(t, res.Launches, 2)
		assert.Equal(t, "B", res.Launches[0].ProjectName)
	})

	t.Run("should report unknown members", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.profileService.On("ResolveActor", session).Return(admin, nil)
		m.profileRepository.On("FindByID", mock.Anything, memberID).Return(models.Profile{}, gorm.ErrRecordNotFound)

		_, err := s.MemberLaunches(session, memberID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Equal(t, "Member not found.", err.Error())
	})

	t.Run("should not let members look at other members", func(t *testing.T) {
		s, m := newTestLaunchViewService(t)
		m.profileService.On("ResolveActor", session).Return(shared.Actor{UserID: adminID, Role: models.ProfileRoleMember}, nil)

		_, err := s.MemberLaunches(session, memberID)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}
