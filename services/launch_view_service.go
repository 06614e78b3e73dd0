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
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/monitoring"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/l3montree-dev/launchpad/transformer"
	"github.com/l3montree-dev/launchpad/utils"
	"golang.org/x/sync/singleflight"
)

// launchViewService shapes launches into the read models of the dashboard,
// the calendar and the admin pages. Shared views are cached until the next
// mutation or until the ttl expires.
type launchViewService struct {
	launchRepository  shared.LaunchRepository
	profileRepository shared.ProfileRepository
	profileService    shared.ProfileService
	authorizer        shared.Authorizer
	capacityLedger    shared.CapacityLedger
	clock             calendar.Clock

	cache *expirable.LRU[string, any]
	group singleflight.Group
	// generation is part of every cache key. Bumping it on invalidation makes
	// results computed before the mutation unreachable.
	generation atomic.Uint64
}

var _ shared.LaunchViewService = &launchViewService{}

func NewLaunchViewService(
	launchRepository shared.LaunchRepository,
	profileRepository shared.ProfileRepository,
	profileService shared.ProfileService,
	authorizer shared.Authorizer,
	capacityLedger shared.CapacityLedger,
	clock calendar.Clock,
	cfg config.Config,
) *launchViewService {
	return &launchViewService{
		launchRepository:  launchRepository,
		profileRepository: profileRepository,
		profileService:    profileService,
		authorizer:        authorizer,
		capacityLedger:    capacityLedger,
		clock:             clock,
		cache:             expirable.NewLRU[string, any](cfg.ViewCacheSize, nil, cfg.ViewCacheTTL),
	}
}

func (s *launchViewService) Invalidate() {
	s.generation.Add(1)
	s.cache.Purge()
}

func cachedView[T any](s *launchViewService, key string, load func() (T, error)) (T, error) {
	key = fmt.Sprintf("%d:%s", s.generation.Load(), key)
	if v, ok := s.cache.Get(key); ok {
		if t, ok := v.(T); ok {
			monitoring.ViewCacheRequestsAmount.WithLabelValues("hit").Inc()
			return t, nil
		}
	}
	monitoring.ViewCacheRequestsAmount.WithLabelValues("miss").Inc()

	v, err, _ := s.group.Do(key, func() (any, error) {
		t, err := load()
		if err != nil {
			return nil, err
		}
		s.cache.Add(key, t)
		return t, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (s *launchViewService) Rules() dtos.LaunchRulesDTO {
	return dtos.LaunchRulesDTO{
		MinDaysInAdvance: calendar.MinDaysInAdvance,
		DailyCap:         s.capacityLedger.DailyCap(),
		MinLaunchDate:    calendar.MinLaunchDateString(s.clock.Now()),
		LaunchTimeZone:   calendar.LaunchTimeZone,
		DefaultTimezone:  dtos.DefaultTimezone,
	}
}

func (s *launchViewService) Upcoming(viewerTimezone string) ([]dtos.LaunchListItemDTO, error) {
	today := calendar.Today(s.clock.Now())
	return cachedView(s, "upcoming:"+today+":"+viewerTimezone, func() ([]dtos.LaunchListItemDTO, error) {
		launches, err := s.launchRepository.ListFrom(today)
		if err != nil {
			return nil, shared.StoreError(err)
		}
		return utils.Map(launches, func(l models.Launch) dtos.LaunchListItemDTO {
			return transformer.LaunchModelToListItem(l, viewerTimezone)
		}), nil
	})
}

// MonthCalendar builds the weeks of month (YYYY-MM, empty means the current
// month). Every day carries its launches and whether it can still be booked.
func (s *launchViewService) MonthCalendar(month string, viewerTimezone string) (dtos.MonthCalendarDTO, error) {
	now := s.clock.Now()
	if month == "" {
		month = now.Format(calendar.MonthLayout)
	}
	monthStart, err := calendar.ParseMonth(month)
	if err != nil {
		return dtos.MonthCalendarDTO{}, &shared.LaunchError{Kind: shared.KindValidation, Message: "Month must be formatted as YYYY-MM.", Err: err}
	}

	today := calendar.Today(now)
	return cachedView(s, "calendar:"+month+":"+today+":"+viewerTimezone, func() (dtos.MonthCalendarDTO, error) {
		grid := calendar.NewMonthGrid(monthStart)
		launches, err := s.launchRepository.ListBetween(grid.Start.Format(calendar.DateLayout), grid.End.Format(calendar.DateLayout))
		if err != nil {
			return dtos.MonthCalendarDTO{}, shared.StoreError(err)
		}
		return buildMonthCalendar(grid, launches, now, s.capacityLedger.DailyCap(), viewerTimezone), nil
	})
}

func buildMonthCalendar(grid calendar.MonthGrid, launches []models.Launch, now time.Time, dailyCap int, viewerTimezone string) dtos.MonthCalendarDTO {
	byDate := utils.GroupBy(launches, func(l models.Launch) string { return l.LaunchDateString() })
	today := calendar.Today(now)

	res := dtos.MonthCalendarDTO{
		Month:    grid.Month.Format(calendar.MonthLayout),
		DailyCap: dailyCap,
	}

	var week []dtos.CalendarDayDTO
	for _, date := range grid.Days() {
		dayLaunches := byDate[date]
		bookable := calendar.IsLaunchDateAllowed(date, now)
		full := bookable && len(dayLaunches) >= dailyCap
		week = append(week, dtos.CalendarDayDTO{
			Date:      date,
			InMonth:   grid.InMonth(date),
			IsToday:   date == today,
			Bookable:  bookable,
			Full:      full,
			Available: bookable && !full,
			Count:     len(dayLaunches),
			Launches: utils.Map(dayLaunches, func(l models.Launch) dtos.LaunchListItemDTO {
				return transformer.LaunchModelToListItem(l, viewerTimezone)
			}),
		})
		if len(week) == 7 {
			res.Weeks = append(res.Weeks, week)
			week = nil
		}
	}
	return res
}

func (s *launchViewService) MyLaunches(session shared.AuthSession) ([]dtos.MyLaunchDTO, error) {
	userID, err := shared.SessionUserID(session)
	if err != nil {
		return nil, err
	}
	launches, err := s.launchRepository.ListByCreator(userID, false)
	if err != nil {
		return nil, shared.StoreError(err)
	}
	viewerTimezone := s.viewerTimezone(userID)
	return utils.Map(launches, func(l models.Launch) dtos.MyLaunchDTO {
		return transformer.LaunchModelToMyLaunch(l, viewerTimezone)
	}), nil
}

// viewerTimezone falls back to UTC when the profile has no usable zone.
func (s *launchViewService) viewerTimezone(userID uuid.UUID) string {
	profile, err := s.profileRepository.FindByID(nil, userID)
	if err != nil || profile.Timezone == nil {
		return "UTC"
	}
	return *profile.Timezone
}

func (s *launchViewService) AdminLaunches(session shared.AuthSession) ([]dtos.AdminLaunchDTO, error) {
	actor, err := s.profileService.ResolveActor(session)
	if err != nil {
		return nil, err
	}
	if err := authorize(s.authorizer, actor, shared.Resource{Object: shared.ObjectLaunch}, shared.ActionReview, "Only admins can view the review queue."); err != nil {
		return nil, err
	}

	launches, err := s.launchRepository.ListFrom(calendar.Today(s.clock.Now()))
	if err != nil {
		return nil, shared.StoreError(err)
	}
	viewerTimezone := s.viewerTimezone(actor.UserID)
	return utils.Map(launches, func(l models.Launch) dtos.AdminLaunchDTO {
		return transformer.LaunchModelToAdminLaunch(l, viewerTimezone)
	}), nil
}

func (s *launchViewService) MemberLaunches(session shared.AuthSession, memberID uuid.UUID) (dtos.MemberLaunchesDTO, error) {
	actor, err := s.profileService.ResolveActor(session)
	if err != nil {
		return dtos.MemberLaunchesDTO{}, err
	}
	if err := authorize(s.authorizer, actor, shared.Resource{Object: shared.ObjectMember, OwnerID: memberID}, shared.ActionRead, "Only admins can view member launches."); err != nil {
		return dtos.MemberLaunchesDTO{}, err
	}

	member, err := s.profileRepository.FindByID(nil, memberID)
	if err != nil {
		return dtos.MemberLaunchesDTO{}, notFoundOrStoreError(err, "Member not found.")
	}

	launches, err := s.launchRepository.ListByCreator(memberID, true)
	if err != nil {
		return dtos.MemberLaunchesDTO{}, shared.StoreError(err)
	}
	viewerTimezone := s.viewerTimezone(actor.UserID)
	return dtos.MemberLaunchesDTO{
		Member: transformer.ProfileModelToDTO(member),
		Launches: utils.Map(launches, func(l models.Launch) dtos.AdminLaunchDTO {
			return transformer.LaunchModelToAdminLaunch(l, viewerTimezone)
		}),
	}, nil
}
