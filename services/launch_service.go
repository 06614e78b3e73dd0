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
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/database"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/monitoring"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/l3montree-dev/launchpad/transformer"
)

type launchService struct {
	projectRepository shared.ProjectRepository
	launchRepository  shared.LaunchRepository
	profileService    shared.ProfileService
	capacityLedger    shared.CapacityLedger
	authorizer        shared.Authorizer
	viewInvalidator   shared.ViewInvalidator
	clock             calendar.Clock
}

var _ shared.LaunchService = &launchService{}

func NewLaunchService(
	projectRepository shared.ProjectRepository,
	launchRepository shared.LaunchRepository,
	profileService shared.ProfileService,
	capacityLedger shared.CapacityLedger,
	authorizer shared.Authorizer,
	viewInvalidator shared.ViewInvalidator,
	clock calendar.Clock,
) *launchService {
	return &launchService{
		projectRepository: projectRepository,
		launchRepository:  launchRepository,
		profileService:    profileService,
		capacityLedger:    capacityLedger,
		authorizer:        authorizer,
		viewInvalidator:   viewInvalidator,
		clock:             clock,
	}
}

func validateProjectLaunchRequest(req dtos.ProjectLaunchRequest) (dtos.ProjectLaunchRequest, error) {
	req = req.Normalize()
	if err := shared.V.Struct(req); err != nil {
		return req, &shared.LaunchError{Kind: shared.KindValidation, Message: "Please fill all fields with valid values.", Err: err}
	}
	return req, nil
}

func invalidTimeZoneError() error {
	return shared.NewLaunchError(shared.KindInvalidTimeZone, "Timezone is invalid.")
}

// normalizeLaunchDate checks format and lead time of a requested date.
func (s *launchService) normalizeLaunchDate(launchDate string) (string, error) {
	normalized, err := calendar.NormalizeDate(launchDate)
	if err != nil {
		return "", &shared.LaunchError{Kind: shared.KindInvalidDate, Message: "Launch date is invalid.", Err: err}
	}
	if !calendar.IsLaunchDateAllowed(normalized, s.clock.Now()) {
		return "", shared.ValidationError(fmt.Sprintf("Launches can only be booked at least %d days in advance.", calendar.MinDaysInAdvance))
	}
	return normalized, nil
}

func (s *launchService) CreateProjectAndLaunch(session shared.AuthSession, req dtos.ProjectLaunchRequest) (models.Launch, error) {
	req, err := validateProjectLaunchRequest(req)
	if err != nil {
		return models.Launch{}, err
	}

	userID, err := shared.SessionUserID(session)
	if err != nil {
		return models.Launch{}, err
	}

	actor := shared.Actor{UserID: userID, Role: models.ProfileRoleMember}
	if err := authorize(s.authorizer, actor, shared.Resource{Object: shared.ObjectProject}, shared.ActionCreate, "You are not allowed to create projects."); err != nil {
		return models.Launch{}, err
	}

	if !calendar.IsValidTimeZone(req.Timezone) {
		return models.Launch{}, invalidTimeZoneError()
	}
	launchDate, err := s.normalizeLaunchDate(req.LaunchDate)
	if err != nil {
		return models.Launch{}, err
	}
	date, err := models.ToLaunchDate(launchDate)
	if err != nil {
		return models.Launch{}, &shared.LaunchError{Kind: shared.KindInvalidDate, Message: "Launch date is invalid.", Err: err}
	}

	project := transformer.ProjectLaunchRequestToProject(req, userID)
	launch := models.Launch{
		LaunchDate: date,
		Timezone:   req.Timezone,
		Status:     models.LaunchStatusInReview,
		CreatedBy:  userID,
	}

	// profile, project and launch are written in one transaction. If any step
	// fails nothing is kept and the caller sees the error of that step.
	err = s.launchRepository.Transaction(func(tx shared.DB) error {
		if _, err := s.profileService.EnsureProfile(tx, session); err != nil {
			return err
		}
		if err := s.projectRepository.Create(tx, &project); err != nil {
			return shared.StoreError(err)
		}
		if err := s.capacityLedger.TryReserve(tx, launchDate, nil); err != nil {
			return err
		}
		launch.ProjectID = project.ID
		if err := s.launchRepository.Create(tx, &launch); err != nil {
			if database.IsDuplicateKeyError(err) {
				return &shared.LaunchError{Kind: shared.KindAlreadyBooked, Message: "This project already has a launch date.", Err: err}
			}
			return shared.StoreError(err)
		}
		return nil
	})
	if err != nil {
		slog.Info("could not book launch", "userID", userID, "launchDate", launchDate, "err", err)
		return models.Launch{}, asLaunchError(err)
	}

	monitoring.LaunchBookedAmount.Inc()
	s.viewInvalidator.Invalidate()
	slog.Info("launch booked", "launchID", launch.ID, "projectID", project.ID, "launchDate", launchDate)

	launch.Project = project
	return launch, nil
}

// UpdateProjectAndLaunch checks ownership before looking at the request, a
// non owner is always forbidden.
func (s *launchService) UpdateProjectAndLaunch(session shared.AuthSession, projectID uuid.UUID, req dtos.ProjectLaunchRequest) (models.Launch, error) {
	userID, err := shared.SessionUserID(session)
	if err != nil {
		return models.Launch{}, err
	}
	actor := shared.Actor{UserID: userID, Role: models.ProfileRoleMember}

	project, err := s.projectRepository.Read(projectID)
	if err != nil {
		return models.Launch{}, notFoundOrStoreError(err, "Project not found.")
	}
	if err := authorize(s.authorizer, actor, shared.Resource{Object: shared.ObjectProject, OwnerID: project.OwnerID}, shared.ActionUpdate, "You can only edit your own projects."); err != nil {
		return models.Launch{}, err
	}

	req, err = validateProjectLaunchRequest(req)
	if err != nil {
		return models.Launch{}, err
	}

	launch, err := s.launchRepository.ReadByProjectID(nil, project.ID)
	if err != nil {
		return models.Launch{}, notFoundOrStoreError(err, "Launch not found for this project.")
	}
	if err := authorize(s.authorizer, actor, shared.Resource{Object: shared.ObjectLaunch, OwnerID: launch.CreatedBy}, shared.ActionUpdate, "You can only edit your own launches."); err != nil {
		return models.Launch{}, err
	}

	currentDate := launch.LaunchDateString()
	newDate := currentDate
	dateChanged := req.LaunchDate != currentDate
	timezoneChanged := req.Timezone != launch.Timezone

	if timezoneChanged && !calendar.IsValidTimeZone(req.Timezone) {
		return models.Launch{}, invalidTimeZoneError()
	}
	if dateChanged {
		if newDate, err = s.normalizeLaunchDate(req.LaunchDate); err != nil {
			return models.Launch{}, err
		}
		dateChanged = newDate != currentDate
	}

	transformer.ApplyProjectLaunchRequestToProject(req, &project)

	err = s.launchRepository.Transaction(func(tx shared.DB) error {
		if err := s.projectRepository.UpdateFields(tx, &project); err != nil {
			return shared.StoreError(err)
		}
		if !dateChanged && !timezoneChanged {
			return nil
		}
		if dateChanged {
			if err := s.capacityLedger.TryReserve(tx, newDate, &launch.ID); err != nil {
				var le *shared.LaunchError
				if errors.As(err, &le) && le.Kind == shared.KindCapacityExceeded {
					return shared.CapacityExceededError(fmt.Sprintf("That date is full. Limit is %d launches per day.", le.Cap), le.Cap)
				}
				return err
			}
		}
		if err := s.launchRepository.UpdateSchedule(tx, launch.ID, newDate, req.Timezone); err != nil {
			return shared.StoreError(err)
		}
		return nil
	})
	if err != nil {
		slog.Info("could not update launch", "projectID", projectID, "launchID", launch.ID, "err", err)
		return models.Launch{}, asLaunchError(err)
	}

	if dateChanged {
		monitoring.LaunchRescheduledAmount.Inc()
		slog.Info("launch rescheduled", "launchID", launch.ID, "from", currentDate, "to", newDate)
	}
	s.viewInvalidator.Invalidate()

	if date, err := models.ToLaunchDate(newDate); err == nil {
		launch.LaunchDate = date
	}
	launch.Timezone = req.Timezone
	launch.Project = project
	return launch, nil
}

func (s *launchService) ReadOwnProject(session shared.AuthSession, projectID uuid.UUID) (models.Project, error) {
	userID, err := shared.SessionUserID(session)
	if err != nil {
		return models.Project{}, err
	}

	project, err := s.projectRepository.ReadWithLaunch(projectID)
	if err != nil {
		return models.Project{}, notFoundOrStoreError(err, "Project not found.")
	}
	actor := shared.Actor{UserID: userID, Role: models.ProfileRoleMember}
	if err := authorize(s.authorizer, actor, shared.Resource{Object: shared.ObjectProject, OwnerID: project.OwnerID}, shared.ActionRead, "You can only edit your own projects."); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// DeleteLaunch removes the launch and frees its date. The project stays.
func (s *launchService) DeleteLaunch(session shared.AuthSession, launchID uuid.UUID) error {
	actor, err := s.profileService.ResolveActor(session)
	if err != nil {
		return err
	}
	if err := authorize(s.authorizer, actor, shared.Resource{Object: shared.ObjectLaunch}, shared.ActionDelete, "Only admins can delete launches."); err != nil {
		return err
	}

	affected, err := s.launchRepository.DeleteByID(nil, launchID)
	if err != nil {
		return shared.StoreError(err)
	}
	if affected == 0 {
		return shared.NotFoundError("Launch not found.", nil)
	}

	monitoring.LaunchDeletedAmount.Inc()
	s.viewInvalidator.Invalidate()
	slog.Info("launch deleted", "launchID", launchID, "adminID", actor.UserID)
	return nil
}
