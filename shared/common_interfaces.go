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

package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/utils"
	"github.com/ory/client-go"
)

type ProfileRepository interface {
	utils.Repository[uuid.UUID, models.Profile, DB]
	FindByID(tx DB, id uuid.UUID) (models.Profile, error)
	// Upsert inserts the profile or refreshes email and display name of an
	// existing one. The role is never touched.
	Upsert(tx DB, profile *models.Profile) error
	UpdateDisplayName(tx DB, id uuid.UUID, displayName string) error
	UpdateContact(tx DB, profile *models.Profile) error
	SetRole(tx DB, id uuid.UUID, role models.ProfileRole) (int64, error)
}

type ProjectRepository interface {
	utils.Repository[uuid.UUID, models.Project, DB]
	ReadWithLaunch(projectID uuid.UUID) (models.Project, error)
	UpdateFields(tx DB, project *models.Project) error
}

type LaunchRepository interface {
	utils.Repository[uuid.UUID, models.Launch, DB]
	ReadByProjectID(tx DB, projectID uuid.UUID) (models.Launch, error)
	// LockDate serializes every capacity decision for one date until tx ends.
	LockDate(tx DB, launchDate string) error
	CountByDate(tx DB, launchDate string, excludeLaunchID *uuid.UUID) (int64, error)
	UpdateSchedule(tx DB, launchID uuid.UUID, launchDate string, timezone string) error
	UpdateReview(tx DB, launchID uuid.UUID, status models.LaunchStatus, adminComment *string) (int64, error)
	DeleteByID(tx DB, launchID uuid.UUID) (int64, error)
	ListFrom(fromDate string) ([]models.Launch, error)
	ListBetween(fromDate, toDate string) ([]models.Launch, error)
	ListByCreator(creatorID uuid.UUID, newestFirst bool) ([]models.Launch, error)
}

type CapacityLedger interface {
	DailyCap() int
	// TryReserve must run inside the transaction that writes the launch.
	TryReserve(tx DB, launchDate string, excludeLaunchID *uuid.UUID) error
}

type ProfileService interface {
	EnsureProfile(tx DB, session AuthSession) (models.Profile, error)
	Read(session AuthSession) (models.Profile, error)
	ResolveActor(session AuthSession) (Actor, error)
	UpdateDisplayName(session AuthSession, displayName string) (models.Profile, error)
	UpdateContact(session AuthSession, req dtos.ProfileContactRequest) (models.Profile, error)
	SetRole(userID uuid.UUID, role models.ProfileRole) error
}

type LaunchService interface {
	CreateProjectAndLaunch(session AuthSession, req dtos.ProjectLaunchRequest) (models.Launch, error)
	UpdateProjectAndLaunch(session AuthSession, projectID uuid.UUID, req dtos.ProjectLaunchRequest) (models.Launch, error)
	ReadOwnProject(session AuthSession, projectID uuid.UUID) (models.Project, error)
	DeleteLaunch(session AuthSession, launchID uuid.UUID) error
}

type ReviewService interface {
	SetStatus(session AuthSession, launchID uuid.UUID, status string, adminComment *string) (models.Launch, error)
}

type ViewInvalidator interface {
	Invalidate()
}

type LaunchViewService interface {
	ViewInvalidator
	Rules() dtos.LaunchRulesDTO
	Upcoming(viewerTimezone string) ([]dtos.LaunchListItemDTO, error)
	MonthCalendar(month string, viewerTimezone string) (dtos.MonthCalendarDTO, error)
	MyLaunches(session AuthSession) ([]dtos.MyLaunchDTO, error)
	AdminLaunches(session AuthSession) ([]dtos.AdminLaunchDTO, error)
	MemberLaunches(session AuthSession, memberID uuid.UUID) (dtos.MemberLaunchesDTO, error)
}

type Authorizer interface {
	IsAllowed(actor Actor, resource Resource, action Action) (bool, error)
}

type AdminClient interface {
	GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error)
}

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionReview Action = "review"
)

type Object string

const (
	ObjectProject Object = "project"
	ObjectLaunch  Object = "launch"
	ObjectMember  Object = "member"
)

// Actor is the signed in member together with the role stored on the profile.
type Actor struct {
	UserID uuid.UUID
	Role   models.ProfileRole
}

type Resource struct {
	Object  Object
	OwnerID uuid.UUID
}
