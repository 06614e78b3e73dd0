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
	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/utils"
)

// ProjectLaunchRequestToProject expects a normalized request.
func ProjectLaunchRequestToProject(req dtos.ProjectLaunchRequest, ownerID uuid.UUID) models.Project {
	project := models.Project{OwnerID: ownerID}
	ApplyProjectLaunchRequestToProject(req, &project)
	return project
}

func ApplyProjectLaunchRequestToProject(req dtos.ProjectLaunchRequest, project *models.Project) {
	project.Name = req.Name
	project.Tagline = req.Tagline
	project.ProductHuntURL = req.ProductHuntURL
	project.AskFromFounder = utils.EmptyThenNil(req.AskFromFounder)
	project.ShortExplanation = utils.EmptyThenNil(req.ShortExplanation)
}

func LaunchModelToDTO(launch models.Launch) dtos.LaunchDTO {
	return dtos.LaunchDTO{
		ID:           launch.ID,
		ProjectID:    launch.ProjectID,
		LaunchDate:   launch.LaunchDateString(),
		Timezone:     launch.Timezone,
		Status:       string(launch.Status),
		AdminComment: launch.AdminComment,
		CreatedBy:    launch.CreatedBy,
		CreatedAt:    launch.CreatedAt,
		UpdatedAt:    launch.UpdatedAt,
	}
}

func ProjectModelToDTO(project models.Project) dtos.ProjectDTO {
	dto := dtos.ProjectDTO{
		ID:               project.ID,
		OwnerID:          project.OwnerID,
		Name:             project.Name,
		Tagline:          project.Tagline,
		ProductHuntURL:   project.ProductHuntURL,
		AskFromFounder:   project.AskFromFounder,
		ShortExplanation: project.ShortExplanation,
	}
	if project.Launch != nil {
		launch := LaunchModelToDTO(*project.Launch)
		dto.Launch = &launch
	}
	return dto
}

// LaunchModelToListItem expects Project and Creator to be preloaded.
func LaunchModelToListItem(launch models.Launch, viewerTimezone string) dtos.LaunchListItemDTO {
	return dtos.LaunchListItemDTO{
		ID:               launch.ID,
		LaunchDate:       launch.LaunchDateString(),
		LaunchTime:       calendar.DisplayLaunchTime(launch.LaunchDateString(), viewerTimezone),
		Timezone:         launch.Timezone,
		Status:           string(launch.Status),
		ProjectName:      launch.Project.NameOrFallback(),
		Tagline:          launch.Project.Tagline,
		ProductHuntURL:   launch.Project.ProductHuntURL,
		OwnerDisplayName: ownerDisplayName(launch.Creator, "Member"),
	}
}

func LaunchModelToMyLaunch(launch models.Launch, viewerTimezone string) dtos.MyLaunchDTO {
	return dtos.MyLaunchDTO{
		LaunchDTO:  LaunchModelToDTO(launch),
		LaunchTime: calendar.DisplayLaunchTime(launch.LaunchDateString(), viewerTimezone),
		Project:    ProjectModelToDTO(launch.Project),
	}
}

func LaunchModelToAdminLaunch(launch models.Launch, viewerTimezone string) dtos.AdminLaunchDTO {
	return dtos.AdminLaunchDTO{
		LaunchDTO:        LaunchModelToDTO(launch),
		LaunchTime:       calendar.DisplayLaunchTime(launch.LaunchDateString(), viewerTimezone),
		ProjectName:      launch.Project.NameOrFallback(),
		Project:          ProjectModelToDTO(launch.Project),
		OwnerDisplayName: ownerDisplayName(launch.Creator, "—"),
		OwnerEmail:       launch.Creator.Email,
	}
}

func ownerDisplayName(profile models.Profile, fallback string) string {
	if name := utils.FirstNonBlank(profile.DisplayName); name != "" {
		return name
	}
	return fallback
}
