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

package dtos

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultTimezone = "Africa/Casablanca"

// ProjectLaunchRequest is the combined project and launch form. It is used for
// booking and for editing a booked launch.
type ProjectLaunchRequest struct {
	Name             string `json:"name" validate:"required,min=2,max=120"`
	Tagline          string `json:"tagline" validate:"required,min=2,max=240"`
	ProductHuntURL   string `json:"productHuntUrl" validate:"required,url,producthunturl"`
	AskFromFounder   string `json:"askFromFounder" validate:"max=500"`
	ShortExplanation string `json:"shortExplanation" validate:"max=1000"`
	LaunchDate       string `json:"launchDate" validate:"required,isodate"`
	Timezone         string `json:"timezone" validate:"min=2,max=100"`
}

// Normalize trims every field and applies the default time zone.
func (r ProjectLaunchRequest) Normalize() ProjectLaunchRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Tagline = strings.TrimSpace(r.Tagline)
	r.ProductHuntURL = strings.TrimSpace(r.ProductHuntURL)
	r.AskFromFounder = strings.TrimSpace(r.AskFromFounder)
	r.ShortExplanation = strings.TrimSpace(r.ShortExplanation)
	r.LaunchDate = strings.TrimSpace(r.LaunchDate)
	r.Timezone = strings.TrimSpace(r.Timezone)
	if r.Timezone == "" {
		r.Timezone = DefaultTimezone
	}
	return r
}

type LaunchStatusUpdateRequest struct {
	Status       string  `json:"status"`
	AdminComment *string `json:"adminComment"`
}

type LaunchDTO struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"projectId"`
	LaunchDate   string    `json:"launchDate"`
	Timezone     string    `json:"timezone"`
	Status       string    `json:"status"`
	AdminComment *string   `json:"adminComment"`
	CreatedBy    uuid.UUID `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ProjectDTO struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          uuid.UUID  `json:"ownerId"`
	Name             string     `json:"name"`
	Tagline          string     `json:"tagline"`
	ProductHuntURL   string     `json:"productHuntUrl"`
	AskFromFounder   *string    `json:"askFromFounder"`
	ShortExplanation *string    `json:"shortExplanation"`
	Launch           *LaunchDTO `json:"launch,omitempty"`
}

// LaunchListItemDTO is one entry of the public upcoming launches list and of
// a calendar day.
type LaunchListItemDTO struct {
	ID               uuid.UUID `json:"id"`
	LaunchDate       string    `json:"launchDate"`
	LaunchTime       string    `json:"launchTime"`
	Timezone         string    `json:"timezone"`
	Status           string    `json:"status"`
	ProjectName      string    `json:"projectName"`
	Tagline          string    `json:"tagline"`
	ProductHuntURL   string    `json:"productHuntUrl"`
	OwnerDisplayName string    `json:"ownerDisplayName"`
}

type MyLaunchDTO struct {
	LaunchDTO
	LaunchTime string     `json:"launchTime"`
	Project    ProjectDTO `json:"project"`
}

type AdminLaunchDTO struct {
	LaunchDTO
	LaunchTime       string     `json:"launchTime"`
	ProjectName      string     `json:"projectName"`
	Project          ProjectDTO `json:"project"`
	OwnerDisplayName string     `json:"ownerDisplayName"`
	OwnerEmail       string     `json:"ownerEmail"`
}

type MemberLaunchesDTO struct {
	Member   ProfileDTO       `json:"member"`
	Launches []AdminLaunchDTO `json:"launches"`
}

type LaunchRulesDTO struct {
	MinDaysInAdvance int    `json:"minDaysInAdvance"`
	DailyCap         int    `json:"dailyCap"`
	MinLaunchDate    string `json:"minLaunchDate"`
	LaunchTimeZone   string `json:"launchTimeZone"`
	DefaultTimezone  string `json:"defaultTimezone"`
}
