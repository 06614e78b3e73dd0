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

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LaunchStatus string

const (
	LaunchStatusInReview    LaunchStatus = "in_review"
	LaunchStatusNeedEditing LaunchStatus = "need_editing"
	LaunchStatusPassed      LaunchStatus = "passed"
)

func (s LaunchStatus) IsValid() bool {
	switch s {
	case LaunchStatusInReview, LaunchStatusPassed, LaunchStatusNeedEditing:
		return true
	}
	return false
}

const launchDateLayout = "2006-01-02"

type Launch struct {
	Model
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:launches_project_id_key"`
	Project   Project   `json:"project" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`

	LaunchDate   datatypes.Date `json:"launchDate" gorm:"type:date;not null;index"`
	Timezone     string         `json:"timezone" gorm:"type:text;not null"`
	Status       LaunchStatus   `json:"status" gorm:"type:text;not null;default:in_review"`
	AdminComment *string        `json:"adminComment" gorm:"type:text"`

	CreatedBy uuid.UUID `json:"createdBy" gorm:"type:uuid;not null"`
	Creator   Profile   `json:"creator" gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE;"`
}

func (l Launch) TableName() string {
	return "launches"
}

// LaunchDateString formats the stored calendar date as YYYY-MM-DD.
func (l Launch) LaunchDateString() string {
	return time.Time(l.LaunchDate).Format(launchDateLayout)
}

// ToLaunchDate converts a YYYY-MM-DD string into the column type. The date is
// anchored at midnight UTC so that the driver does not shift it.
func ToLaunchDate(date string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(launchDateLayout, date, time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
