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

import "github.com/google/uuid"

type Project struct {
	Model
	OwnerID uuid.UUID `json:"ownerId" gorm:"type:uuid;not null"`
	Owner   Profile   `json:"owner" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`

	Name             string  `json:"name" gorm:"type:text;not null"`
	Tagline          string  `json:"tagline" gorm:"type:text;not null"`
	ProductHuntURL   string  `json:"productHuntUrl" gorm:"type:text;not null"`
	AskFromFounder   *string `json:"askFromFounder" gorm:"type:text"`
	ShortExplanation *string `json:"shortExplanation" gorm:"type:text"`

	Launch *Launch `json:"launch,omitempty" gorm:"foreignKey:ProjectID"`
}

func (p Project) TableName() string {
	return "projects"
}

// NameOrFallback is used wherever a project is listed next to its launch.
func (p Project) NameOrFallback() string {
	if p.Name == "" {
		return "Untitled project"
	}
	return p.Name
}
