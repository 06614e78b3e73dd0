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
)

type ProfileRole string

const (
	ProfileRoleMember ProfileRole = "member"
	ProfileRoleAdmin  ProfileRole = "admin"
)

const (
	DisplayNameMinLength = 2
	DisplayNameMaxLength = 80
)

// Profile is keyed by the identity id of the member. There is no default for
// the id, the identity provider owns it.
type Profile struct {
	ID          uuid.UUID   `json:"id" gorm:"primarykey;type:uuid"`
	Email       string      `json:"email" gorm:"type:text;not null"`
	DisplayName string      `json:"displayName" gorm:"type:text;not null"`
	Role        ProfileRole `json:"role" gorm:"type:text;not null;default:member"`

	Phone       *string `json:"phone" gorm:"type:text"`
	TwitterURL  *string `json:"twitterUrl" gorm:"type:text"`
	LinkedinURL *string `json:"linkedinUrl" gorm:"type:text"`
	GithubURL   *string `json:"githubUrl" gorm:"type:text"`
	Timezone    *string `json:"timezone" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p Profile) TableName() string {
	return "profiles"
}

func (p Profile) IsAdmin() bool {
	return p.Role == ProfileRoleAdmin
}
