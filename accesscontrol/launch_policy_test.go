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

package accesscontrol

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/stretchr/testify/assert"
)

func TestLaunchPolicy(t *testing.T) {
	policy, err := NewLaunchPolicy()
	assert.NoError(t, err)

	owner := shared.Actor{UserID: uuid.New(), Role: models.ProfileRoleMember}
	stranger := shared.Actor{UserID: uuid.New(), Role: models.ProfileRoleMember}
	admin := shared.Actor{UserID: uuid.New(), Role: models.ProfileRoleAdmin}
	anonymous := shared.Actor{}

	ownedProject := shared.Resource{Object: shared.ObjectProject, OwnerID: owner.UserID}
	ownedLaunch := shared.Resource{Object: shared.ObjectLaunch, OwnerID: owner.UserID}

	tests := []struct {
		name     string
		actor    shared.Actor
		resource shared.Resource
		action   shared.Action
		allowed  bool
	}{
		{"owner should update own project", owner, ownedProject, shared.ActionUpdate, true},
		{"owner should update own launch", owner, ownedLaunch, shared.ActionUpdate, true},
		{"stranger should not update foreign project", stranger, ownedProject, shared.ActionUpdate, false},
		{"admin should not edit foreign project fields", admin, ownedProject, shared.ActionUpdate, false},
		{"admin should delete any launch", admin, ownedLaunch, shared.ActionDelete, true},
		{"owner should not delete own launch", owner, ownedLaunch, shared.ActionDelete, false},
		{"admin should review launches", admin, ownedLaunch, shared.ActionReview, true},
		{"member should not review launches", owner, ownedLaunch, shared.ActionReview, false},
		{"member should create projects", stranger, shared.Resource{Object: shared.ObjectProject}, shared.ActionCreate, true},
		{"anonymous should not create projects", anonymous, shared.Resource{Object: shared.ObjectProject}, shared.ActionCreate, false},
		{"anonymous should not match an ownerless resource", anonymous, shared.Resource{Object: shared.ObjectProject}, shared.ActionUpdate, false},
		{"admin should read member launches", admin, shared.Resource{Object: shared.ObjectMember, OwnerID: owner.UserID}, shared.ActionRead, true},
		{"member should not read other member launches", stranger, shared.Resource{Object: shared.ObjectMember, OwnerID: owner.UserID}, shared.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := policy.IsAllowed(tt.actor, tt.resource, tt.action)
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestSession(t *testing.T) {
	s := NewSession("id", "a@b.c", "Ada")
	assert.Equal(t, "id", s.GetUserID())
	assert.Equal(t, "a@b.c", s.GetEmail())
	assert.Equal(t, "Ada", s.GetDisplayName())
	assert.Equal(t, "", NoSession.GetUserID())
}
