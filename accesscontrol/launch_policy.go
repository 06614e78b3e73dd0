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
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/shared"
)

var _ shared.Authorizer = &launchPolicy{}

// The subject of a request carries the role stored on the profile, the object
// carries its owner. "relation:owner" policies match when both ids are equal,
// "role:*" policies match on the role alone.
const launchPolicyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.obj.Object == p.obj && r.act == p.act && ((p.sub == "role:admin" && r.sub.Role == "admin") || (p.sub == "role:member" && r.sub.UserID != "") || (p.sub == "relation:owner" && r.sub.UserID != "" && r.sub.UserID == r.obj.OwnerID))
`

var launchPolicies = [][]string{
	{"role:member", string(shared.ObjectProject), string(shared.ActionCreate)},
	{"role:member", string(shared.ObjectLaunch), string(shared.ActionRead)},
	{"relation:owner", string(shared.ObjectProject), string(shared.ActionRead)},
	{"relation:owner", string(shared.ObjectProject), string(shared.ActionUpdate)},
	{"relation:owner", string(shared.ObjectLaunch), string(shared.ActionUpdate)},
	{"relation:owner", string(shared.ObjectMember), string(shared.ActionRead)},
	{"role:admin", string(shared.ObjectLaunch), string(shared.ActionDelete)},
	{"role:admin", string(shared.ObjectLaunch), string(shared.ActionReview)},
	{"role:admin", string(shared.ObjectMember), string(shared.ActionRead)},
}

// casbin evaluates the matcher with reflection, the request values have to
// use plain strings.
type subject struct {
	UserID string
	Role   string
}

type object struct {
	Object  string
	OwnerID string
}

type launchPolicy struct {
	enforcer *casbin.SyncedEnforcer
}

func NewLaunchPolicy() (*launchPolicy, error) {
	m, err := model.NewModelFromString(launchPolicyModel)
	if err != nil {
		return nil, fmt.Errorf("could not parse policy model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("could not create enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(launchPolicies); err != nil {
		return nil, fmt.Errorf("could not load policies: %w", err)
	}

	return &launchPolicy{enforcer: enforcer}, nil
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func (p *launchPolicy) IsAllowed(actor shared.Actor, resource shared.Resource, action shared.Action) (bool, error) {
	return p.enforcer.Enforce(
		subject{UserID: idString(actor.UserID), Role: string(actor.Role)},
		object{Object: string(resource.Object), OwnerID: idString(resource.OwnerID)},
		string(action),
	)
}
