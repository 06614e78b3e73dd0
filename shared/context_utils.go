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
	"fmt"

	"github.com/google/uuid"
)

// AuthSession is the identity attached to a request.
type AuthSession interface {
	GetUserID() string
	GetEmail() string
	GetDisplayName() string
}

func GetSession(ctx Context) AuthSession {
	session, ok := ctx.Get("session").(AuthSession)
	if !ok {
		return nil
	}
	return session
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

// SessionUserID returns the parsed user id or an unauthenticated error.
func SessionUserID(session AuthSession) (uuid.UUID, error) {
	if session == nil || session.GetUserID() == "" {
		return uuid.Nil, UnauthenticatedError
	}
	id, err := uuid.Parse(session.GetUserID())
	if err != nil {
		return uuid.Nil, UnauthenticatedError
	}
	return id, nil
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	raw := SanitizeParam(GetParam(ctx, param))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", param, err)
	}
	return id, nil
}
