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

	"github.com/l3montree-dev/launchpad/shared"
	"gorm.io/gorm"
)

// asLaunchError keeps domain errors and classifies everything else as a store error.
func asLaunchError(err error) error {
	if err == nil {
		return nil
	}
	var le *shared.LaunchError
	if errors.As(err, &le) {
		return le
	}
	return shared.StoreError(err)
}

func notFoundOrStoreError(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NotFoundError(message, err)
	}
	return shared.StoreError(err)
}

func authorize(authorizer shared.Authorizer, actor shared.Actor, resource shared.Resource, action shared.Action, deniedMessage string) error {
	allowed, err := authorizer.IsAllowed(actor, resource, action)
	if err != nil {
		return shared.StoreError(err)
	}
	if !allowed {
		return shared.ForbiddenError(deniedMessage)
	}
	return nil
}
