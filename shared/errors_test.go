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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchErrorIs(t *testing.T) {
	t.Run("should match the sentinel of the same kind regardless of the message", func(t *testing.T) {
		err := ForbiddenError("Only admins can update launch status.")
		assert.ErrorIs(t, err, ErrForbidden)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("should match through wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", CapacityExceededError("That date is full. Limit is 2 launches per day.", 2))
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		var le *LaunchError
		assert.True(t, errors.As(err, &le))
		assert.Equal(t, 2, le.Cap)
	})

	t.Run("should not match two errors with messages", func(t *testing.T) {
		assert.NotErrorIs(t, ValidationError("a"), ValidationError("a"))
	})

	t.Run("should unwrap the cause of a store error", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := StoreErrorf(cause, "Could not load profile: ")
		assert.Equal(t, "Could not load profile: connection reset", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrStore)
	})
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFoundError("Launch not found.", nil)))
	assert.Equal(t, KindUnauthenticated, KindOf(UnauthenticatedError))
	assert.Equal(t, KindStoreError, KindOf(errors.New("boom")))
}
