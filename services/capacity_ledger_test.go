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
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/mocks"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCapacityLedgerTryReserve(t *testing.T) {
	launchDate := "2025-06-20"

	t.Run("should reject a date that reached the cap", func(t *testing.T) {
		launchRepository := mocks.NewLaunchRepository(t)
		ledger := NewCapacityLedger(launchRepository, config.Config{LaunchesPerDay: "2"})

		launchRepository.On("LockDate", mock.Anything, launchDate).Return(nil)
		launchRepository.On("CountByDate", mock.Anything, launchDate, (*uuid.UUID)(nil)).Return(int64(2), nil)

		err := ledger.TryReserve(nil, launchDate, nil)
		assert.ErrorIs(t, err, shared.ErrCapacityExceeded)

		var le *shared.LaunchError
		assert.True(t, errors.As(err, &le))
		assert.Equal(t, 2, le.Cap)
		assert.Equal(t, "This date is full. Limit is 2 launches per day.", le.Message)
	})

	t.Run("should accept a date below the cap", func(t *testing.T) {
		launchRepository := mocks.NewLaunchRepository(t)
		ledger := NewCapacityLedger(launchRepository, config.Config{LaunchesPerDay: "2"})

		launchRepository.On("LockDate", mock.Anything, launchDate).Return(nil)
		launchRepository.On("CountByDate", mock.Anything, launchDate, (*uuid.UUID)(nil)).Return(int64(1), nil)

		assert.NoError(t, ledger.TryReserve(nil, launchDate, nil))
	})

	t.Run("should not count the launch that is being moved", func(t *testing.T) {
		launchRepository := mocks.NewLaunchRepository(t)
		ledger := NewCapacityLedger(launchRepository, config.Config{LaunchesPerDay: "2"})
		launchID := uuid.New()

		launchRepository.On("LockDate", mock.Anything, launchDate).Return(nil)
		launchRepository.On("CountByDate", mock.Anything, launchDate, &launchID).Return(int64(1), nil)

		assert.NoError(t, ledger.TryReserve(nil, launchDate, &launchID))
		launchRepository.AssertCalled(t, "CountByDate", mock.Anything, launchDate, &launchID)
	})

	t.Run("should pass lock failures through as store errors", func(t *testing.T) {
		launchRepository := mocks.NewLaunchRepository(t)
		ledger := NewCapacityLedger(launchRepository, config.Config{LaunchesPerDay: "2"})

		launchRepository.On("LockDate", mock.Anything, launchDate).Return(errors.New("deadlock detected"))

		err := ledger.TryReserve(nil, launchDate, nil)
		assert.ErrorIs(t, err, shared.ErrStore)
		assert.Equal(t, "deadlock detected", err.Error())
		launchRepository.AssertNotCalled(t, "CountByDate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should pass count failures through as store errors", func(t *testing.T) {
		launchRepository := mocks.NewLaunchRepository(t)
		ledger := NewCapacityLedger(launchRepository, config.Config{LaunchesPerDay: "2"})

		launchRepository.On("LockDate", mock.Anything, launchDate).Return(nil)
		launchRepository.On("CountByDate", mock.Anything, launchDate, (*uuid.UUID)(nil)).Return(int64(0), errors.New("connection reset"))

		err := ledger.TryReserve(nil, launchDate, nil)
		assert.ErrorIs(t, err, shared.ErrStore)
		assert.Equal(t, "connection reset", err.Error())
	})

	t.Run("should clamp a configured cap above the maximum", func(t *testing.T) {
		launchRepository := mocks.NewLaunchRepository(t)
		ledger := NewCapacityLedger(launchRepository, config.Config{LaunchesPerDay: "5"})
		assert.Equal(t, 2, ledger.DailyCap())

		launchRepository.On("LockDate", mock.Anything, launchDate).Return(nil)
		launchRepository.On("CountByDate", mock.Anything, launchDate, (*uuid.UUID)(nil)).Return(int64(2), nil)

		var le *shared.LaunchError
		assert.True(t, errors.As(ledger.TryReserve(nil, launchDate, nil), &le))
		assert.Equal(t, 2, le.Cap)
	})
}
