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
	"time"

	"github.com/l3montree-dev/launchpad/mocks"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestViewInvalidationWatcher(t *testing.T) {
	t.Run("should invalidate locally and publish the change", func(t *testing.T) {
		local := mocks.NewViewInvalidator(t)
		broker := mocks.NewPubSubBroker(t)

		ch := make(chan map[string]any)
		broker.On("Subscribe", shared.LaunchesChanged).Return((<-chan map[string]any)(ch), nil)
		broker.On("Publish", mock.Anything, mock.MatchedBy(func(m shared.PubSubMessage) bool {
			return m.GetChannel() == shared.LaunchesChanged
		})).Return(nil).Once()
		local.On("Invalidate").Return().Once()

		w, err := NewViewInvalidationWatcher(local, broker)
		require.NoError(t, err)
		defer w.Close()

		w.Invalidate()
	})

	t.Run("should still invalidate locally if publishing fails", func(t *testing.T) {
		local := mocks.NewViewInvalidator(t)
		broker := mocks.NewPubSubBroker(t)

		ch := make(chan map[string]any)
		broker.On("Subscribe", shared.LaunchesChanged).Return((<-chan map[string]any)(ch), nil)
		broker.On("Publish", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()
		local.On("Invalidate").Return().Once()

		w, err := NewViewInvalidationWatcher(local, broker)
		require.NoError(t, err)
		defer w.Close()

		w.Invalidate()
	})

	t.Run("should invalidate locally when another instance publishes", func(t *testing.T) {
		local := mocks.NewViewInvalidator(t)
		broker := mocks.NewPubSubBroker(t)

		ch := make(chan map[string]any)
		broker.On("Subscribe", shared.LaunchesChanged).Return((<-chan map[string]any)(ch), nil)

		invalidated := make(chan struct{})
		local.On("Invalidate").Run(func(args mock.Arguments) { close(invalidated) }).Return().Once()

		w, err := NewViewInvalidationWatcher(local, broker)
		require.NoError(t, err)
		defer w.Close()

		ch <- map[string]any{"action": "invalidate"}

		select {
		case <-invalidated:
		case <-time.After(time.Second):
			t.Fatal("view cache was not invalidated")
		}
	})

	t.Run("should return the subscribe error", func(t *testing.T) {
		broker := mocks.NewPubSubBroker(t)
		broker.On("Subscribe", shared.LaunchesChanged).Return(nil, errors.New("listen failed"))

		_, err := NewViewInvalidationWatcher(mocks.NewViewInvalidator(t), broker)
		assert.EqualError(t, err, "listen failed")
	})
}
