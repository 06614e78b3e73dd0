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
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/launchpad/shared"
)

type launchesChangedMessage struct{}

func (launchesChangedMessage) GetChannel() shared.PubSubChannel {
	return shared.LaunchesChanged
}

func (launchesChangedMessage) GetPayload() map[string]any {
	return map[string]any{"action": "invalidate"}
}

// viewInvalidationWatcher drops the local view cache and tells every other
// instance to do the same.
type viewInvalidationWatcher struct {
	local  shared.ViewInvalidator
	broker shared.PubSubBroker
	cancel context.CancelFunc
	done   chan struct{}
}

var _ shared.ViewInvalidator = &viewInvalidationWatcher{}

func NewViewInvalidationWatcher(local shared.ViewInvalidator, broker shared.PubSubBroker) (*viewInvalidationWatcher, error) {
	ch, err := broker.Subscribe(shared.LaunchesChanged)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &viewInvalidationWatcher{
		local:  local,
		broker: broker,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go w.listen(ctx, ch)
	return w, nil
}

func (w *viewInvalidationWatcher) listen(ctx context.Context, ch <-chan map[string]any) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			slog.Debug("remote launch change, invalidating views")
			w.local.Invalidate()
		}
	}
}

func (w *viewInvalidationWatcher) Invalidate() {
	w.local.Invalidate()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	// a failed publish only delays other instances until their cache ttl expires
	if err := w.broker.Publish(ctx, launchesChangedMessage{}); err != nil {
		slog.Warn("could not publish launch change", "err", err)
	}
}

func (w *viewInvalidationWatcher) Close() {
	w.cancel()
	<-w.done
}
