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

	"github.com/l3montree-dev/launchpad/calendar"
	"github.com/l3montree-dev/launchpad/shared"
	"go.uber.org/fx"
)

var ServiceModule = fx.Options(
	fx.Provide(func() calendar.Clock { return calendar.SystemClock{} }),
	fx.Provide(fx.Annotate(NewProfileService, fx.As(new(shared.ProfileService)))),
	fx.Provide(fx.Annotate(NewCapacityLedger, fx.As(new(shared.CapacityLedger)))),
	fx.Provide(fx.Annotate(NewLaunchViewService, fx.As(new(shared.LaunchViewService)))),
	fx.Provide(newViewInvalidator),
	fx.Provide(fx.Annotate(NewLaunchService, fx.As(new(shared.LaunchService)))),
	fx.Provide(fx.Annotate(NewReviewService, fx.As(new(shared.ReviewService)))),
)

type viewInvalidatorParams struct {
	fx.In

	Lifecycle         fx.Lifecycle
	LaunchViewService shared.LaunchViewService
	Broker            shared.PubSubBroker `optional:"true"`
}

// newViewInvalidator only broadcasts when a broker is provided.
func newViewInvalidator(p viewInvalidatorParams) (shared.ViewInvalidator, error) {
	if p.Broker == nil {
		return p.LaunchViewService, nil
	}
	watcher, err := NewViewInvalidationWatcher(p.LaunchViewService, p.Broker)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			watcher.Close()
			return nil
		},
	})
	return watcher, nil
}
