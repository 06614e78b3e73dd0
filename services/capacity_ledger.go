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
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/monitoring"
	"github.com/l3montree-dev/launchpad/shared"
)

// capacityLedger enforces the per day launch limit. The count is derived
// from the launches table on every call, there is no counter to drift.
type capacityLedger struct {
	launchRepository shared.LaunchRepository
	dailyCap         int
}

var _ shared.CapacityLedger = &capacityLedger{}

func NewCapacityLedger(launchRepository shared.LaunchRepository, cfg config.Config) *capacityLedger {
	return &capacityLedger{
		launchRepository: launchRepository,
		dailyCap:         cfg.DailyCap(),
	}
}

func (l *capacityLedger) DailyCap() int {
	return l.dailyCap
}

// TryReserve locks launchDate for the rest of tx and fails if the date is
// already at capacity. The caller writes the launch row inside the same tx, so
// the lock is only released once the new row is visible to the next booking.
func (l *capacityLedger) TryReserve(tx shared.DB, launchDate string, excludeLaunchID *uuid.UUID) error {
	if err := l.launchRepository.LockDate(tx, launchDate); err != nil {
		return shared.StoreError(err)
	}

	count, err := l.launchRepository.CountByDate(tx, launchDate, excludeLaunchID)
	if err != nil {
		return shared.StoreError(err)
	}

	if count >= int64(l.dailyCap) {
		monitoring.CapacityRejectedAmount.Inc()
		slog.Info("launch date is full", "launchDate", launchDate, "count", count, "cap", l.dailyCap)
		return shared.CapacityExceededError(fmt.Sprintf("This date is full. Limit is %d launches per day.", l.dailyCap), l.dailyCap)
	}
	return nil
}
