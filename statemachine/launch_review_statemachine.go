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

package statemachine

import (
	"log/slog"

	"github.com/l3montree-dev/launchpad/database/models"
)

// LaunchReviewStateMachine decides the review status of a launch. Every
// status is reachable from every other one, a passed launch can be sent back
// into review.
type LaunchReviewStateMachine struct{}

type ReviewTransition struct {
	From         models.LaunchStatus
	To           models.LaunchStatus
	AdminComment *string
}

func (t ReviewTransition) Changed() bool {
	return t.From != t.To
}

// CoerceStatus maps anything outside the known statuses to in_review.
func CoerceStatus(raw string) models.LaunchStatus {
	status := models.LaunchStatus(raw)
	if !status.IsValid() {
		return models.LaunchStatusInReview
	}
	return status
}

// Apply moves the launch to the requested status and overwrites the admin
// comment with the text as given. A nil or empty comment clears it.
func (LaunchReviewStateMachine) Apply(launch *models.Launch, rawStatus string, adminComment *string) ReviewTransition {
	if adminComment != nil && *adminComment == "" {
		adminComment = nil
	}
	to := CoerceStatus(rawStatus)
	if string(to) != rawStatus {
		slog.Warn("unknown launch status, falling back to in_review", "status", rawStatus, "launchID", launch.ID)
	}

	transition := ReviewTransition{
		From:         launch.Status,
		To:           to,
		AdminComment: adminComment,
	}
	launch.Status = to
	launch.AdminComment = adminComment
	return transition
}

