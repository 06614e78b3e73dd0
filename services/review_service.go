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
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/monitoring"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/l3montree-dev/launchpad/statemachine"
)

type reviewService struct {
	launchRepository shared.LaunchRepository
	profileService   shared.ProfileService
	authorizer       shared.Authorizer
	viewInvalidator  shared.ViewInvalidator
	stateMachine     statemachine.LaunchReviewStateMachine
}

var _ shared.ReviewService = &reviewService{}

func NewReviewService(
	launchRepository shared.LaunchRepository,
	profileService shared.ProfileService,
	authorizer shared.Authorizer,
	viewInvalidator shared.ViewInvalidator,
) *reviewService {
	return &reviewService{
		launchRepository: launchRepository,
		profileService:   profileService,
		authorizer:       authorizer,
		viewInvalidator:  viewInvalidator,
	}
}

func (s *reviewService) SetStatus(session shared.AuthSession, launchID uuid.UUID, status string, adminComment *string) (models.Launch, error) {
	actor, err := s.profileService.ResolveActor(session)
	if err != nil {
		return models.Launch{}, err
	}
	if err := authorize(s.authorizer, actor, shared.Resource{Object: shared.ObjectLaunch}, shared.ActionReview, "Only admins can update launch status."); err != nil {
		return models.Launch{}, err
	}

	launch, err := s.launchRepository.Read(launchID)
	if err != nil {
		return models.Launch{}, notFoundOrStoreError(err, "Launch not found.")
	}

	transition := s.stateMachine.Apply(&launch, status, adminComment)

	affected, err := s.launchRepository.UpdateReview(nil, launch.ID, launch.Status, launch.AdminComment)
	if err != nil {
		return models.Launch{}, shared.StoreError(err)
	}
	if affected == 0 {
		return models.Launch{}, shared.NotFoundError("Launch not found.", nil)
	}

	monitoring.LaunchReviewedAmount.WithLabelValues(string(transition.To)).Inc()
	s.viewInvalidator.Invalidate()
	slog.Info("launch reviewed", "launchID", launch.ID, "from", transition.From, "to", transition.To, "adminID", actor.UserID)

	return launch, nil
}
