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
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/l3montree-dev/launchpad/transformer"
	"github.com/l3montree-dev/launchpad/utils"
	"gorm.io/gorm"
)

type profileService struct {
	profileRepository shared.ProfileRepository
}

var _ shared.ProfileService = &profileService{}

func NewProfileService(profileRepository shared.ProfileRepository) *profileService {
	return &profileService{
		profileRepository: profileRepository,
	}
}

// displayNameFromSession prefers the display name of the identity, then the
// local part of the email address.
func displayNameFromSession(session shared.AuthSession) string {
	if name := utils.NormalizeName(session.GetDisplayName()); name != "" {
		return utils.Truncate(name, models.DisplayNameMaxLength)
	}
	emailPrefix, _, _ := strings.Cut(session.GetEmail(), "@")
	if emailPrefix = strings.TrimSpace(emailPrefix); emailPrefix != "" {
		return utils.Truncate(emailPrefix, models.DisplayNameMaxLength)
	}
	return "Member"
}

func (s *profileService) EnsureProfile(tx shared.DB, session shared.AuthSession) (models.Profile, error) {
	userID, err := shared.SessionUserID(session)
	if err != nil {
		return models.Profile{}, err
	}

	profile, err := s.profileRepository.FindByID(tx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, shared.StoreErrorf(err, "Could not load profile: ")
	}

	if existing := strings.TrimSpace(profile.DisplayName); err == nil && existing != "" {
		profile.DisplayName = utils.Truncate(existing, models.DisplayNameMaxLength)
	} else {
		profile.DisplayName = displayNameFromSession(session)
	}

	profile.ID = userID
	profile.Email = strings.TrimSpace(session.GetEmail())
	if profile.Email == "" {
		profile.Email = fmt.Sprintf("%s@local.invalid", userID)
	}
	if profile.Role == "" {
		profile.Role = models.ProfileRoleMember
	}

	if err := s.profileRepository.Upsert(tx, &profile); err != nil {
		return models.Profile{}, shared.StoreErrorf(err, "Could not load profile: ")
	}
	return profile, nil
}

func (s *profileService) Read(session shared.AuthSession) (models.Profile, error) {
	userID, err := shared.SessionUserID(session)
	if err != nil {
		return models.Profile{}, err
	}
	profile, err := s.profileRepository.FindByID(nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.EnsureProfile(nil, session)
		}
		return models.Profile{}, shared.StoreError(err)
	}
	return profile, nil
}

// ResolveActor reads the role of the signed in member. A member without a
// profile acts with the member role.
func (s *profileService) ResolveActor(session shared.AuthSession) (shared.Actor, error) {
	userID, err := shared.SessionUserID(session)
	if err != nil {
		return shared.Actor{}, err
	}
	profile, err := s.profileRepository.FindByID(nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.Actor{UserID: userID, Role: models.ProfileRoleMember}, nil
		}
		return shared.Actor{}, shared.StoreError(err)
	}
	return shared.Actor{UserID: userID, Role: profile.Role}, nil
}

func (s *profileService) UpdateDisplayName(session shared.AuthSession, displayName string) (models.Profile, error) {
	displayName = utils.NormalizeName(displayName)
	if n := utf8.RuneCountInString(displayName); n < models.DisplayNameMinLength || n > models.DisplayNameMaxLength {
		return models.Profile{}, shared.ValidationError(fmt.Sprintf("Display name must be %d-%d characters.", models.DisplayNameMinLength, models.DisplayNameMaxLength))
	}

	var profile models.Profile
	err := s.profileRepository.Transaction(func(tx shared.DB) error {
		var err error
		profile, err = s.EnsureProfile(tx, session)
		if err != nil {
			return err
		}
		if err := s.profileRepository.UpdateDisplayName(tx, profile.ID, displayName); err != nil {
			return shared.StoreError(err)
		}
		profile.DisplayName = displayName
		return nil
	})
	if err != nil {
		return models.Profile{}, asLaunchError(err)
	}
	return profile, nil
}

func (s *profileService) UpdateContact(session shared.AuthSession, req dtos.ProfileContactRequest) (models.Profile, error) {
	if _, err := shared.SessionUserID(session); err != nil {
		return models.Profile{}, err
	}

	var contact models.Profile
	transformer.ApplyProfileContactRequest(req, &contact)
	if contact.Timezone != nil {
		if err := shared.V.Var(*contact.Timezone, "timezone"); err != nil {
			return models.Profile{}, &shared.LaunchError{Kind: shared.KindInvalidTimeZone, Message: "Timezone is invalid.", Err: err}
		}
	}

	var profile models.Profile
	err := s.profileRepository.Transaction(func(tx shared.DB) error {
		var err error
		profile, err = s.EnsureProfile(tx, session)
		if err != nil {
			return err
		}
		transformer.ApplyProfileContactRequest(req, &profile)
		if err := s.profileRepository.UpdateContact(tx, &profile); err != nil {
			return shared.StoreError(err)
		}
		return nil
	})
	if err != nil {
		return models.Profile{}, asLaunchError(err)
	}
	return profile, nil
}

func (s *profileService) SetRole(userID uuid.UUID, role models.ProfileRole) error {
	if role != models.ProfileRoleAdmin && role != models.ProfileRoleMember {
		return shared.ValidationError(fmt.Sprintf("Unknown role %q.", role))
	}
	affected, err := s.profileRepository.SetRole(nil, userID, role)
	if err != nil {
		return shared.StoreError(err)
	}
	if affected == 0 {
		return shared.NotFoundError("Profile not found.", nil)
	}
	slog.Info("profile role changed", "userID", userID, "role", role)
	return nil
}
