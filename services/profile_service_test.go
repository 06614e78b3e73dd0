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
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/accesscontrol"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/mocks"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/l3montree-dev/launchpad/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func runProfileTransaction(profileRepository *mocks.ProfileRepository) {
	profileRepository.On("Transaction", mock.Anything).Return(func(fn func(tx shared.DB) error) error {
		return fn(nil)
	})
}

func TestEnsureProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("should create a profile from the session", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		s := NewProfileService(profileRepository)
		session := accesscontrol.NewSession(userID.String(), "ada@example.com", "  Ada Lovelace ")

		profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{}, gorm.ErrRecordNotFound)
		profileRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		profile, err := s.EnsureProfile(nil, session)
		assert.NoError(t, err)
		assert.Equal(t, userID, profile.ID)
		assert.Equal(t, "Ada Lovelace", profile.DisplayName)
		assert.Equal(t, models.ProfileRoleMember, profile.Role)
	})

	t.Run("should keep the stored display name and role", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		s := NewProfileService(profileRepository)
		session := accesscontrol.NewSession(userID.String(), "ada@example.com", "Ada")

		profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{ID: userID, DisplayName: "Countess", Role: models.ProfileRoleAdmin}, nil)
		profileRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		profile, err := s.EnsureProfile(nil, session)
		assert.NoError(t, err)
		assert.Equal(t, "Countess", profile.DisplayName)
		assert.Equal(t, models.ProfileRoleAdmin, profile.Role)
	})

	t.Run("should fall back to the email prefix and a placeholder email", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		s := NewProfileService(profileRepository)

		profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{}, gorm.ErrRecordNotFound)
		profileRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		profile, err := s.EnsureProfile(nil, accesscontrol.NewSession(userID.String(), "grace@example.com", ""))
		assert.NoError(t, err)
		assert.Equal(t, "grace", profile.DisplayName)

		profile, err = s.EnsureProfile(nil, accesscontrol.NewSession(userID.String(), "", ""))
		assert.NoError(t, err)
		assert.Equal(t, "Member", profile.DisplayName)
		assert.Equal(t, userID.String()+"@local.invalid", profile.Email)
	})

	t.Run("should truncate long names", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		s := NewProfileService(profileRepository)

		profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{}, gorm.ErrRecordNotFound)
		profileRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil)

		profile, err := s.EnsureProfile(nil, accesscontrol.NewSession(userID.String(), "", strings.Repeat("ä", 100)))
		assert.NoError(t, err)
		assert.Equal(t, strings.Repeat("ä", models.DisplayNameMaxLength), profile.DisplayName)
	})

	t.Run("should wrap store failures", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		s := NewProfileService(profileRepository)

		profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{}, errors.New("connection reset"))

		_, err := s.EnsureProfile(nil, accesscontrol.NewSession(userID.String(), "", ""))
		assert.ErrorIs(t, err, shared.ErrStore)
		assert.Equal(t, "Could not load profile: connection reset", err.Error())
	})

	t.Run("should require a session", func(t *testing.T) {
		s := NewProfileService(mocks.NewProfileRepository(t))

		_, err := s.EnsureProfile(nil, nil)
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})
}

func TestResolveActor(t *testing.T) {
	userID := uuid.New()
	session := accesscontrol.NewSession(userID.String(), "", "")

	t.Run("should treat members without profile as members", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{}, gorm.ErrRecordNotFound)

		actor, err := NewProfileService(profileRepository).ResolveActor(session)
		assert.NoError(t, err)
		assert.Equal(t, models.ProfileRoleMember, actor.Role)
	})

	t.Run("should use the stored role", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{ID: userID, Role: models.ProfileRoleAdmin}, nil)

		actor, err := NewProfileService(profileRepository).ResolveActor(session)
		assert.NoError(t, err)
		assert.Equal(t, userID, actor.UserID)
		assert.True(t, actor.Role == models.ProfileRoleAdmin)
	})
}

func TestUpdateDisplayName(t *testing.T) {
	userID := uuid.New()
	session := accesscontrol.NewSession(userID.String(), "ada@example.com", "Ada")

	t.Run("should reject names outside the allowed length", func(t *testing.T) {
		s := NewProfileService(mocks.NewProfileRepository(t))

		_, err := s.UpdateDisplayName(session, " a ")
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Equal(t, "Display name must be 2-80 characters.", err.Error())

		_, err = s.UpdateDisplayName(session, strings.Repeat("a", 81))
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("should store the trimmed name", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		s := NewProfileService(profileRepository)

		runProfileTransaction(profileRepository)
		profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{ID: userID, DisplayName: "Ada"}, nil)
		profileRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		profileRepository.On("UpdateDisplayName", mock.Anything, userID, "Ada L.").Return(nil)

		profile, err := s.UpdateDisplayName(session, "  Ada L. ")
		assert.NoError(t, err)
		assert.Equal(t, "Ada L.", profile.DisplayName)
	})
}

func TestUpdateContact(t *testing.T) {
	userID := uuid.New()
	session := accesscontrol.NewSession(userID.String(), "ada@example.com", "Ada")

	t.Run("should reject unknown timezones", func(t *testing.T) {
		s := NewProfileService(mocks.NewProfileRepository(t))

		_, err := s.UpdateContact(session, dtos.ProfileContactRequest{Timezone: utils.Ptr("Atlantis/Central")})
		assert.ErrorIs(t, err, shared.ErrInvalidTimeZone)
	})

	t.Run("should store blank fields as NULL", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		s := NewProfileService(profileRepository)

		runProfileTransaction(profileRepository)
		profileRepository.On("FindByID", mock.Anything, userID).Return(models.Profile{ID: userID, DisplayName: "Ada", Phone: utils.Ptr("123")}, nil)
		profileRepository.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		profileRepository.On("UpdateContact", mock.Anything, mock.MatchedBy(func(p *models.Profile) bool {
			return p.Phone == nil && p.Timezone != nil && *p.Timezone == "Europe/Paris"
		})).Return(nil)

		profile, err := s.UpdateContact(session, dtos.ProfileContactRequest{Phone: utils.Ptr("  "), Timezone: utils.Ptr("Europe/Paris")})
		assert.NoError(t, err)
		assert.Nil(t, profile.Phone)
	})
}

func TestSetRole(t *testing.T) {
	userID := uuid.New()

	t.Run("should reject unknown roles", func(t *testing.T) {
		s := NewProfileService(mocks.NewProfileRepository(t))
		assert.ErrorIs(t, s.SetRole(userID, "owner"), shared.ErrValidation)
	})

	t.Run("should report unknown profiles", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		profileRepository.On("SetRole", mock.Anything, userID, models.ProfileRoleAdmin).Return(int64(0), nil)

		err := NewProfileService(profileRepository).SetRole(userID, models.ProfileRoleAdmin)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should grant the role", func(t *testing.T) {
		profileRepository := mocks.NewProfileRepository(t)
		profileRepository.On("SetRole", mock.Anything, userID, models.ProfileRoleAdmin).Return(int64(1), nil)

		assert.NoError(t, NewProfileService(profileRepository).SetRole(userID, models.ProfileRoleAdmin))
	})
}
