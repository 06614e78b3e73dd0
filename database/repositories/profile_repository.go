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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Profile, *gorm.DB]
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Profile](db),
	}
}

func (r *profileRepository) FindByID(tx *gorm.DB, id uuid.UUID) (models.Profile, error) {
	var profile models.Profile
	err := r.GetDB(tx).First(&profile, "id = ?", id).Error
	return profile, err
}

func (r *profileRepository) Upsert(tx *gorm.DB, profile *models.Profile) error {
	return r.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "display_name", "updated_at"}),
	}).Create(profile).Error
}

func (r *profileRepository) UpdateDisplayName(tx *gorm.DB, id uuid.UUID, displayName string) error {
	return r.GetDB(tx).Model(&models.Profile{}).Where("id = ?", id).Update("display_name", displayName).Error
}

func (r *profileRepository) UpdateContact(tx *gorm.DB, profile *models.Profile) error {
	return r.GetDB(tx).Model(profile).
		Select("phone", "twitter_url", "linkedin_url", "github_url", "timezone", "updated_at").
		Updates(profile).Error
}

func (r *profileRepository) SetRole(tx *gorm.DB, id uuid.UUID, role models.ProfileRole) (int64, error) {
	res := r.GetDB(tx).Model(&models.Profile{}).Where("id = ?", id).Update("role", role)
	return res.RowsAffected, res.Error
}
