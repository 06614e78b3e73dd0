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
)

type projectRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (r *projectRepository) ReadWithLaunch(projectID uuid.UUID) (models.Project, error) {
	var project models.Project
	err := r.db.Preload("Launch").First(&project, "id = ?", projectID).Error
	return project, err
}

// UpdateFields writes the member editable columns. Ownership never changes.
func (r *projectRepository) UpdateFields(tx *gorm.DB, project *models.Project) error {
	return r.GetDB(tx).Model(project).
		Select("name", "tagline", "product_hunt_url", "ask_from_founder", "short_explanation", "updated_at").
		Updates(project).Error
}
