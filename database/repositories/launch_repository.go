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

type launchRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Launch, *gorm.DB]
}

func NewLaunchRepository(db *gorm.DB) *launchRepository {
	return &launchRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Launch](db),
	}
}

func (r *launchRepository) ReadByProjectID(tx *gorm.DB, projectID uuid.UUID) (models.Launch, error) {
	var launch models.Launch
	err := r.GetDB(tx).First(&launch, "project_id = ?", projectID).Error
	return launch, err
}

// LockDate takes a transaction scoped advisory lock keyed by the date. Two
// transactions booking the same date queue up behind each other, different
// dates do not contend. Outside of a transaction the lock is released at once.
func (r *launchRepository) LockDate(tx *gorm.DB, launchDate string) error {
	return r.GetDB(tx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "launch_date:"+launchDate).Error
}

func (r *launchRepository) CountByDate(tx *gorm.DB, launchDate string, excludeLaunchID *uuid.UUID) (int64, error) {
	date, err := models.ToLaunchDate(launchDate)
	if err != nil {
		return 0, err
	}

	var count int64
	q := r.GetDB(tx).Model(&models.Launch{}).Where("launch_date = ?", date)
	if excludeLaunchID != nil {
		q = q.Where("id <> ?", *excludeLaunchID)
	}
	err = q.Count(&count).Error
	return count, err
}

func (r *launchRepository) UpdateSchedule(tx *gorm.DB, launchID uuid.UUID, launchDate string, timezone string) error {
	date, err := models.ToLaunchDate(launchDate)
	if err != nil {
		return err
	}
	return r.GetDB(tx).Model(&models.Launch{}).Where("id = ?", launchID).Updates(map[string]any{
		"launch_date": date,
		"timezone":    timezone,
	}).Error
}

func (r *launchRepository) UpdateReview(tx *gorm.DB, launchID uuid.UUID, status models.LaunchStatus, adminComment *string) (int64, error) {
	res := r.GetDB(tx).Model(&models.Launch{}).Where("id = ?", launchID).Updates(map[string]any{
		"status":        status,
		"admin_comment": adminComment,
	})
	return res.RowsAffected, res.Error
}

func (r *launchRepository) DeleteByID(tx *gorm.DB, launchID uuid.UUID) (int64, error) {
	res := r.GetDB(tx).Delete(&models.Launch{}, "id = ?", launchID)
	return res.RowsAffected, res.Error
}

func (r *launchRepository) withRelations() *gorm.DB {
	return r.db.Preload("Project").Preload("Creator")
}

// ListFrom returns every launch on or after fromDate, earliest first.
func (r *launchRepository) ListFrom(fromDate string) ([]models.Launch, error) {
	from, err := models.ToLaunchDate(fromDate)
	if err != nil {
		return nil, err
	}
	var launches []models.Launch
	err = r.withRelations().
		Where("launch_date >= ?", from).
		Order("launch_date ASC").Order("created_at ASC").
		Find(&launches).Error
	return launches, err
}

// ListBetween returns the launches of the closed interval [fromDate, toDate].
func (r *launchRepository) ListBetween(fromDate, toDate string) ([]models.Launch, error) {
	from, err := models.ToLaunchDate(fromDate)
	if err != nil {
		return nil, err
	}
	to, err := models.ToLaunchDate(toDate)
	if err != nil {
		return nil, err
	}
	var launches []models.Launch
	err = r.withRelations().
		Where("launch_date BETWEEN ? AND ?", from, to).
		Order("launch_date ASC").Order("created_at ASC").
		Find(&launches).Error
	return launches, err
}

func (r *launchRepository) ListByCreator(creatorID uuid.UUID, newestFirst bool) ([]models.Launch, error) {
	order := "launch_date ASC"
	if newestFirst {
		order = "launch_date DESC"
	}
	var launches []models.Launch
	err := r.withRelations().
		Where("created_by = ?", creatorID).
		Order(order).
		Find(&launches).Error
	return launches, err
}
