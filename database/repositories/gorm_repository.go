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
	"log/slog"

	"github.com/l3montree-dev/launchpad/monitoring"
	"github.com/l3montree-dev/launchpad/utils"
	"gorm.io/gorm"
)

type GormRepository[ID comparable, T utils.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
	}
}

// Transaction commits when f returns nil. Otherwise the transaction is rolled
// back and the error of f is returned. A failed rollback is only reported, the
// caller always sees the original error.
func (g *GormRepository[ID, T]) Transaction(f func(tx *gorm.DB) error) (err error) {
	tx := g.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		}
	}()

	if err := f(tx); err != nil {
		rollback(tx)
		return err
	}
	return tx.Commit().Error
}

func rollback(tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil {
		monitoring.Alert("could not roll back transaction", err)
		return
	}
	slog.Debug("transaction rolled back")
}

func (g *GormRepository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return g.db
}

func (g *GormRepository[ID, T]) Create(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Create(t).Error
}

func (g *GormRepository[ID, T]) Read(id ID) (T, error) {
	var t T
	err := g.db.First(&t, "id = ?", id).Error

	return t, err
}

func (g *GormRepository[ID, T]) Delete(tx *gorm.DB, id ID) error {
	var t T
	return g.GetDB(tx).Delete(&t, "id = ?", id).Error
}
