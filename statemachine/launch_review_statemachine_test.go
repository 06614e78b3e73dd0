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
	"testing"

	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/utils"
	"github.com/stretchr/testify/assert"
)

func TestCoerceStatus(t *testing.T) {
	t.Run("should keep known statuses", func(t *testing.T) {
		assert.Equal(t, models.LaunchStatusPassed, CoerceStatus("passed"))
		assert.Equal(t, models.LaunchStatusNeedEditing, CoerceStatus("need_editing"))
		assert.Equal(t, models.LaunchStatusInReview, CoerceStatus("in_review"))
	})
	t.Run("should fall back to in_review for unknown statuses", func(t *testing.T) {
		assert.Equal(t, models.LaunchStatusInReview, CoerceStatus("approved"))
		assert.Equal(t, models.LaunchStatusInReview, CoerceStatus(""))
	})
}

func TestApply(t *testing.T) {
	sm := LaunchReviewStateMachine{}

	t.Run("should correctly move a launch to passed", func(t *testing.T) {
		launch := models.Launch{Status: models.LaunchStatusInReview}
		transition := sm.Apply(&launch, "passed", utils.Ptr("looks great"))

		assert.Equal(t, models.LaunchStatusPassed, launch.Status)
		assert.Equal(t, "looks great", *launch.AdminComment)
		assert.True(t, transition.Changed())
	})

	t.Run("should allow sending a passed launch back into review", func(t *testing.T) {
		launch := models.Launch{Status: models.LaunchStatusPassed}
		transition := sm.Apply(&launch, "need_editing", nil)

		assert.Equal(t, models.LaunchStatusPassed, transition.From)
		assert.Equal(t, models.LaunchStatusNeedEditing, launch.Status)
	})

	t.Run("should clear the comment when none is given", func(t *testing.T) {
		launch := models.Launch{Status: models.LaunchStatusNeedEditing, AdminComment: utils.Ptr("fix the tagline")}
		transition := sm.Apply(&launch, "bogus", nil)

		assert.Nil(t, launch.AdminComment)
		assert.Equal(t, models.LaunchStatusInReview, transition.To)
	})

	t.Run("should store an empty comment as NULL", func(t *testing.T) {
		launch := models.Launch{Status: models.LaunchStatusInReview, AdminComment: utils.Ptr("old")}
		sm.Apply(&launch, "passed", utils.Ptr(""))

		assert.Nil(t, launch.AdminComment)
	})

	t.Run("should store the comment exactly as given", func(t *testing.T) {
		launch := models.Launch{Status: models.LaunchStatusInReview}
		transition := sm.Apply(&launch, "need_editing", utils.Ptr("  Add a demo video.\n"))

		assert.Equal(t, "  Add a demo video.\n", *launch.AdminComment)
		assert.Equal(t, "  Add a demo video.\n", *transition.AdminComment)
	})
}
