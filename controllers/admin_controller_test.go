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

package controllers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/accesscontrol"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/mocks"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/l3montree-dev/launchpad/utils"
	"github.com/stretchr/testify/assert"
)

func TestAdminControllerSetStatus(t *testing.T) {
	session := accesscontrol.NewSession(uuid.NewString(), "admin@example.com", "Admin")
	launchID := uuid.New()

	t.Run("should pass status and comment to the review", func(t *testing.T) {
		reviewService := mocks.NewReviewService(t)
		controller := NewAdminController(mocks.NewLaunchService(t), reviewService, mocks.NewLaunchViewService(t))

		reviewService.On("SetStatus", session, launchID, "need_editing", utils.Ptr("Add screenshots")).
			Return(models.Launch{Model: models.Model{ID: launchID}, Status: models.LaunchStatusNeedEditing, AdminComment: utils.Ptr("Add screenshots")}, nil)

		ctx, rec := jsonContext(http.MethodPatch, "/api/v1/admin/launches/"+launchID.String()+"/status/", dtos.LaunchStatusUpdateRequest{
			Status:       "need_editing",
			AdminComment: utils.Ptr("Add screenshots"),
		})
		ctx.SetParamNames("launchID")
		ctx.SetParamValues(launchID.String())
		shared.SetSession(ctx, session)

		assert.NoError(t, controller.SetStatus(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"need_editing"`)
	})

	t.Run("should answer 403 for members", func(t *testing.T) {
		reviewService := mocks.NewReviewService(t)
		controller := NewAdminController(mocks.NewLaunchService(t), reviewService, mocks.NewLaunchViewService(t))

		reviewService.On("SetStatus", session, launchID, "passed", (*string)(nil)).Return(models.Launch{}, shared.ForbiddenError("Only admins can update launch status."))

		ctx, _ := jsonContext(http.MethodPatch, "/", dtos.LaunchStatusUpdateRequest{Status: "passed"})
		ctx.SetParamNames("launchID")
		ctx.SetParamValues(launchID.String())
		shared.SetSession(ctx, session)

		code, body := httpError(t, controller.SetStatus(ctx))
		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, shared.KindForbidden, body["kind"])
	})
}

func TestAdminControllerDelete(t *testing.T) {
	session := accesscontrol.NewSession(uuid.NewString(), "admin@example.com", "Admin")
	launchID := uuid.New()

	t.Run("should answer 204", func(t *testing.T) {
		launchService := mocks.NewLaunchService(t)
		controller := NewAdminController(launchService, mocks.NewReviewService(t), mocks.NewLaunchViewService(t))
		launchService.On("DeleteLaunch", session, launchID).Return(nil)

		ctx, rec := jsonContext(http.MethodDelete, "/", nil)
		ctx.SetParamNames("launchID")
		ctx.SetParamValues(launchID.String())
		shared.SetSession(ctx, session)

		assert.NoError(t, controller.Delete(ctx))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("should answer 404 for unknown launches", func(t *testing.T) {
		launchService := mocks.NewLaunchService(t)
		controller := NewAdminController(launchService, mocks.NewReviewService(t), mocks.NewLaunchViewService(t))
		launchService.On("DeleteLaunch", session, launchID).Return(shared.NotFoundError("Launch not found.", nil))

		ctx, _ := jsonContext(http.MethodDelete, "/", nil)
		ctx.SetParamNames("launchID")
		ctx.SetParamValues(launchID.String())
		shared.SetSession(ctx, session)

		code, body := httpError(t, controller.Delete(ctx))
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Launch not found.", body["message"])
	})
}
