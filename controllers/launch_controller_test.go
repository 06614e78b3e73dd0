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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/accesscontrol"
	"github.com/l3montree-dev/launchpad/database/models"
	"github.com/l3montree-dev/launchpad/dtos"
	"github.com/l3montree-dev/launchpad/mocks"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func jsonContext(method, target string, body any) (shared.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpError(t *testing.T, err error) (int, echo.Map) {
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok, "expected an echo.HTTPError, got %T", err)
	body, ok := he.Message.(echo.Map)
	assert.True(t, ok)
	return he.Code, body
}

func TestStatusForKind(t *testing.T) {
	cases := map[shared.ErrorKind]int{
		shared.KindValidation:       400,
		shared.KindInvalidDate:      400,
		shared.KindInvalidTimeZone:  400,
		shared.KindCapacityExceeded: 409,
		shared.KindAlreadyBooked:    409,
		shared.KindNotFound:         404,
		shared.KindForbidden:        403,
		shared.KindUnauthenticated:  401,
		shared.KindStoreError:       500,
	}
	for kind, status := range cases {
		assert.Equal(t, status, statusForKind(kind), string(kind))
	}
}

func TestLaunchControllerCreate(t *testing.T) {
	userID := uuid.New()
	session := accesscontrol.NewSession(userID.String(), "ada@example.com", "Ada")
	req := dtos.ProjectLaunchRequest{
		Name:           "Launchpad",
		Tagline:        "Book your launch day",
		ProductHuntURL: "https://www.producthunt.com/posts/launchpad",
		LaunchDate:     "2025-06-20",
	}

	t.Run("should answer 201 with the booked launch", func(t *testing.T) {
		launchService := mocks.NewLaunchService(t)
		controller := NewLaunchController(launchService, mocks.NewLaunchViewService(t))

		date, err := models.ToLaunchDate("2025-06-20")
		assert.NoError(t, err)
		launchService.On("CreateProjectAndLaunch", session, req).Return(models.Launch{
			LaunchDate: date,
			Timezone:   "Africa/Casablanca",
			Status:     models.LaunchStatusInReview,
			Project:    models.Project{Name: "Launchpad"},
		}, nil)

		ctx, rec := jsonContext(http.MethodPost, "/api/v1/projects/", req)
		shared.SetSession(ctx, session)

		assert.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var res dtos.MyLaunchDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "2025-06-20", res.LaunchDate)
		assert.Equal(t, "Launchpad", res.Project.Name)
		assert.Equal(t, "in_review", res.Status)
	})

	t.Run("should answer 409 with the cap when the date is full", func(t *testing.T) {
		launchService := mocks.NewLaunchService(t)
		controller := NewLaunchController(launchService, mocks.NewLaunchViewService(t))

		launchService.On("CreateProjectAndLaunch", session, req).Return(models.Launch{}, shared.CapacityExceededError("This date is full. Limit is 2 launches per day.", 2))

		ctx, _ := jsonContext(http.MethodPost, "/api/v1/projects/", req)
		shared.SetSession(ctx, session)

		code, body := httpError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "This date is full. Limit is 2 launches per day.", body["message"])
		assert.Equal(t, shared.KindCapacityExceeded, body["kind"])
		assert.Equal(t, 2, body["cap"])
	})

	t.Run("should answer 401 without a session", func(t *testing.T) {
		launchService := mocks.NewLaunchService(t)
		controller := NewLaunchController(launchService, mocks.NewLaunchViewService(t))

		launchService.On("CreateProjectAndLaunch", mock.Anything, req).Return(models.Launch{}, shared.UnauthenticatedError)

		ctx, _ := jsonContext(http.MethodPost, "/api/v1/projects/", req)

		code, body := httpError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.NotContains(t, body, "cap")
	})

	t.Run("should answer 400 for unparsable bodies", func(t *testing.T) {
		controller := NewLaunchController(mocks.NewLaunchService(t), mocks.NewLaunchViewService(t))

		httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/projects/", strings.NewReader("{"))
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		ctx := echo.New().NewContext(httpReq, httptest.NewRecorder())

		code, _ := httpError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestLaunchControllerUpdateProject(t *testing.T) {
	t.Run("should reject malformed project ids", func(t *testing.T) {
		controller := NewLaunchController(mocks.NewLaunchService(t), mocks.NewLaunchViewService(t))

		ctx, _ := jsonContext(http.MethodPut, "/api/v1/projects/abc/", dtos.ProjectLaunchRequest{})
		ctx.SetParamNames("projectID")
		ctx.SetParamValues("abc")

		code, _ := httpError(t, controller.UpdateProject(ctx))
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("should answer 403 for foreign projects", func(t *testing.T) {
		launchService := mocks.NewLaunchService(t)
		controller := NewLaunchController(launchService, mocks.NewLaunchViewService(t))
		projectID := uuid.New()

		launchService.On("UpdateProjectAndLaunch", mock.Anything, projectID, mock.Anything).Return(models.Launch{}, shared.ForbiddenError("You can only edit your own projects."))

		ctx, _ := jsonContext(http.MethodPut, "/api/v1/projects/"+projectID.String()+"/", dtos.ProjectLaunchRequest{})
		ctx.SetParamNames("projectID")
		ctx.SetParamValues(projectID.String())

		code, body := httpError(t, controller.UpdateProject(ctx))
		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, "You can only edit your own projects.", body["message"])
	})
}

func TestLaunchControllerCalendar(t *testing.T) {
	viewService := mocks.NewLaunchViewService(t)
	controller := NewLaunchController(mocks.NewLaunchService(t), viewService)

	viewService.On("MonthCalendar", "2025-06", "Asia/Tokyo").Return(dtos.MonthCalendarDTO{Month: "2025-06", DailyCap: 2}, nil)

	ctx, rec := jsonContext(http.MethodGet, "/api/v1/calendar/?month=2025-06&tz=Asia/Tokyo", nil)

	assert.NoError(t, controller.Calendar(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dailyCap":2`)
}
