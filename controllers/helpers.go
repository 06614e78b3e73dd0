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
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/labstack/echo/v4"
)

func statusForKind(kind shared.ErrorKind) int {
	switch kind {
	case shared.KindValidation, shared.KindInvalidDate, shared.KindInvalidTimeZone:
		return http.StatusBadRequest
	case shared.KindCapacityExceeded, shared.KindAlreadyBooked:
		return http.StatusConflict
	case shared.KindNotFound:
		return http.StatusNotFound
	case shared.KindForbidden:
		return http.StatusForbidden
	case shared.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// toHTTPError renders service errors as {"message", "kind"} bodies. Capacity
// errors additionally carry the daily cap.
func toHTTPError(err error) *echo.HTTPError {
	var le *shared.LaunchError
	if !errors.As(err, &le) {
		return echo.NewHTTPError(http.StatusInternalServerError, echo.Map{
			"message": "unexpected error",
			"kind":    shared.KindStoreError,
		}).WithInternal(err)
	}

	body := echo.Map{
		"message": le.Message,
		"kind":    le.Kind,
	}
	if le.Kind == shared.KindCapacityExceeded {
		body["cap"] = le.Cap
	}
	return echo.NewHTTPError(statusForKind(le.Kind), body).WithInternal(err)
}

func bindError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
		"message": "unable to process request",
		"kind":    shared.KindValidation,
	}).WithInternal(err)
}

func uuidParam(ctx shared.Context, param string) (uuid.UUID, error) {
	id, err := shared.GetUUIDParam(ctx, param)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"message": err.Error(),
			"kind":    shared.KindValidation,
		}).WithInternal(err)
	}
	return id, nil
}

// viewerTimezone reads the ?tz= query parameter. Launch times of unknown
// zones are rendered in UTC.
func viewerTimezone(ctx shared.Context) string {
	if tz := strings.TrimSpace(ctx.QueryParam("tz")); tz != "" {
		return tz
	}
	return "UTC"
}
