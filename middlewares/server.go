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

package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/launchpad/config"
	"github.com/l3montree-dev/launchpad/monitoring"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func recovermiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					monitoring.RecoverAndAlert(fmt.Sprintf("panic while handling %s %s", ctx.Request().Method, ctx.Request().URL.Path), r)
					returnErr = echo.NewHTTPError(http.StatusInternalServerError, echo.Map{"message": "unexpected error", "kind": "store_error"})
				}
			}()
			return next(ctx)
		}
	}
}

func errorHandler(err error, ctx echo.Context) {
	// do the logging straight inside the error handler
	// this keeps controller methods clean
	if he, ok := err.(*echo.HTTPError); ok && he.Code < http.StatusInternalServerError {
		slog.Info(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL, "status", he.Code)
	} else {
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
	}

	if ctx.Response().Committed {
		return
	}

	he, ok := err.(*echo.HTTPError)
	if !ok {
		he = &echo.HTTPError{
			Code:    http.StatusInternalServerError,
			Message: echo.Map{"message": http.StatusText(http.StatusInternalServerError)},
		}
	}

	message := he.Message
	if m, ok := message.(string); ok {
		message = echo.Map{"message": m}
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(he.Code)
	} else {
		err = ctx.JSON(he.Code, message)
	}
	if err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

func registerMiddlewares(e *echo.Echo, cfg config.Config) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     []string{cfg.FrontendURL},
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(otelecho.Middleware("launchpad"))
	e.Use(logger())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = errorHandler
}

func Server(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)
	return e
}
