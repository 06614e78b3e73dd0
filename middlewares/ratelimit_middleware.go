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
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimit allows every caller perMinute requests per minute with bursts of
// the same size. Callers are told apart by user id, anonymous ones by ip.
func RateLimit(perMinute int) shared.MiddlewareFunc {
	if perMinute <= 0 {
		perMinute = 1
	}
	limiters := expirable.NewLRU[string, *rate.Limiter](4096, nil, 10*time.Minute)
	// guards lookup and creation so concurrent first requests share a limiter
	var mu sync.Mutex
	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
			limiters.Add(key, limiter)
		}
		return limiter
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			key := ctx.RealIP()
			if session := shared.GetSession(ctx); session != nil && session.GetUserID() != "" {
				key = "user:" + session.GetUserID()
			}

			if !limiterFor(key).Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, echo.Map{
					"message": "Too many requests. Please try again in a minute.",
					"kind":    "rate_limited",
				})
			}
			return next(ctx)
		}
	}
}
