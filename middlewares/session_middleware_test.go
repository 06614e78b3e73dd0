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
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/launchpad/accesscontrol"
	"github.com/l3montree-dev/launchpad/mocks"
	"github.com/l3montree-dev/launchpad/shared"
	"github.com/labstack/echo/v4"
	"github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionMiddleware(t *testing.T) {
	t.Run("should build the session from the kratos identity", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "ory_kratos_session", Value: "abc"})
		c := e.NewContext(req, httptest.NewRecorder())

		userID := uuid.NewString()
		adminClient := mocks.NewAdminClient(t)
		adminClient.On("GetIdentityFromCookie", mock.Anything, "ory_kratos_session=abc").Return(client.Identity{
			Id: userID,
			Traits: map[string]any{
				"email": "ada@example.com",
				"name":  map[string]any{"first": "Ada", "last": "Lovelace"},
			},
		}, nil)

		var called bool
		handler := SessionMiddleware(adminClient, "")(func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)
			assert.Equal(t, userID, sess.GetUserID())
			assert.Equal(t, "ada@example.com", sess.GetEmail())
			assert.Equal(t, "Ada Lovelace", sess.GetDisplayName())
			return nil
		})

		assert.NoError(t, handler(c))
		assert.True(t, called)
	})

	t.Run("should fall back to no session if the cookie is invalid", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "ory_kratos_session", Value: "expired"})
		c := e.NewContext(req, httptest.NewRecorder())

		adminClient := mocks.NewAdminClient(t)
		adminClient.On("GetIdentityFromCookie", mock.Anything, mock.Anything).Return(client.Identity{}, errors.New("session expired"))

		handler := SessionMiddleware(adminClient, "")(func(ctx echo.Context) error {
			assert.Equal(t, accesscontrol.NoSession, shared.GetSession(ctx))
			return nil
		})
		assert.NoError(t, handler(c))
	})

	t.Run("should accept the admin token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Admin-Token", "secret")
		req.Header.Set("X-User-ID", "0b6a2f4e-1c6f-4a39-9d55-6c5d2b2f9e11")
		c := e.NewContext(req, httptest.NewRecorder())

		handler := SessionMiddleware(mocks.NewAdminClient(t), "secret")(func(ctx echo.Context) error {
			assert.Equal(t, "0b6a2f4e-1c6f-4a39-9d55-6c5d2b2f9e11", shared.GetSession(ctx).GetUserID())
			return nil
		})
		assert.NoError(t, handler(c))
	})

	t.Run("should reject a wrong admin token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Admin-Token", "guess")
		c := e.NewContext(req, httptest.NewRecorder())

		var called bool
		err := SessionMiddleware(mocks.NewAdminClient(t), "secret")(func(ctx echo.Context) error {
			called = true
			return nil
		})(c)
		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("should ignore the admin token header when no token is configured", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Admin-Token", "anything")
		req.Header.Set("X-User-ID", uuid.NewString())
		c := e.NewContext(req, httptest.NewRecorder())

		handler := SessionMiddleware(mocks.NewAdminClient(t), "")(func(ctx echo.Context) error {
			assert.Equal(t, "", shared.GetSession(ctx).GetUserID())
			return nil
		})
		assert.NoError(t, handler(c))
	})
}

func TestSessionRequired(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	shared.SetSession(c, accesscontrol.NoSession)

	err := SessionRequired()(func(ctx echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRateLimit(t *testing.T) {
	newCall := func(mw shared.MiddlewareFunc, session shared.AuthSession) func() error {
		return func() error {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
			shared.SetSession(c, session)
			return mw(func(ctx echo.Context) error { return nil })(c)
		}
	}

	t.Run("should reject the request after the burst is used up", func(t *testing.T) {
		call := newCall(RateLimit(2), accesscontrol.NewSession(uuid.NewString(), "", ""))

		assert.NoError(t, call())
		assert.NoError(t, call())
		err := call()
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
	})

	t.Run("should share one limiter between concurrent first requests", func(t *testing.T) {
		call := newCall(RateLimit(2), accesscontrol.NewSession(uuid.NewString(), "", ""))

		var passed atomic.Int32
		var wg sync.WaitGroup
		start := make(chan struct{})
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if call() == nil {
					passed.Add(1)
				}
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, int32(2), passed.Load())
	})
}
