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

package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestProjectColumns(t *testing.T) {
	s, err := schema.Parse(&Project{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	t.Run("should store the product hunt url in product_hunt_url", func(t *testing.T) {
		field := s.LookUpField("ProductHuntURL")
		require.NotNil(t, field)
		assert.Equal(t, "product_hunt_url", field.DBName)
	})

	t.Run("should use the projects table", func(t *testing.T) {
		assert.Equal(t, "projects", s.Table)
	})
}
