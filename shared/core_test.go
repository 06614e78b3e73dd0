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

package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsProductHuntURL(t *testing.T) {
	cases := map[string]bool{
		"https://www.producthunt.com/posts/launchpad": true,
		"https://producthunt.com/posts/launchpad":     true,
		"http://PRODUCTHUNT.com/x":                    true,
		"https://evilproducthunt.com/posts/x":         false,
		"https://producthunt.com.evil.io/posts/x":     false,
		"ftp://producthunt.com/x":                     false,
		"producthunt.com/posts/x":                     false,
		"":                                            false,
	}
	for raw, expected := range cases {
		assert.Equal(t, expected, IsProductHuntURL(raw), raw)
	}
}

func TestValidatorTags(t *testing.T) {
	type request struct {
		Date string `validate:"required,isodate"`
		URL  string `validate:"required,producthunturl"`
	}

	assert.NoError(t, V.Struct(request{Date: "2025-06-20", URL: "https://www.producthunt.com/posts/x"}))
	assert.Error(t, V.Struct(request{Date: "20.06.2025", URL: "https://www.producthunt.com/posts/x"}))
	assert.Error(t, V.Struct(request{Date: "2025-06-20", URL: "https://example.com"}))
}

func TestSanitizeParam(t *testing.T) {
	assert.Equal(t, "abc", SanitizeParam("/abc/"))
}
