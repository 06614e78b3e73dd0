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

package utils

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTrimmedOrNil(t *testing.T) {
	t.Run("should return nil for nil input", func(t *testing.T) {
		assert.Nil(t, TrimmedOrNil(nil))
	})
	t.Run("should return nil for whitespace only input", func(t *testing.T) {
		assert.Nil(t, TrimmedOrNil(Ptr("   \t ")))
	})
	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "@launchpad", *TrimmedOrNil(Ptr("  @launchpad ")))
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "shorter than max", input: "Ada", max: 80, expected: "Ada"},
		{name: "exactly max", input: "abcd", max: 4, expected: "abcd"},
		{name: "longer than max", input: "abcdef", max: 4, expected: "abcd"},
		{name: "counts runes not bytes", input: "äöüß", max: 2, expected: "äö"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.max))
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, "b", FirstNonBlank("", "  ", " b ", "c"))
	assert.Equal(t, "", FirstNonBlank("", " "))
}

func TestGroupBy(t *testing.T) {
	grouped := GroupBy([]string{"2025-06-10", "2025-06-11", "2025-06-10"}, func(s string) string { return s })
	assert.Len(t, grouped["2025-06-10"], 2)
	assert.Len(t, grouped["2025-06-11"], 1)
}

func TestNormalizeName(t *testing.T) {
	composed := NormalizeName("  Jose\u0301 ")
	assert.Equal(t, "Jos\u00e9", composed)
	assert.Equal(t, 4, utf8.RuneCountInString(composed))
}
