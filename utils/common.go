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
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

func Ptr[T any](t T) *T {
	return &t
}

func SafeDereference[T any](s *T) T {
	if s == nil {
		var t T
		return t
	}
	return *s
}

// EmptyThenNil returns nil for the empty string.
func EmptyThenNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// TrimmedOrNil trims the input and maps blank values to nil.
func TrimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	return EmptyThenNil(strings.TrimSpace(*s))
}

// Truncate cuts s after max runes.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// NormalizeName trims and composes s (NFC), so that "e" followed by a
// combining accent counts as one character.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
