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

// Package calendar holds the booking rules of the launch calendar: how far
// ahead a date has to be, how many launches fit on one day and which time zone
// names are acceptable.
package calendar

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	// the launch rules must not depend on the tz database of the host
	_ "time/tzdata"
)

const (
	DateLayout = "2006-01-02"
	// MinDaysInAdvance is the lead time between today and the earliest bookable date.
	MinDaysInAdvance = 3

	MinDailyCap     = 1
	MaxDailyCap     = 2
	DefaultDailyCap = MaxDailyCap
)

var ErrInvalidDate = errors.New("launch date is invalid")

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MinimumBookableDate is the first calendar day a launch may be booked for,
// computed in the location of now.
func MinimumBookableDate(now time.Time) time.Time {
	return startOfDay(now).AddDate(0, 0, MinDaysInAdvance)
}

func MinLaunchDateString(now time.Time) string {
	return MinimumBookableDate(now).Format(DateLayout)
}

func Today(now time.Time) string {
	return startOfDay(now).Format(DateLayout)
}

// IsLaunchDateAllowed compares canonical YYYY-MM-DD strings. Lexicographic
// order equals chronological order for that layout.
func IsLaunchDateAllowed(launchDate string, now time.Time) bool {
	return launchDate >= MinLaunchDateString(now)
}

// NormalizeDate returns the canonical form of a calendar date or ErrInvalidDate.
func NormalizeDate(input string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(input))
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}

// IsValidTimeZone accepts IANA zone names. The empty string and "Local" are
// rejected even though the time package resolves them.
func IsValidTimeZone(tz string) bool {
	if tz == "" || tz == "Local" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// DailyLaunchCap parses the configured per day limit. Non numeric input falls
// back to the default, numeric input is truncated and clamped to
// [MinDailyCap, MaxDailyCap].
func DailyLaunchCap(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultDailyCap
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) {
		return DefaultDailyCap
	}
	f = math.Trunc(f)
	if f < MinDailyCap {
		return MinDailyCap
	}
	if f > MaxDailyCap {
		return MaxDailyCap
	}
	return int(f)
}
