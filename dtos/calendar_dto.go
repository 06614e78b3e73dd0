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

package dtos

type CalendarDayDTO struct {
	Date      string              `json:"date"`
	InMonth   bool                `json:"inMonth"`
	IsToday   bool                `json:"isToday"`
	Bookable  bool                `json:"bookable"`
	Full      bool                `json:"full"`
	Available bool                `json:"available"`
	Count     int                 `json:"count"`
	Launches  []LaunchListItemDTO `json:"launches"`
}

type MonthCalendarDTO struct {
	Month    string             `json:"month"`
	DailyCap int                `json:"dailyCap"`
	Weeks    [][]CalendarDayDTO `json:"weeks"`
}
