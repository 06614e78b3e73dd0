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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var LaunchBookedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "launchpad_launch_booked_amount",
	Help: "The total number of booked launches",
})

var LaunchRescheduledAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "launchpad_launch_rescheduled_amount",
	Help: "The total number of launches moved to another date",
})

var LaunchDeletedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "launchpad_launch_deleted_amount",
	Help: "The total number of launches deleted by admins",
})

var CapacityRejectedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "launchpad_capacity_rejected_amount",
	Help: "The total number of bookings rejected because the date was full",
})

var LaunchReviewedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "launchpad_launch_reviewed_amount",
	Help: "The total number of review decisions by resulting status",
}, []string{"status"})

var ViewCacheRequestsAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "launchpad_view_cache_requests_amount",
	Help: "Read model cache lookups by result",
}, []string{"result"})
