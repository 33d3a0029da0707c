package app

import "eventhub/internal/domain"

// DashboardStats are the aggregate cards shown on the dashboard.
type DashboardStats struct {
	TotalEvents    int
	UpcomingEvents int
	TotalAttending int
	ResponseRate   int
}

// ComputeStats derives the dashboard aggregates from the full event
// collection.
func ComputeStats(events []domain.Event) DashboardStats {
	stats := DashboardStats{
		TotalEvents:  len(events),
		ResponseRate: ResponseRate(events),
	}
	for _, event := range events {
		if event.Status == domain.EventStatusUpcoming {
			stats.UpcomingEvents++
		}
		stats.TotalAttending += CountAttendees(event).Attending
	}
	return stats
}
