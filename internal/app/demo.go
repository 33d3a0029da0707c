package app

import (
	"eventhub/internal/clock"
	"eventhub/internal/domain"
	"eventhub/internal/storage/memory"
)

// SeedDemoEvents fills a fresh session with sample events so the
// dashboard has something to show before the first wizard run. Dates
// are placed relative to the clock so the timeline buckets stay
// populated.
func SeedDemoEvents(store *memory.EventStore, clk clock.Clock) {
	now := clk.Now()
	today := StartOfDay(now)

	events := []domain.Event{
		{
			ID:          newID(),
			Title:       "Product Launch Party",
			Description: "Celebrate the launch of our new product with food, drinks, and networking.",
			Type:        domain.EventTypeRSVPOnly,
			Location: domain.Location{
				Address:     "Rooftop Venue, Los Angeles, CA",
				Coordinates: &domain.Coordinates{Lat: 34.0522, Lng: -118.2437},
			},
			Date: today.AddDate(0, 0, -30),
			Time: "18:00",
			Attendees: []domain.Attendee{
				{ID: newID(), Name: "Grace Taylor", Email: "grace@example.com", Status: domain.AttendeeStatusAttending},
				{ID: newID(), Name: "Henry Wilson", Email: "henry@example.com", Status: domain.AttendeeStatusAttending},
			},
			Status:    domain.EventStatusCompleted,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          newID(),
			Title:       "Team Building Workshop",
			Description: "A fun and engaging team building session to strengthen our collaboration.",
			Type:        domain.EventTypePrivate,
			Location: domain.Location{
				Address:     "Central Park, New York, NY",
				Coordinates: &domain.Coordinates{Lat: 40.7829, Lng: -73.9654},
			},
			Date: today.AddDate(0, 0, 14),
			Time: "14:00",
			Attendees: []domain.Attendee{
				{ID: newID(), Name: "David Lee", Email: "david@example.com", Status: domain.AttendeeStatusAttending},
				{ID: newID(), Name: "Emma Davis", Email: "emma@example.com", Status: domain.AttendeeStatusAttending},
				{ID: newID(), Name: "Frank Miller", Email: "frank@example.com", Status: domain.AttendeeStatusMaybe},
			},
			Status:    domain.EventStatusUpcoming,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          newID(),
			Title:       "Summer Tech Conference 2024",
			Description: "Join us for the biggest tech conference of the year featuring industry leaders and innovative workshops.",
			Type:        domain.EventTypePublic,
			Location: domain.Location{
				Address:     "Convention Center, San Francisco, CA",
				Coordinates: &domain.Coordinates{Lat: 37.7749, Lng: -122.4194},
			},
			Date: today.AddDate(0, 0, 30),
			Time: "09:00",
			Images: []domain.Image{
				{URL: "https://images.pexels.com/photos/1190298/pexels-photo-1190298.jpeg", Name: "conference.jpeg"},
			},
			Attendees: []domain.Attendee{
				{ID: newID(), Name: "John Doe", Email: "john@example.com", Status: domain.AttendeeStatusAttending},
				{ID: newID(), Name: "Jane Smith", Email: "jane@example.com", Status: domain.AttendeeStatusMaybe},
				{ID: newID(), Name: "Bob Johnson", Email: "bob@example.com", Status: domain.AttendeeStatusPending},
				{ID: newID(), Name: "Alice Brown", Email: "alice@example.com", Status: domain.AttendeeStatusAttending},
				{ID: newID(), Name: "Charlie Wilson", Email: "charlie@example.com", Status: domain.AttendeeStatusNotAttending},
			},
			Status:    domain.EventStatusUpcoming,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	// Oldest first so the store ends up newest-first.
	for _, event := range events {
		_ = store.Create(event)
	}
}
