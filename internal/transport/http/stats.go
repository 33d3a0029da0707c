package http

import (
	"net/http"

	"eventhub/internal/app"
)

type dashboardStatsResponse struct {
	TotalEvents    int `json:"total_events"`
	UpcomingEvents int `json:"upcoming_events"`
	TotalAttending int `json:"total_attending"`
	ResponseRate   int `json:"response_rate"`
}

// HandleDashboardStats returns the aggregate numbers for the
// dashboard's stat cards.
func HandleDashboardStats(sessions SessionProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		user, ok := UserFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		stats := app.ComputeStats(sessions.Get(user.ID).Events().All())
		writeJSON(w, http.StatusOK, dashboardStatsResponse{
			TotalEvents:    stats.TotalEvents,
			UpcomingEvents: stats.UpcomingEvents,
			TotalAttending: stats.TotalAttending,
			ResponseRate:   stats.ResponseRate,
		})
	}
}
