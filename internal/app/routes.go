package app

import (
	"github.com/gorilla/mux"
	"github.com/wirdtrack/wirdtrack/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Assignments
	r.HandleFunc("/api/assignment", deps.AssignmentHandler.GetAssignments).Queries("from", "{from}", "to", "{to}").Methods("GET")
	r.HandleFunc("/api/assignment/{date}", deps.AssignmentHandler.GetAssignment).Methods("GET")
	r.HandleFunc("/api/assignment/{date}", deps.AssignmentHandler.SaveAssignment).Methods("PUT")
	r.HandleFunc("/api/assignment/{date}", deps.AssignmentHandler.DeleteAssignment).Methods("DELETE")
	r.HandleFunc("/api/assignment/{date}/suggestion", deps.AssignmentHandler.GetSuggestion).Methods("GET")

	// Calendar grid
	r.HandleFunc("/api/calendar/grid", deps.AssignmentHandler.GetCalendarGrid).Queries("year", "{year}", "month", "{month}").Methods("GET")

	// Progress
	r.HandleFunc("/api/progress", deps.ProgressHandler.GetProgress).Queries("from", "{from}", "to", "{to}").Methods("GET")
	r.HandleFunc("/api/progress/{date}", deps.ProgressHandler.RecordProgress).Methods("PUT")

	// Stats
	r.HandleFunc("/api/stats/weekly", deps.StatsHandler.GetWeeklyStats).Methods("GET")
	r.HandleFunc("/api/stats/monthly", deps.StatsHandler.GetMonthlyStats).Methods("GET")
	r.HandleFunc("/api/stats/trend", deps.StatsHandler.GetTrend).Queries("from", "{from}", "to", "{to}").Methods("GET")

	// Overview
	r.HandleFunc("/api/overview", deps.OverviewHandler.GetOverview).Queries("date", "{date}").Methods("GET")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userId}", deps.UserHandler.DeleteUser).Methods("DELETE")
}
