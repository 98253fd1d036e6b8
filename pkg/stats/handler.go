package stats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/wirdtrack/wirdtrack/internal/rest"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

type WeeklyStatsDTO struct {
	WeekStart        string `json:"weekStart"`
	WeekEnd          string `json:"weekEnd"`
	TotalCompletions int    `json:"totalCompletions"`
	CompletedDays    int    `json:"completedDays"`
	AveragePerDay    int    `json:"averagePerDay"`
	BestDay          string `json:"bestDay,omitempty"`
	BestDayCount     int    `json:"bestDayCount"`
}

type MonthlyStatsDTO struct {
	Month            string `json:"month"`
	TotalCompletions int    `json:"totalCompletions"`
	CompletedDays    int    `json:"completedDays"`
	AveragePerDay    int    `json:"averagePerDay"`
	ImprovementRate  int    `json:"improvementRate"`
}

type TrendReportDTO struct {
	From              string    `json:"from"`
	To                string    `json:"to"`
	Dates             []string  `json:"dates"`
	Counts            []float64 `json:"counts"`
	MovingAverage     []float64 `json:"movingAverage"`
	Median            float64   `json:"median"`
	StandardDeviation float64   `json:"standardDeviation"`
	Quartile1         float64   `json:"quartile1"`
	Quartile3         float64   `json:"quartile3"`
	Min               float64   `json:"min"`
	Max               float64   `json:"max"`
	Range             float64   `json:"range"`
	PredictedNext     float64   `json:"predictedNext"`
	LatestClass       string    `json:"latestClass"`
}

type Handler struct {
	service  Service
	users    user.Service
	renderer StatsRenderer
}

func NewHandler(service Service, users user.Service, renderer StatsRenderer) *Handler {
	return &Handler{service: service, users: users, renderer: renderer}
}

// GetWeeklyStats godoc
// @Summary Weekly rollup of recorded repetitions
// @Description Aggregates the week containing the given date. Returns CSV when the Accept header is text/csv.
// @Tags Stats
// @Produce json
// @Produce text/csv
// @Param date query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Param userUid query string false "Another user's stats (sheikh only)"
// @Success 200 {object} WeeklyStatsDTO
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/stats/weekly [get]
// @Security XUserId
func (h *Handler) GetWeeklyStats(w http.ResponseWriter, r *http.Request) {
	targetUserId, ok := h.resolveTargetUser(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Weekly(r.Context(), targetUserId, r.URL.Query().Get("date"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := h.renderer.RenderWeekly(stats)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(csv)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(weeklyToDTO(stats)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetMonthlyStats godoc
// @Summary Monthly rollup of recorded repetitions
// @Tags Stats
// @Produce json
// @Param date query string false "Anchor date (YYYY-MM-DD), defaults to today"
// @Param userUid query string false "Another user's stats (sheikh only)"
// @Success 200 {object} MonthlyStatsDTO
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/stats/monthly [get]
// @Security XUserId
func (h *Handler) GetMonthlyStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetUserId, ok := h.resolveTargetUser(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Monthly(r.Context(), targetUserId, r.URL.Query().Get("date"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	dto := MonthlyStatsDTO{
		Month:            stats.Month,
		TotalCompletions: stats.TotalCompletions,
		CompletedDays:    stats.CompletedDays,
		AveragePerDay:    stats.AveragePerDay,
		ImprovementRate:  stats.ImprovementRate,
	}
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetTrend godoc
// @Summary Descriptive statistics and forecast over a date range
// @Tags Stats
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param window query int false "Moving average window (default 7)"
// @Param userUid query string false "Another user's stats (sheikh only)"
// @Success 200 {object} TrendReportDTO
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/stats/trend [get]
// @Security XUserId
func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetUserId, ok := h.resolveTargetUser(w, r)
	if !ok {
		return
	}

	window := 0
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid window parameter"})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		window = parsed
	}

	report, err := h.service.Trend(r.Context(), targetUserId, r.URL.Query().Get("from"), r.URL.Query().Get("to"), window)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	dto := TrendReportDTO{
		From:              report.From,
		To:                report.To,
		Dates:             report.Dates,
		Counts:            report.Counts,
		MovingAverage:     report.MovingAverage,
		Median:            report.Median,
		StandardDeviation: report.StandardDeviation,
		Quartile1:         report.Quartile1,
		Quartile3:         report.Quartile3,
		Min:               report.Range.Min,
		Max:               report.Range.Max,
		Range:             report.Range.Range,
		PredictedNext:     report.PredictedNext,
		LatestClass:       string(report.LatestClass),
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) resolveTargetUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	currentUser, err := user.CurrentUser(r.Context())
	if err != nil {
		http.Error(w, "user not found", http.StatusForbidden)
		return 0, false
	}

	uid := r.URL.Query().Get("userUid")
	if uid == "" {
		return currentUser.Id, true
	}

	target, err := h.users.GetUserByUid(r.Context(), uid)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return 0, false
		}
		log.Errorf("failed to resolve user %s: %v", uid, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return 0, false
	}
	return target.Id, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidRange):
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: err.Error()})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func weeklyToDTO(stats WeeklyStats) WeeklyStatsDTO {
	return WeeklyStatsDTO{
		WeekStart:        stats.WeekStart.Format(dateLayout),
		WeekEnd:          stats.WeekEnd.Format(dateLayout),
		TotalCompletions: stats.TotalCompletions,
		CompletedDays:    stats.CompletedDays,
		AveragePerDay:    stats.AveragePerDay,
		BestDay:          stats.BestDay,
		BestDayCount:     stats.BestDayCount,
	}
}
