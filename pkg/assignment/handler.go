package assignment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/wirdtrack/wirdtrack/internal/rest"
	"github.com/wirdtrack/wirdtrack/pkg/calendar"
)

type AssignmentDTO struct {
	Id                string `json:"id"`
	Date              string `json:"date"`
	SurahID           int    `json:"surahId"`
	SurahName         string `json:"surahName"`
	StartAyah         int    `json:"startAyah"`
	EndAyah           int    `json:"endAyah"`
	TargetRepetitions int    `json:"targetRepetitions"`
	IsHoliday         bool   `json:"isHoliday"`
	Note              string `json:"note,omitempty"`
	DayOfWeek         string `json:"dayOfWeek"`
}

type SuggestionDTO struct {
	SurahID  int `json:"surahId"`
	NextAyah int `json:"nextAyah"`
}

type CalendarGridDTO struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Weeks [][]*int `json:"weeks"`
}

type Handler struct {
	service       Service
	gridWeekStart time.Weekday
}

func NewHandler(service Service, gridWeekStart time.Weekday) *Handler {
	return &Handler{service: service, gridWeekStart: gridWeekStart}
}

// SaveAssignment godoc
// @Summary Create or overwrite the assignment for a date
// @Description Validates and stores the day's reading target. Holiday assignments carry no reading fields.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param assignment body AssignmentDTO true "Assignment"
// @Success 200 {object} AssignmentDTO
// @Failure 400 {object} rest.ErrorResponse "Validation failure"
// @Failure 403 {string} string "Forbidden"
// @Router /api/assignment/{date} [put]
// @Security XUserId
func (h *Handler) SaveAssignment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto AssignmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	input := Input{
		Date:              mux.Vars(r)["date"],
		SurahID:           dto.SurahID,
		StartAyah:         dto.StartAyah,
		EndAyah:           dto.EndAyah,
		TargetRepetitions: dto.TargetRepetitions,
		IsHoliday:         dto.IsHoliday,
		Note:              dto.Note,
	}
	saved, err := h.service.Save(r.Context(), input)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: validationErr.Reason})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		if errors.Is(err, ErrForbidden) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Debugf("Stored assignment %s", saved.Id)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(saved)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetAssignment godoc
// @Summary Get the assignment for a date
// @Tags Assignment
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} AssignmentDTO
// @Failure 404 {string} string "Not found"
// @Router /api/assignment/{date} [get]
func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	a, err := h.service.Get(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(a)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetAssignments godoc
// @Summary List assignments in a date range
// @Tags Assignment
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} AssignmentDTO
// @Router /api/assignment [get]
func (h *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Missing date range",
			Details: "'from' and 'to' query parameters are required (YYYY-MM-DD)",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	assignments, err := h.service.GetRange(r.Context(), from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		dtos = append(dtos, ToDTO(a))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// DeleteAssignment godoc
// @Summary Delete the assignment for a date
// @Tags Assignment
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Not found"
// @Router /api/assignment/{date} [delete]
// @Security XUserId
func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrForbidden) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSuggestion godoc
// @Summary Suggest where the assignment for a date should start
// @Description Continues from the previous day's assignment in the same surah. 204 when there is nothing to continue from.
// @Tags Assignment
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} SuggestionDTO
// @Success 204 "No suggestion"
// @Router /api/assignment/{date}/suggestion [get]
func (h *Handler) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	suggestion, err := h.service.SuggestContinuation(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Reason, http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if suggestion == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SuggestionDTO{SurahID: suggestion.SurahID, NextAyah: suggestion.NextAyah}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetCalendarGrid godoc
// @Summary Get the month grid for the assignment calendar
// @Tags Assignment
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} CalendarGridDTO
// @Router /api/calendar/grid [get]
func (h *Handler) GetCalendarGrid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	grid := calendar.MonthGrid(year, time.Month(month), h.gridWeekStart)
	weeks := make([][]*int, 0, len(grid))
	for _, row := range grid {
		cells := make([]*int, 7)
		for i, day := range row {
			if day != 0 {
				d := day
				cells[i] = &d
			}
		}
		weeks = append(weeks, cells)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(CalendarGridDTO{Year: year, Month: month, Weeks: weeks}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ToDTO converts an assignment to its transport shape.
func ToDTO(a Assignment) AssignmentDTO {
	return AssignmentDTO{
		Id:                a.Id,
		Date:              a.Date,
		SurahID:           a.SurahID,
		SurahName:         a.SurahName,
		StartAyah:         a.StartAyah,
		EndAyah:           a.EndAyah,
		TargetRepetitions: a.TargetRepetitions,
		IsHoliday:         a.IsHoliday,
		Note:              a.Note,
		DayOfWeek:         a.DayOfWeek,
	}
}
