package progress

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/wirdtrack/wirdtrack/internal/rest"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

type RecordRequestDTO struct {
	Count int `json:"count"`
}

type DailyRecordDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Handler struct {
	service Service
	users   user.Service
}

func NewHandler(service Service, users user.Service) *Handler {
	return &Handler{service: service, users: users}
}

// RecordProgress godoc
// @Summary Record repetitions for a date
// @Description Store the repetition count for the given date, overwriting any previous count
// @Tags Progress
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param userUid query string false "Record for another user (sheikh only)"
// @Param record body RecordRequestDTO true "Repetition count"
// @Success 200 {object} DailyRecordDTO
// @Failure 400 {object} rest.ErrorResponse
// @Failure 403 {string} string "Forbidden"
// @Router /api/progress/{date} [put]
// @Security XUserId
func (h *Handler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetUserId, ok := h.resolveTargetUser(w, r)
	if !ok {
		return
	}

	var body RecordRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	date := mux.Vars(r)["date"]
	record, err := h.service.Record(r.Context(), targetUserId, date, body.Count)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(DailyRecordDTO{Date: record.Date, Count: record.Count}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetProgress godoc
// @Summary Get recorded repetitions for a date range
// @Tags Progress
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param userUid query string false "Read another user's progress (sheikh only)"
// @Success 200 {object} map[string]int
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/progress [get]
// @Security XUserId
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetUserId, ok := h.resolveTargetUser(w, r)
	if !ok {
		return
	}

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

	counts, err := h.service.GetRange(r.Context(), targetUserId, from, to)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(counts); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// resolveTargetUser returns the user whose records the request addresses:
// the current user, or the user named by the optional userUid parameter.
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
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidCount):
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: err.Error()})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
