package overview

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/wirdtrack/wirdtrack/internal/rest"
	"github.com/wirdtrack/wirdtrack/pkg/assignment"
	"github.com/wirdtrack/wirdtrack/pkg/user"
)

type DaySummaryDTO struct {
	Date           string                    `json:"date"`
	Assignment     *assignment.AssignmentDTO `json:"assignment"`
	RecordedCount  int                       `json:"recordedCount"`
	CompletionRate int                       `json:"completionRate"`
}

type Handler struct {
	service Service
	users   user.Service
}

func NewHandler(service Service, users user.Service) *Handler {
	return &Handler{service: service, users: users}
}

// GetOverview godoc
// @Summary Day summary of assignment, recorded count, and completion
// @Tags Overview
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param userUid query string false "Another user's summary (sheikh only)"
// @Success 200 {object} DaySummaryDTO
// @Failure 400 {object} rest.ErrorResponse
// @Failure 403 {string} string "Forbidden"
// @Router /api/overview [get]
// @Security XUserId
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetUserId, ok := h.resolveTargetUser(w, r)
	if !ok {
		return
	}

	summary, err := h.service.GetDay(r.Context(), targetUserId, r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, ErrInvalidDate):
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: err.Error()})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	dto := DaySummaryDTO{
		Date:           summary.Date,
		RecordedCount:  summary.RecordedCount,
		CompletionRate: summary.CompletionRate,
	}
	if summary.Assignment != nil {
		assignmentDTO := assignment.ToDTO(*summary.Assignment)
		dto.Assignment = &assignmentDTO
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
