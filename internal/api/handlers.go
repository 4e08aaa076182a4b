// Package api exposes HTTP handlers for the activity directory.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/extracurricular/internal/domain"
	"example.com/extracurricular/internal/observability"
)

// Handler coordinates HTTP requests with the directory service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/my-activities", h.myActivities)
	mux.HandleFunc("/activities/", h.activityOps)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}

func (h *Handler) myActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	email := r.URL.Query().Get("email")
	registered, err := h.service.ListByParticipant(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, registered)
}

// activityOps dispatches the per-activity sub-routes:
// POST /activities/{name}/signup and DELETE /activities/{name}/participants/{email}.
func (h *Handler) activityOps(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	segments := strings.Split(rest, "/")

	switch {
	case r.Method == http.MethodPost && len(segments) == 2 && segments[1] == "signup":
		h.signUp(w, r, segments[0])
	case r.Method == http.MethodDelete && len(segments) == 3 && segments[1] == "participants":
		h.removeParticipant(w, r, segments[0], segments[2])
	case r.Method == http.MethodPost || r.Method == http.MethodDelete:
		writeError(w, http.StatusNotFound, "Not found")
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request, activityName string) {
	email := r.URL.Query().Get("email")

	if err := h.service.SignUp(r.Context(), activityName, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		writeServiceError(w, err)
		return
	}

	observability.RecordSignup(activityName)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, activityName),
	})
}

func (h *Handler) removeParticipant(w http.ResponseWriter, r *http.Request, activityName, email string) {
	if err := h.service.RemoveParticipant(r.Context(), activityName, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		writeServiceError(w, err)
		return
	}

	observability.RecordRemoval(activityName)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Removed %s from %s", email, activityName),
	})
}

// writeServiceError maps domain sentinels onto the wire detail strings.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailRequired):
		writeError(w, http.StatusBadRequest, "Email is required")
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrDuplicateSignup):
		writeError(w, http.StatusBadRequest, "Student already signed up")
	case errors.Is(err, domain.ErrActivityFull):
		writeError(w, http.StatusBadRequest, "Activity is full")
	case errors.Is(err, domain.ErrParticipantNotFound):
		writeError(w, http.StatusNotFound, "Participant not found")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailRequired):
		return "email_required"
	case errors.Is(err, domain.ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, domain.ErrDuplicateSignup):
		return "duplicate_signup"
	case errors.Is(err, domain.ErrActivityFull):
		return "activity_full"
	case errors.Is(err, domain.ErrParticipantNotFound):
		return "participant_not_found"
	default:
		return "internal"
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
