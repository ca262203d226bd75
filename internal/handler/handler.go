// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/mergington/school-activities/internal/model"
	"github.com/mergington/school-activities/internal/service"
	"github.com/mergington/school-activities/internal/store"
)

// ActivityHandler holds all HTTP handlers for the roster API.
type ActivityHandler struct {
	svc *service.RosterService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc *service.RosterService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// activityName extracts the {name} path segment, percent-decoded.
// chi yields the decoded segment for canonical encodings; PathUnescape
// covers the non-canonical ones where RawPath is populated.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListActivities handles GET /activities
// Returns a JSON object mapping activity name to its record.
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListActivities(r.Context()))
}

// Signup handles POST /activities/{name}/signup?email=...
// Enrolls the given email in the named activity.
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	resp, err := h.svc.Signup(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrAlreadyRegistered):
			writeError(w, http.StatusBadRequest, "Student is already signed up")
		case errors.Is(err, store.ErrActivityFull):
			writeError(w, http.StatusBadRequest, "Activity is full")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Unregister handles DELETE /activities/{name}/unregister?email=...
// Removes the given email from the named activity's roster.
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	email := r.URL.Query().Get("email")

	resp, err := h.svc.Unregister(r.Context(), name, email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, store.ErrNotRegistered):
			writeError(w, http.StatusBadRequest, "Student is not signed up for this activity")
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Root handles GET /
// Redirects to the static index page.
func Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
