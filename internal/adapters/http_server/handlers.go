// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_dashboard/internal/app"
	"hotel_dashboard/internal/domain"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type hotelList struct {
	Count  int            `json:"count"`
	Hotels []domain.Hotel `json:"hotels"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/dashboard", h.getDashboard)
		r.Get("/hotels", h.listHotels)
		r.Get("/hotels/{id}", h.getHotel)
		r.Get("/filters", h.getFilters)
		r.Get("/compare", h.getCompare)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case domain.IsValidation(err):
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid Request", err.Error())
	case errors.Is(err, domain.ErrDataUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Data Unavailable", err.Error())
	default:
		log.Error().Err(err).Msg("unhandled request error")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON answers 304 when the client already holds this body.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "response could not be encoded")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func (h *Handlers) getDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	snap, err := h.Q.Snapshot(r.Context(), app.ParseCriteria(q), app.ParseBinWidth(q.Get("bin_width")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, snap)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hs, err := h.Q.Hotels(r.Context(), app.ParseCriteria(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, hotelList{Count: len(hs), Hotels: hs})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	hotel, err := h.Q.Hotel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, hotel)
}

func (h *Handlers) getFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Q.Options(r.Context()))
}

func (h *Handlers) getCompare(w http.ResponseWriter, r *http.Request) {
	table, err := h.Q.Compare(r.Context(), app.ParseCompareIDs(r.URL.Query()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, table)
}
