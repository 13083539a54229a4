package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/vgarchive/server/internal/catalog"
	"github.com/vgarchive/server/internal/importer"
	"github.com/vgarchive/server/internal/logging"
)

// handleAPIConsole returns a console and its games, ordered by title as
// the content store returns them.
func (s *Server) handleAPIConsole(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	console, err := s.api.FetchConsole(r.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.respondError(w, r, err, http.StatusNotFound)
			return
		}
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}

	writeJSON(w, console)
}

type createGamesRequest struct {
	Games []catalog.DraftGame `json:"games"`
}

type createGamesResponse struct {
	Games []catalog.Game `json:"games"`
}

type createGamesErrors struct {
	Errors []string `json:"errors"`
}

// handleAPICreateGames bulk-creates and publishes games on a console
// from a JSON batch. Success returns the created games; any validation
// or remote failure returns the full error list with status 400. A
// batch above the record ceiling is rejected with status 500 before any
// remote call.
func (s *Server) handleAPICreateGames(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req createGamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, &catalog.ParseError{Msg: "invalid request body"}, http.StatusBadRequest)
		return
	}

	if len(req.Games) > catalog.MaxBatchSize {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(createGamesErrors{Errors: []string{catalog.ErrTooManyRecords.Error()}})
		return
	}

	console, err := s.api.FetchConsole(r.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.respondError(w, r, err, http.StatusNotFound)
			return
		}
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}

	result, err := s.importer.SubmitDrafts(r.Context(), slug, req.Games, console.ExistingUPCs())
	if err != nil {
		logging.FromContext(r.Context()).Warn("bulk create failed",
			"console", slug,
			"batch_size", len(req.Games),
			"error", err,
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(createGamesErrors{Errors: submissionErrors(result, err)})
		return
	}

	writeJSON(w, createGamesResponse{Games: result.Created})
}

// submissionErrors flattens a failed submission into user-readable
// messages: every field violation for a validation failure, every
// remote error message otherwise.
func submissionErrors(result *importer.Result, err error) []string {
	var msgs []string

	var vf *importer.ValidationFailed
	if errors.As(err, &vf) {
		msgs = append(msgs, violationMessages(vf.Violations)...)
		return msgs
	}

	if result != nil {
		for _, o := range result.Outcomes {
			if o.Err == nil {
				continue
			}
			var remote *catalog.RemoteError
			if errors.As(o.Err, &remote) && len(remote.Messages) > 0 {
				msgs = append(msgs, remote.Messages...)
			} else {
				msgs = append(msgs, o.Err.Error())
			}
		}
	}
	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func violationMessages(v catalog.BatchViolations) []string {
	var msgs []string
	for _, viol := range v.Batch {
		msgs = append(msgs, viol.Message)
	}
	indices := make([]int, 0, len(v.Records))
	for i := range v.Records {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	for _, i := range indices {
		for _, viol := range v.Records[i] {
			msgs = append(msgs, viol.Message)
		}
	}
	return msgs
}
