package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vgarchive/server/internal/catalog"
	"github.com/vgarchive/server/internal/importer"
	"github.com/vgarchive/server/internal/logging"
	"github.com/vgarchive/server/internal/web/templates"
)

// handleImportCSV accepts a CSV upload for a console and opens an
// import session from its rows, rendering the editable draft form.
func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "consoleSlug")

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.Import.MaxUploadBytes); err != nil {
		s.respondError(w, r, &catalog.ParseError{Msg: "file too large or invalid form"}, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, &catalog.ParseError{Msg: "no file provided"}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".csv" && ext != ".txt" {
		s.respondError(w, r, &catalog.ParseError{Msg: "only .csv and .txt files are accepted"}, http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	session, err := s.importer.Ingest(slug, data)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	logging.FromContext(r.Context()).Info("import session opened",
		"console", slug,
		"session_id", session.ID,
		"rows", len(session.Drafts()),
		"file", header.Filename,
	)
	s.renderImportForm(w, r, session)
}

// handleImportStart opens an empty manual-entry session with one blank
// draft row.
func (s *Server) handleImportStart(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "consoleSlug")
	session := s.importer.StartSession(slug, []catalog.DraftGame{{}})
	s.renderImportForm(w, r, session)
}

// handleImportAddRow appends a blank draft to the session's batch.
func (s *Server) handleImportAddRow(w http.ResponseWriter, r *http.Request) {
	session, ok := s.importSession(w, r)
	if !ok {
		return
	}
	session.Update(func(b *importer.DraftBatch) { b.AddBlank() })
	s.renderImportForm(w, r, session)
}

// handleImportRemoveRow deletes one draft row. Removing the last row is
// allowed; the batch-minimum rule is enforced at submit.
func (s *Server) handleImportRemoveRow(w http.ResponseWriter, r *http.Request) {
	session, ok := s.importSession(w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		s.respondError(w, r, &catalog.ParseError{Msg: "invalid row index"}, http.StatusBadRequest)
		return
	}
	session.Update(func(b *importer.DraftBatch) { b.RemoveAt(idx) })
	s.renderImportForm(w, r, session)
}

// handleImportPatchRow writes field values into one draft. Writes are
// not validated; validation happens at submit.
func (s *Server) handleImportPatchRow(w http.ResponseWriter, r *http.Request) {
	session, ok := s.importSession(w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		s.respondError(w, r, &catalog.ParseError{Msg: "invalid row index"}, http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, &catalog.ParseError{Msg: "invalid form body"}, http.StatusBadRequest)
		return
	}

	session.Update(func(b *importer.DraftBatch) {
		for _, field := range catalog.FieldNames {
			if !r.PostForm.Has(field) {
				continue
			}
			b.UpdateField(idx, field, strings.TrimSpace(r.PostForm.Get(field)))
		}
	})
	w.WriteHeader(http.StatusNoContent)
}

// handleImportSubmit validates and submits the session's batch. A
// validation failure re-renders the form with every violation marked;
// a remote failure re-renders with the error alert and the batch
// intact; success clears the drawer and triggers a table refresh.
func (s *Server) handleImportSubmit(w http.ResponseWriter, r *http.Request) {
	session, ok := s.importSession(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Import.SubmitTimeout)
	defer cancel()

	console, err := s.api.FetchConsole(ctx, session.ConsoleSlug)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}

	result, err := s.importer.Submit(ctx, session, console.ExistingUPCs())
	if err != nil {
		var vf *importer.ValidationFailed
		if errors.As(err, &vf) {
			s.renderImportForm(w, r, session)
			return
		}

		// Remote failure: alert on top, batch intact underneath.
		userMsg := catalog.MapError(err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		templates.ErrorAlert(userMsg.Message, userMsg.Action, userMsg.Code).Render(r.Context(), w)
		templates.ImportForm(session.ConsoleSlug, session.ID, session.Drafts(), session.Violations()).Render(r.Context(), w)
		return
	}

	w.Header().Set("HX-Trigger", "games-updated")
	templates.SuccessAlert("Added " + strconv.Itoa(len(result.Created)) + " games to " + console.Name + ".").Render(r.Context(), w)
}

// handleImportCancel discards the session and clears the drawer.
func (s *Server) handleImportCancel(w http.ResponseWriter, r *http.Request) {
	session, ok := s.importSession(w, r)
	if !ok {
		return
	}
	s.importer.Cancel(session.ID)
	w.WriteHeader(http.StatusOK)
}

// importSession resolves the session named in the URL and checks it
// belongs to the console in the URL. Writes the error response itself
// when the session is gone (expired, cancelled, or never existed).
func (s *Server) importSession(w http.ResponseWriter, r *http.Request) (*importer.Session, bool) {
	slug := chi.URLParam(r, "consoleSlug")
	id := chi.URLParam(r, "id")

	session, ok := s.importer.Session(id)
	if !ok || session.ConsoleSlug != slug {
		s.respondError(w, r, catalog.ErrNotFound, http.StatusNotFound)
		return nil, false
	}
	return session, true
}

func (s *Server) renderImportForm(w http.ResponseWriter, r *http.Request, session *importer.Session) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	templates.ImportForm(session.ConsoleSlug, session.ID, session.Drafts(), session.Violations()).Render(r.Context(), w)
}
