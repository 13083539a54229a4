package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vgarchive/server/internal/catalog"
	"github.com/vgarchive/server/internal/table"
	"github.com/vgarchive/server/internal/web/middleware"
	"github.com/vgarchive/server/internal/web/templates"
)

// browseConsoles is the home-page navigation list. The catalog itself
// lives in the content store; this only names the consoles the UI links
// to directly.
var browseConsoles = []templates.ConsoleLink{
	{Slug: "nintendo-entertainment-system", Name: "Nintendo Entertainment System"},
	{Slug: "super-nintendo-entertainment-system", Name: "Super Nintendo Entertainment System"},
	{Slug: "nintendo-64", Name: "Nintendo 64"},
	{Slug: "game-boy", Name: "Game Boy"},
}

// handleHome renders the landing page.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	templates.Layout("VG Archive", templates.Home(browseConsoles)).Render(r.Context(), w)
}

// handleConsolePage renders a console's catalog page: the games table
// with current sort/filter state plus, for editors, import controls.
func (s *Server) handleConsolePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	console, err := s.api.FetchConsole(r.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			templates.Layout("Not found", templates.NotFound("That console")).Render(r.Context(), w)
			return
		}
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}

	model := s.tableModel(r, console)
	editor := middleware.IsEditor(r, &s.cfg.Security)
	templates.Layout(console.Name, templates.ConsolePage(console, model, editor)).Render(r.Context(), w)
}

// handleTablePartial re-renders just the games table from query state.
// This is the HTMX endpoint every sort header and filter input targets.
func (s *Server) handleTablePartial(w http.ResponseWriter, r *http.Request) {
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

	model := s.tableModel(r, console)
	templates.GamesTable(console.Slug, model).Render(r.Context(), w)
}

// tableModel builds the view model for a console's games and applies
// the request's sort/filter state. A cycle parameter advances the named
// column's sort after the rest of the state is restored.
func (s *Server) tableModel(r *http.Request, console *catalog.Console) *table.Model {
	model := table.New(table.GameColumns(), console.Games)
	model.ApplyQuery(r.URL.Query())
	if key := r.URL.Query().Get("cycle"); key != "" {
		model.CycleSort(key)
	}
	return model
}

// handleGamePage renders a single game's detail page. An unknown slug
// is a page state, not an error alert.
func (s *Server) handleGamePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	game, err := s.api.FetchGame(r.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			templates.Layout("Not found", templates.NotFound("That game")).Render(r.Context(), w)
			return
		}
		s.respondError(w, r, err, http.StatusBadGateway)
		return
	}

	templates.Layout(game.Title, templates.GamePage(game)).Render(r.Context(), w)
}
