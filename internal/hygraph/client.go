// Package hygraph is the client for the remote headless content store.
// All catalog data lives there; this process keeps nothing but
// per-request snapshots of what it fetches.
package hygraph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	graphql "github.com/hasura/go-graphql-client"

	"github.com/vgarchive/server/internal/catalog"
)

// API is the surface the rest of the application depends on. The web
// and importer layers receive it injected, never a concrete client.
type API interface {
	FetchConsole(ctx context.Context, slug string) (*catalog.Console, error)
	FetchGame(ctx context.Context, slug string) (*catalog.Game, error)
	CreateGame(ctx context.Context, input CreateGameInput) (*catalog.Game, error)
	PublishGame(ctx context.Context, id string) error
}

// CreateGameInput carries every field of the create-game mutation.
// Release is the canonical YYYY-MM-DD form the store's Date type expects.
type CreateGameInput struct {
	Title       string
	Genre       string
	UPC         string
	Publisher   string
	Developer   string
	Rating      string
	Release     string
	Description string
	ConsoleSlug string
	Slug        string
}

// Client talks GraphQL over HTTP with bearer-token auth.
type Client struct {
	gql *graphql.Client
}

// New creates a client for the given endpoint. A nil httpClient gets a
// default with a sane timeout.
func New(endpoint, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	gql := graphql.NewClient(endpoint, httpClient).
		WithRequestModifier(func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		})
	return &Client{gql: gql}
}

// wire representations: the store serializes Date fields as plain
// YYYY-MM-DD strings, so games cross the boundary with a string release
// and convert on the way in.

type wireGame struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rating      string `json:"rating"`
	Release     string `json:"release"`
	UPC         string `json:"upc"`
	Developer   string `json:"developer"`
	Publisher   string `json:"publisher"`
	Genre       string `json:"genre"`
	Slug        string `json:"slug"`
	Console     *struct {
		Name string `json:"name"`
	} `json:"console"`
	Images []catalog.Image `json:"images"`
}

func (w wireGame) toGame() catalog.Game {
	g := catalog.Game{
		ID:          w.ID,
		Title:       w.Title,
		Genre:       w.Genre,
		UPC:         w.UPC,
		Publisher:   w.Publisher,
		Developer:   w.Developer,
		Rating:      w.Rating,
		Description: w.Description,
		Slug:        w.Slug,
		Images:      w.Images,
	}
	if w.Console != nil {
		g.ConsoleName = w.Console.Name
	}
	if t, ok := catalog.ParseDate(w.Release); ok {
		g.Release = t
	}
	return g
}

// FetchConsole loads a console and its games (ordered by title) by slug.
// Returns catalog.ErrNotFound when the slug has no match.
func (c *Client) FetchConsole(ctx context.Context, slug string) (*catalog.Console, error) {
	raw, err := c.gql.ExecRaw(ctx, queryGameConsole, map[string]any{
		"consoleSlug": slug,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch console %q: %w", slug, err)
	}

	var resp struct {
		GameConsole *struct {
			ID    string     `json:"id"`
			Slug  string     `json:"slug"`
			Name  string     `json:"name"`
			Games []wireGame `json:"games"`
		} `json:"gameConsole"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode console %q: %w", slug, err)
	}
	if resp.GameConsole == nil {
		return nil, fmt.Errorf("console %q: %w", slug, catalog.ErrNotFound)
	}

	console := &catalog.Console{
		ID:    resp.GameConsole.ID,
		Slug:  resp.GameConsole.Slug,
		Name:  resp.GameConsole.Name,
		Games: make([]catalog.Game, 0, len(resp.GameConsole.Games)),
	}
	for _, w := range resp.GameConsole.Games {
		console.Games = append(console.Games, w.toGame())
	}
	return console, nil
}

// FetchGame loads a single game with its console name and image list.
// Returns catalog.ErrNotFound when the slug has no match.
func (c *Client) FetchGame(ctx context.Context, slug string) (*catalog.Game, error) {
	raw, err := c.gql.ExecRaw(ctx, queryGameBySlug, map[string]any{
		"slug": slug,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch game %q: %w", slug, err)
	}

	var resp struct {
		Game *wireGame `json:"game"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode game %q: %w", slug, err)
	}
	if resp.Game == nil {
		return nil, fmt.Errorf("game %q: %w", slug, catalog.ErrNotFound)
	}

	game := resp.Game.toGame()
	return &game, nil
}

// CreateGame issues the create mutation and returns the stored record
// with its assigned id and slug. The record is not publicly visible
// until PublishGame.
func (c *Client) CreateGame(ctx context.Context, input CreateGameInput) (*catalog.Game, error) {
	raw, err := c.gql.ExecRaw(ctx, mutationCreateGame, map[string]any{
		"title":       input.Title,
		"description": input.Description,
		"rating":      input.Rating,
		"release":     input.Release,
		"upc":         input.UPC,
		"developer":   input.Developer,
		"publisher":   input.Publisher,
		"genre":       input.Genre,
		"consoleSlug": input.ConsoleSlug,
		"slug":        input.Slug,
	})
	if err != nil {
		return nil, fmt.Errorf("create game %q: %w", input.Title, err)
	}

	var resp struct {
		CreateGame *wireGame `json:"createGame"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode created game %q: %w", input.Title, err)
	}
	if resp.CreateGame == nil {
		return nil, fmt.Errorf("create game %q: empty response", input.Title)
	}

	game := resp.CreateGame.toGame()
	return &game, nil
}

// PublishGame promotes a created record to its publicly-visible stage.
func (c *Client) PublishGame(ctx context.Context, id string) error {
	if _, err := c.gql.ExecRaw(ctx, mutationPublishGame, map[string]any{
		"id": graphql.ID(id),
	}); err != nil {
		return fmt.Errorf("publish game %s: %w", id, err)
	}
	return nil
}

// ErrorMessages extracts the structured GraphQL error payload from an
// error returned by this package, one message per entry. Falls back to
// the plain error text for transport-level failures.
func ErrorMessages(err error) []string {
	if err == nil {
		return nil
	}
	var gqlErrs graphql.Errors
	if errors.As(err, &gqlErrs) {
		msgs := make([]string, 0, len(gqlErrs))
		for _, e := range gqlErrs {
			msgs = append(msgs, e.Message)
		}
		return msgs
	}
	return []string{err.Error()}
}
