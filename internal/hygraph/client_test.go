package hygraph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vgarchive/server/internal/catalog"
)

// graphqlRequest is the wire shape of an outgoing GraphQL call.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// newTestClient spins up a stub GraphQL endpoint. The handler receives
// the decoded request and returns the value for the "data" object, or
// a list of error messages.
func newTestClient(t *testing.T, handle func(req graphqlRequest) (data string, errMsgs []string)) (*Client, *http.Request) {
	t.Helper()
	var lastReq http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastReq = *r.Clone(r.Context())

		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		data, errMsgs := handle(req)
		w.Header().Set("Content-Type", "application/json")
		if len(errMsgs) > 0 {
			var list []map[string]any
			for _, m := range errMsgs {
				list = append(list, map[string]any{"message": m})
			}
			json.NewEncoder(w).Encode(map[string]any{"data": json.RawMessage(data), "errors": list})
			return
		}
		w.Write([]byte(`{"data":` + data + `}`))
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL, "test-token", srv.Client()), &lastReq
}

func TestFetchConsole(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var captured graphqlRequest
		client, lastReq := newTestClient(t, func(req graphqlRequest) (string, []string) {
			captured = req
			return `{"gameConsole":{"id":"c1","slug":"game-boy","name":"Game Boy","games":[
				{"id":"g1","title":"Kirby's Dream Land","genre":"Platformer","rating":"E","release":"1992-08-01","upc":"100","publisher":"Nintendo","developer":"HAL","slug":"kirbys-dream-land-game-boy"},
				{"id":"g2","title":"Tetris","genre":"Puzzle","rating":"E","release":"1989-06-14","upc":"200","publisher":"Nintendo","developer":"Nintendo","slug":"tetris-game-boy"}
			]}}`, nil
		})

		console, err := client.FetchConsole(context.Background(), "game-boy")
		if err != nil {
			t.Fatalf("FetchConsole() error = %v", err)
		}
		if console.Name != "Game Boy" || len(console.Games) != 2 {
			t.Errorf("console = %+v", console)
		}
		if got := console.Games[1].Release.Format(catalog.DateLayout); got != "1989-06-14" {
			t.Errorf("Release = %s, want parsed wire date", got)
		}

		if captured.Variables["consoleSlug"] != "game-boy" {
			t.Errorf("variables = %+v", captured.Variables)
		}
		if !strings.Contains(captured.Query, "orderBy: title_ASC") {
			t.Error("query must request title ordering")
		}
		if got := lastReq.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		client, _ := newTestClient(t, func(req graphqlRequest) (string, []string) {
			return `{"gameConsole":null}`, nil
		})
		_, err := client.FetchConsole(context.Background(), "atari-2600")
		if !errors.Is(err, catalog.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestFetchGame(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client, _ := newTestClient(t, func(req graphqlRequest) (string, []string) {
			return `{"game":{"id":"g1","title":"Tetris","genre":"Puzzle","rating":"E","release":"1989-06-14",
				"console":{"name":"Game Boy"},"images":[{"id":"i1","url":"https://cdn.example/tetris.png"}]}}`, nil
		})

		game, err := client.FetchGame(context.Background(), "tetris-game-boy")
		if err != nil {
			t.Fatalf("FetchGame() error = %v", err)
		}
		if game.ConsoleName != "Game Boy" {
			t.Errorf("ConsoleName = %q", game.ConsoleName)
		}
		if len(game.Images) != 1 || game.Images[0].URL != "https://cdn.example/tetris.png" {
			t.Errorf("Images = %+v", game.Images)
		}
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		client, _ := newTestClient(t, func(req graphqlRequest) (string, []string) {
			return `{"game":null}`, nil
		})
		_, err := client.FetchGame(context.Background(), "nope")
		if !errors.Is(err, catalog.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestCreateGame(t *testing.T) {
	var captured graphqlRequest
	client, _ := newTestClient(t, func(req graphqlRequest) (string, []string) {
		captured = req
		return `{"createGame":{"id":"new-1","title":"Tetris","slug":"tetris-game-boy"}}`, nil
	})

	input := CreateGameInput{
		Title:       "Tetris",
		Genre:       "Puzzle",
		UPC:         "100",
		Publisher:   "Nintendo",
		Developer:   "Nintendo",
		Rating:      "E",
		Release:     "1989-06-14",
		Description: "Blocks",
		ConsoleSlug: "game-boy",
		Slug:        "tetris-game-boy",
	}
	game, err := client.CreateGame(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateGame() error = %v", err)
	}
	if game.ID != "new-1" {
		t.Errorf("ID = %q", game.ID)
	}

	for key, want := range map[string]string{
		"title":       "Tetris",
		"genre":       "Puzzle",
		"release":     "1989-06-14",
		"consoleSlug": "game-boy",
		"slug":        "tetris-game-boy",
	} {
		if got := captured.Variables[key]; got != want {
			t.Errorf("variable %s = %v, want %q", key, got, want)
		}
	}
}

func TestPublishGame(t *testing.T) {
	var captured graphqlRequest
	client, _ := newTestClient(t, func(req graphqlRequest) (string, []string) {
		captured = req
		return `{"publishGame":{"id":"g1"}}`, nil
	})

	if err := client.PublishGame(context.Background(), "g1"); err != nil {
		t.Fatalf("PublishGame() error = %v", err)
	}
	if captured.Variables["id"] != "g1" {
		t.Errorf("variables = %+v", captured.Variables)
	}
	if !strings.Contains(captured.Query, "to: PUBLISHED") {
		t.Error("query must publish to the PUBLISHED stage")
	}
}

func TestErrorMessages(t *testing.T) {
	t.Run("StructuredErrors", func(t *testing.T) {
		client, _ := newTestClient(t, func(req graphqlRequest) (string, []string) {
			return `null`, []string{"value is not unique for the field \"upc\"", "oh no"}
		})

		_, err := client.CreateGame(context.Background(), CreateGameInput{Title: "Tetris"})
		if err == nil {
			t.Fatal("want error")
		}
		msgs := ErrorMessages(err)
		if len(msgs) != 2 || !strings.Contains(msgs[0], "not unique") {
			t.Errorf("ErrorMessages() = %v", msgs)
		}
	})

	t.Run("PlainError", func(t *testing.T) {
		msgs := ErrorMessages(errors.New("connection refused"))
		if len(msgs) != 1 || msgs[0] != "connection refused" {
			t.Errorf("ErrorMessages() = %v", msgs)
		}
	})

	t.Run("Nil", func(t *testing.T) {
		if msgs := ErrorMessages(nil); msgs != nil {
			t.Errorf("ErrorMessages(nil) = %v", msgs)
		}
	})
}
