package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/rookie-play-service/internal/testutil"
)

func TestFavoritesLifecycle(t *testing.T) {
	h := newHandler(Deps{})

	rr := testutil.Serve(route(http.MethodGet, "/api/users/{uid}/favorites", h.ListFavorites), http.MethodGet, "/api/users/u1/favorites", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := strings.TrimSpace(rr.Body.String()); got != `{"favorites":[],"user_id":"u1"}` {
		t.Fatalf("unexpected list body %s", got)
	}

	add := route(http.MethodPost, "/api/users/{uid}/favorites", h.AddFavorite)
	rr = testutil.Serve(add, http.MethodPost, "/api/users/u1/favorites", strings.NewReader(`{"type":"team","id":"9"}`))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var created struct {
		UserID   string   `json:"user_id"`
		Favorite favorite `json:"favorite"`
	}
	testutil.DecodeJSON(t, rr, &created)
	if created.UserID != "u1" || created.Favorite != (favorite{Type: "team", ID: "9"}) {
		t.Fatalf("unexpected created body %+v", created)
	}
}

func TestAddFavoriteValidation(t *testing.T) {
	h := newHandler(Deps{})
	add := route(http.MethodPost, "/api/users/{uid}/favorites", h.AddFavorite)

	cases := map[string]string{
		`{"type":"team"}`:            "missing required field: id",
		`{"id":"9"}`:                 "missing required field: type",
		`{}`:                         "missing required fields: type, id",
		``:                           "missing required fields: type, id",
		`{"type":"  ","id":"9"}`:     "missing required field: type",
		`{"type":"team","id":"9"`:    "invalid JSON body",
		`{"type":"team","id":[1,2]}`: "invalid JSON body",
	}
	for body, want := range cases {
		rr := testutil.Serve(add, http.MethodPost, "/api/users/u1/favorites", strings.NewReader(body))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		var resp map[string]string
		testutil.DecodeJSON(t, rr, &resp)
		if resp["error"] != want {
			t.Fatalf("body %q: expected %q, got %q", body, want, resp["error"])
		}
	}
}

func TestRemoveFavoriteReadsBodyOrQuery(t *testing.T) {
	h := newHandler(Deps{})
	del := route(http.MethodDelete, "/api/users/{uid}/favorites", h.RemoveFavorite)

	rr := testutil.Serve(del, http.MethodDelete, "/api/users/u1/favorites", strings.NewReader(`{"type":"player","id":"3"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(del, http.MethodDelete, "/api/users/u1/favorites?type=game&id=401", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var removed struct {
		Removed favorite `json:"removed"`
	}
	testutil.DecodeJSON(t, rr, &removed)
	if removed.Removed != (favorite{Type: "game", ID: "401"}) {
		t.Fatalf("unexpected removed body %+v", removed)
	}

	rr = testutil.Serve(del, http.MethodDelete, "/api/users/u1/favorites?type=game", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestNotes(t *testing.T) {
	h := newHandler(Deps{})
	h.newID = func() string { return "note-1" }

	rr := testutil.Serve(route(http.MethodGet, "/api/users/{uid}/notes", h.ListNotes), http.MethodGet, "/api/users/u1/notes", nil)
	if got := strings.TrimSpace(rr.Body.String()); got != `{"notes":[],"user_id":"u1"}` {
		t.Fatalf("unexpected list body %s", got)
	}

	add := route(http.MethodPost, "/api/users/{uid}/notes", h.AddNote)
	rr = testutil.Serve(add, http.MethodPost, "/api/users/u1/notes", strings.NewReader(`{"note":" Great catch ","game_id":"401","play_id":"7"}`))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	want := `{"note":{"id":"note-1","note":"Great catch","game_id":"401","play_id":"7"},"user_id":"u1"}`
	if got := strings.TrimSpace(rr.Body.String()); got != want {
		t.Fatalf("unexpected note body\n got %s\nwant %s", got, want)
	}

	rr = testutil.Serve(add, http.MethodPost, "/api/users/u1/notes", strings.NewReader(`{"game_id":"401"}`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "missing required field: note" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestNotesUseUUIDByDefault(t *testing.T) {
	h := newHandler(Deps{})
	rr := testutil.Serve(route(http.MethodPost, "/api/users/{uid}/notes", h.AddNote), http.MethodPost, "/api/users/u1/notes", strings.NewReader(`{"note":"hi"}`))
	var body struct {
		Note note `json:"note"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Note.ID) != 36 {
		t.Fatalf("expected uuid note id, got %q", body.Note.ID)
	}
}
