package favorites_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	routes "art-portfolio-back/internal/app/http"
	"art-portfolio-back/internal/store"

	"github.com/gin-gonic/gin"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
	r := gin.New()
	routes.RegisterRoutes(r, store.NewMemoryStore())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func createArtwork(t *testing.T, srv *httptest.Server, title string) string {
	t.Helper()
	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/artworks", map[string]interface{}{"title": title})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create artwork expected 201, got %d: %s", resp.StatusCode, raw)
	}
	var out struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode created artwork: %v", err)
	}
	return out.ID
}

func listFavorites(t *testing.T, srv *httptest.Server, email string) []map[string]interface{} {
	t.Helper()
	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/favorites?email="+email, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list favorites expected 200, got %d", resp.StatusCode)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode favorites: %v", err)
	}
	return out
}

func TestListWithoutEmailIsEmptyArray(t *testing.T) {
	srv := newServer(t)
	createArtwork(t, srv, "Any")

	resp, raw := doJSON(t, http.MethodGet, srv.URL+"/favorites?email=", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if string(bytes.TrimSpace(raw)) != "[]" {
		t.Fatalf("expected [] for missing email, got %s", raw)
	}
}

func TestAddFavoriteTwice(t *testing.T) {
	srv := newServer(t)
	id := createArtwork(t, srv, "Saved")
	body := map[string]string{"artworkId": id, "userEmail": "fan@x.com"}

	resp, raw := doJSON(t, http.MethodPost, srv.URL+"/favorites", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var fav map[string]interface{}
	if err := json.Unmarshal(raw, &fav); err != nil {
		t.Fatalf("decode favorite: %v", err)
	}
	if fav["artworkId"] != id || fav["_id"] == nil {
		t.Fatalf("unexpected favorite %v", fav)
	}

	resp, raw = doJSON(t, http.MethodPost, srv.URL+"/favorites", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("repeat add expected 200, got %d", resp.StatusCode)
	}
	var marker struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &marker); err != nil {
		t.Fatalf("decode marker: %v", err)
	}
	if marker.Message != "Already added" {
		t.Fatalf("expected Already added marker, got %s", raw)
	}

	if got := listFavorites(t, srv, "fan@x.com"); len(got) != 1 {
		t.Fatalf("expected exactly one favorite, got %d", len(got))
	}
}

func TestAddFavoriteRequiresFields(t *testing.T) {
	srv := newServer(t)
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/favorites", map[string]string{"userEmail": "fan@x.com"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing artworkId expected 400, got %d", resp.StatusCode)
	}
}

func TestOrphanedFavoriteExcluded(t *testing.T) {
	srv := newServer(t)
	id := createArtwork(t, srv, "Doomed")
	if resp, _ := doJSON(t, http.MethodPost, srv.URL+"/favorites", map[string]string{
		"artworkId": id, "userEmail": "fan@x.com",
	}); resp.StatusCode != http.StatusOK {
		t.Fatalf("add favorite failed: %d", resp.StatusCode)
	}
	if got := listFavorites(t, srv, "fan@x.com"); len(got) != 1 {
		t.Fatalf("expected one favorite before deletion, got %d", len(got))
	}

	if resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/artworks/"+id, nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("delete artwork failed: %d", resp.StatusCode)
	}

	if got := listFavorites(t, srv, "fan@x.com"); len(got) != 0 {
		t.Fatalf("orphaned favorite still listed: %v", got)
	}
}

func TestDeleteFavoriteAlwaysSucceeds(t *testing.T) {
	srv := newServer(t)
	id := createArtwork(t, srv, "Saved")
	_, raw := doJSON(t, http.MethodPost, srv.URL+"/favorites", map[string]string{
		"artworkId": id, "userEmail": "fan@x.com",
	})
	var fav struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(raw, &fav); err != nil {
		t.Fatalf("decode favorite: %v", err)
	}

	resp, raw := doJSON(t, http.MethodDelete, srv.URL+"/favorites/"+fav.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete expected 200, got %d", resp.StatusCode)
	}
	var out struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if out.DeletedCount != 1 {
		t.Fatalf("expected deletedCount 1, got %d", out.DeletedCount)
	}

	resp, raw = doJSON(t, http.MethodDelete, srv.URL+"/favorites/"+fav.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("repeat delete expected 200, got %d", resp.StatusCode)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if out.DeletedCount != 0 {
		t.Fatalf("expected deletedCount 0 on repeat, got %d", out.DeletedCount)
	}
}
