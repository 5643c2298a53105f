package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type echoPayload struct {
	Title   string   `json:"title"`
	LikedBy []string `json:"likedBy"`
	Likes   int      `json:"likes"`
}

func newEchoServer(t *testing.T) (*httptest.Server, *echoPayload) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var seen echoPayload
	r := gin.New()
	r.Use(SanitizeInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		if err := c.ShouldBindJSON(&seen); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "bind failed"})
			return
		}
		c.JSON(http.StatusOK, seen)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestSanitizeStripsMarkup(t *testing.T) {
	srv, seen := newEchoServer(t)

	body := `{"title":"<script>alert(1)</script>Sunset","likedBy":["<b>a@x.com</b>"],"likes":1}`
	resp, err := http.Post(srv.URL+"/echo", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if seen.Title != "Sunset" {
		t.Fatalf("script tag survived sanitization: %q", seen.Title)
	}
	if len(seen.LikedBy) != 1 || seen.LikedBy[0] != "a@x.com" {
		t.Fatalf("markup survived in array element: %v", seen.LikedBy)
	}
	if seen.Likes != 1 {
		t.Fatalf("non-string field mangled: %d", seen.Likes)
	}
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	srv, _ := newEchoServer(t)

	resp, err := http.Post(srv.URL+"/echo", "application/json", strings.NewReader(`{"title": `))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed JSON expected 400, got %d", resp.StatusCode)
	}
}
