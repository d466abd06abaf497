package webscraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const page = `<!DOCTYPE html>
<html>
<head>
<title>Test Page</title>
<meta name="author" content="Jane Doe">
<meta name="description" content="A page for tests">
</head>
<body>
<nav>ignore me</nav>
<main><h1>Heading</h1><p>Some <strong>important</strong> content.</p></main>
<footer>ignore me too</footer>
</body>
</html>`

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	tool := New(WithHttpClient(srv.Client()))
	out, err := tool.Run(context.Background(), NewInput(srv.URL))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.Content, "# Heading") {
		t.Errorf("expect markdown heading, got:\n%s", out.Content)
	}
	if !strings.Contains(out.Content, "**important**") {
		t.Errorf("expect bold markdown, got:\n%s", out.Content)
	}
	if strings.Contains(out.Content, "ignore me") {
		t.Errorf("expect nav/footer removed, got:\n%s", out.Content)
	}
	if out.Metadata == nil || out.Metadata.Title != "Test Page" || out.Metadata.Author != "Jane Doe" {
		t.Errorf("unexpected metadata: %+v", out.Metadata)
	}
}

func TestRunBadURL(t *testing.T) {
	tool := New()
	if _, err := tool.Run(context.Background(), NewInput("not a url")); err == nil {
		t.Error("expect error for invalid URL")
	}
}

func TestRunHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	tool := New(WithHttpClient(srv.Client()))
	if _, err := tool.Run(context.Background(), NewInput(srv.URL)); err == nil {
		t.Error("expect error for non-200 response")
	}
}
