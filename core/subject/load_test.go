package subject

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "essay.txt", "\n  A short essay about AI.\n")

	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A short essay about AI." {
		t.Errorf("got %q", got)
	}
}

func TestLoad_HTMLFileByExtension(t *testing.T) {
	path := writeFile(t, "essay.html", "Plain words and <em>emphasis</em>")

	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "<em>") {
		t.Errorf("expected HTML conversion, got %q", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoad_EmptySource(t *testing.T) {
	if _, err := Load(context.Background(), "  "); !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestLoader_Stdin(t *testing.T) {
	l := &Loader{Stdin: strings.NewReader("essay from a pipe\n")}

	got, err := l.Load(context.Background(), StdinSource)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "essay from a pipe" {
		t.Errorf("got %q", got)
	}
}

func TestLoader_EmptyStdin(t *testing.T) {
	l := &Loader{Stdin: strings.NewReader("   ")}
	if _, err := l.Load(context.Background(), StdinSource); !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestLoader_TooLarge(t *testing.T) {
	l := &Loader{Stdin: strings.NewReader(strings.Repeat("a", 64)), MaxBytes: 16}
	if _, err := l.Load(context.Background(), StdinSource); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestLoader_URL(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("Essay body with <b>bold</b> text."))
	}))
	defer server.Close()

	got, err := (&Loader{}).Load(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "**bold**") || strings.Contains(got, "<b>") {
		t.Errorf("expected markdown conversion, got %q", got)
	}
	if userAgent != defaultUserAgent {
		t.Errorf("User-Agent = %q", userAgent)
	}
}

func TestLoader_URLPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("  just text  "))
	}))
	defer server.Close()

	got, err := (&Loader{HTTPClient: server.Client()}).Load(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "just text" {
		t.Errorf("got %q", got)
	}
}

func TestLoader_URLStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := (&Loader{}).Load(context.Background(), server.URL)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected 404 error, got %v", err)
	}
}

func TestLoader_URLTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	l := &Loader{FetchTimeout: 20 * time.Millisecond}
	_, err := l.Load(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}
