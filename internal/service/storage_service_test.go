package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kpi_tracker_backend/internal/config"
	"kpi_tracker_backend/internal/util"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://photos.example.ac.th/image.php?id=183", "183"},
		{"https://photos.example.ac.th/image.php?size=lg&id=7", "7"},
		{"/uploads/abc.png", ""},
		{"http://localhost:9000/kpi-tracker/abc.png", ""},
		{"://broken", ""},
	}
	for _, tt := range tests {
		if got := ExtractPublicID(tt.url); got != tt.want {
			t.Errorf("ExtractPublicID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestPhotoCloudUploadAndDelete(t *testing.T) {
	var gotKey, gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotKey = r.FormValue("api_key")

		switch r.URL.Path {
		case "/api/upload.php":
			w.Write([]byte(`{"id":"183","url":""}`))
		case "/api/delete.php":
			gotID = r.FormValue("id")
			w.Write([]byte(`{"ok":true}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	provider := NewPhotoCloudProvider(&config.StorageConfig{
		PhotoCloudURL: server.URL,
		PhotoCloudKey: "k-123",
	})

	url, err := provider.Upload(context.Background(), "a.png", strings.NewReader("png-bytes"), 9, "image/png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if want := server.URL + "/image.php?id=183"; url != want {
		t.Errorf("url = %q, want %q", url, want)
	}
	if gotKey != "k-123" {
		t.Errorf("api_key = %q, want k-123", gotKey)
	}

	if err := provider.Delete(context.Background(), "183"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotID != "183" {
		t.Errorf("deleted id = %q, want 183", gotID)
	}
}

func TestPhotoCloudUploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusForbidden)
	}))
	defer server.Close()

	provider := NewPhotoCloudProvider(&config.StorageConfig{PhotoCloudURL: server.URL})

	if _, err := provider.Upload(context.Background(), "a.png", strings.NewReader("x"), 1, "image/png"); err == nil {
		t.Error("upload against a failing host should error")
	}
}

func TestLocalProviderURL(t *testing.T) {
	p := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: t.TempDir()}}
	if got := p.GetURL("abc.png"); got != "/uploads/abc.png" {
		t.Errorf("GetURL = %q", got)
	}
}

func TestLocalProviderRoundTrip(t *testing.T) {
	p := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: t.TempDir()}}

	url, err := p.Upload(context.Background(), "note.png", strings.NewReader("data"), 4, "image/png")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "/uploads/note.png" {
		t.Errorf("url = %q", url)
	}

	if err := p.Delete(context.Background(), "note.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestNewStorageServiceProviderSelection(t *testing.T) {
	local := NewStorageService(&config.Config{Storage: config.StorageConfig{Type: util.StorageLocal}})
	if _, ok := local.Provider.(*LocalStorageProvider); !ok {
		t.Errorf("local provider type = %T", local.Provider)
	}

	pc := NewStorageService(&config.Config{Storage: config.StorageConfig{Type: util.StoragePhotoCloud}})
	if _, ok := pc.Provider.(*PhotoCloudProvider); !ok {
		t.Errorf("photocloud provider type = %T", pc.Provider)
	}

	// Unknown types fall back to local storage.
	fallback := NewStorageService(&config.Config{Storage: config.StorageConfig{Type: "cloudinary"}})
	if _, ok := fallback.Provider.(*LocalStorageProvider); !ok {
		t.Errorf("fallback provider type = %T", fallback.Provider)
	}
}
