package webapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mgorski/filecat/models"
)

// setupTestWebApp creates a WebApp over a temporary catalog.
func setupTestWebApp(t *testing.T) *WebApp {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "catalog.db")
	configPath := filepath.Join(tmpDir, "filecat.yaml")

	config := fmt.Sprintf("catalog:\n  db_path: %s\n", dbPath)
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	webapp := &WebApp{ConfigPath: configPath}
	if err := webapp.LoadConfiguration(); err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}
	t.Cleanup(webapp.Close)

	webapp.Router = webapp.GetRouter()
	return webapp
}

func insertTestData(t *testing.T, webapp *WebApp) {
	t.Helper()

	entries := []struct {
		path string
		size int64
		meta *models.ExtractedMeta
	}{
		{"docs/notes.txt", 512, nil},
		{"img/photo.jpg", 2048, &models.ExtractedMeta{Kind: models.MetaImage, Width: 800, Height: 600}},
		{"docs/report.pdf", 4096, &models.ExtractedMeta{Kind: models.MetaDocument, Pages: 12}},
	}
	for _, e := range entries {
		record := models.FileRecord{
			Path:      e.path,
			Ext:       filepath.Ext(e.path)[1:],
			Size:      e.size,
			ScannedAt: time.Now(),
		}
		if _, err := webapp.store.InsertEntry(context.Background(), record, e.meta); err != nil {
			t.Fatalf("failed to insert test data: %v", err)
		}
	}
}

func get(t *testing.T, webapp *WebApp, url string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	webapp.Router.ServeHTTP(rec, req)
	return rec
}

func TestReportEndpoint(t *testing.T) {
	webapp := setupTestWebApp(t)
	insertTestData(t, webapp)

	rec := get(t, webapp, "/api/report")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var overview models.Overview
	if err := json.Unmarshal(rec.Body.Bytes(), &overview); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if overview.TotalSizeBytes != 512+2048+4096 {
		t.Errorf("expected total size %d, got %d", 512+2048+4096, overview.TotalSizeBytes)
	}
	if len(overview.TopFiles) != 3 {
		t.Errorf("expected 3 top files, got %d", len(overview.TopFiles))
	}
	if len(overview.TopImages) != 1 || overview.TopImages[0].Area != 480000 {
		t.Errorf("unexpected top images: %v", overview.TopImages)
	}
	if len(overview.TopDocuments) != 1 || overview.TopDocuments[0].Document.Pages != 12 {
		t.Errorf("unexpected top documents: %v", overview.TopDocuments)
	}
}

func TestExtensionsEndpoint(t *testing.T) {
	webapp := setupTestWebApp(t)
	insertTestData(t, webapp)

	rec := get(t, webapp, "/api/extensions")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var exts []models.ExtensionCount
	if err := json.Unmarshal(rec.Body.Bytes(), &exts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(exts) != 3 {
		t.Errorf("expected 3 extensions, got %d", len(exts))
	}
}

func TestTopFilesEndpointLimit(t *testing.T) {
	webapp := setupTestWebApp(t)
	insertTestData(t, webapp)

	rec := get(t, webapp, "/api/top/files?n=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var files []models.FileRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &files); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0].Path != "docs/report.pdf" {
		t.Errorf("expected largest file docs/report.pdf, got %s", files[0].Path)
	}
}

func TestNotFound(t *testing.T) {
	webapp := setupTestWebApp(t)

	rec := get(t, webapp, "/api/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
