package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mgorski/filecat/models"

	_ "modernc.org/sqlite"
)

// setupTestStore creates a catalog store backed by a temporary SQLite file.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := OpenStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// insertTestFile inserts a file row with an optional typed record.
func insertTestFile(t *testing.T, store *Store, path string, size int64, meta *models.ExtractedMeta) int64 {
	t.Helper()

	record := models.FileRecord{
		Path:      path,
		Ext:       extensionOf(path),
		Size:      size,
		ScannedAt: time.Now(),
	}
	id, err := store.InsertEntry(context.Background(), record, meta)
	if err != nil {
		t.Fatalf("failed to insert test file %s: %v", path, err)
	}
	return id
}

// writeStubTool writes an executable shell script posing as an external
// inspector and returns its absolute path.
func writeStubTool(t *testing.T, dir, name, script string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatalf("failed to write stub tool %s: %v", name, err)
	}
	return path
}

// Minimal magic-byte fixtures. Content sniffing only needs the signature.
var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n" + "stub png payload")
	jpegHeader = []byte("\xff\xd8\xff\xe0" + "stub jpeg payload")
	pdfHeader  = []byte("%PDF-1.4\nstub pdf payload\n")
)

func writeTestFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write test file %s: %v", name, err)
	}
	return path
}

// testTools returns a tools config whose inspectors report fixed values.
func testTools(t *testing.T, dims, pdfOutput string) models.ToolsConfig {
	t.Helper()

	dir := t.TempDir()
	return models.ToolsConfig{
		ImageInspector: []string{writeStubTool(t, dir, "identify", "echo "+dims)},
		PDFInspector:   []string{writeStubTool(t, dir, "pdfinfo", "printf '"+pdfOutput+"'")},
		TimeoutSeconds: 10,
	}
}
