package app

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mgorski/filecat/models"
)

// Scanner walks a directory tree and catalogs every regular file it finds.
// The per-file pipeline (stat, classify, extract, insert) has no cross-file
// dependencies, so a bounded worker pool runs it concurrently; the store is
// the only synchronization point.
type Scanner struct {
	store        *Store
	extractor    *Extractor
	excludePaths []string
	numWorkers   int
}

func NewScanner(store *Store, extractor *Extractor, excludePaths []string, numWorkers int) *Scanner {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Scanner{
		store:        store,
		extractor:    extractor,
		excludePaths: excludePaths,
		numWorkers:   numWorkers,
	}
}

type fileCandidate struct {
	path string
	size int64
}

// Scan catalogs everything under root. It fails only when root itself
// cannot be enumerated; every per-file problem is recorded in the summary's
// failures list and the scan moves on.
func (s *Scanner) Scan(ctx context.Context, root string) (*models.ScanSummary, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	summary := &models.ScanSummary{Root: root}

	var mu sync.Mutex
	addFailure := func(path string, err error) {
		mu.Lock()
		summary.Failures = append(summary.Failures, models.Failure{Path: path, Reason: err.Error()})
		mu.Unlock()
		log.Printf("Skipping %s: %v", path, err)
	}

	candidates := make(chan fileCandidate, 1024)
	walkErr := make(chan error, 1)

	go func() {
		defer close(candidates)
		walkErr <- s.walk(ctx, root, candidates, addFailure)
	}()

	var cataloged, images, documents int64
	var wg sync.WaitGroup
	for i := 0; i < s.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cand := range candidates {
				meta, err := s.processFile(ctx, cand)
				if err != nil {
					addFailure(cand.path, err)
					continue
				}
				atomic.AddInt64(&cataloged, 1)
				switch meta {
				case models.MetaImage:
					atomic.AddInt64(&images, 1)
				case models.MetaDocument:
					atomic.AddInt64(&documents, 1)
				}
			}
		}()
	}
	wg.Wait()

	if err := <-walkErr; err != nil {
		return nil, err
	}

	summary.FilesCataloged = int(cataloged)
	summary.Images = int(images)
	summary.Documents = int(documents)

	log.Printf("Scan of %s completed: %d files cataloged (%d images, %d documents), %d skipped",
		root, summary.FilesCataloged, summary.Images, summary.Documents, len(summary.Failures))

	return summary, nil
}

// walk enumerates regular files under root. An unreadable root is fatal;
// anything unreadable below it is recorded and skipped.
func (s *Scanner) walk(ctx context.Context, root string, out chan<- fileCandidate, addFailure func(string, error)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("failed to enumerate root %s: %w", root, err)
			}
			addFailure(path, ioError(path, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if s.excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || s.excluded(path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			addFailure(path, ioError(path, err))
			return nil
		}

		select {
		case out <- fileCandidate{path: path, size: info.Size()}:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	})
}

func (s *Scanner) excluded(path string) bool {
	for _, exclude := range s.excludePaths {
		if matched, _ := filepath.Match(exclude, path); matched {
			return true
		}
		// Prefix matches only on a path boundary, so excluding /data/tmp
		// does not drag /data/tmpfiles along.
		if path == exclude || strings.HasPrefix(path, exclude+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// processFile runs the pipeline for one candidate. A failed extraction
// skips the whole file so no file row ever commits without the typed row
// its media type calls for.
func (s *Scanner) processFile(ctx context.Context, cand fileCandidate) (models.MetaKind, error) {
	media, err := Classify(cand.path)
	if err != nil {
		return models.MetaNone, ioError(cand.path, err)
	}

	meta := models.ExtractedMeta{Kind: models.MetaNone}
	switch media {
	case models.MediaImage:
		w, h, err := s.extractor.ImageDimensions(ctx, cand.path)
		if err != nil {
			return models.MetaNone, extractionError(cand.path, err)
		}
		meta = models.ExtractedMeta{Kind: models.MetaImage, Width: w, Height: h}
	case models.MediaPDF:
		pages, err := s.extractor.PageCount(ctx, cand.path)
		if err != nil {
			return models.MetaNone, extractionError(cand.path, err)
		}
		meta = models.ExtractedMeta{Kind: models.MetaDocument, Pages: pages}
	}

	record := models.FileRecord{
		Path:      cand.path,
		Ext:       extensionOf(cand.path),
		Size:      cand.size,
		ScannedAt: time.Now(),
	}

	var metaPtr *models.ExtractedMeta
	if meta.Kind != models.MetaNone {
		metaPtr = &meta
	}
	if _, err := s.store.InsertEntry(ctx, record, metaPtr); err != nil {
		return models.MetaNone, storeError(cand.path, err)
	}

	return meta.Kind, nil
}

// extensionOf returns the lowercased text after the last dot of the
// filename, without the dot. Empty when the name has no dot.
func extensionOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filepath.Base(path)), "."))
}
