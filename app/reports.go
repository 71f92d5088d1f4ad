package app

import (
	"sort"

	"github.com/mgorski/filecat/models"
)

const topReportSize = 10

// Reporter answers the aggregate queries over the catalog. Read-only.
type Reporter struct {
	store *Store
}

func NewReporter(store *Store) *Reporter {
	return &Reporter{store: store}
}

func (r *Reporter) TotalSizeBytes() (int64, error) {
	return r.store.TotalSize()
}

func (r *Reporter) TotalSizeGiB() (float64, error) {
	total, err := r.store.TotalSize()
	if err != nil {
		return 0, err
	}
	return float64(total) / (1 << 30), nil
}

// ExtensionsByCount orders the histogram by count descending. Equal counts
// fall back to extension ascending so the output is deterministic.
func (r *Reporter) ExtensionsByCount() ([]models.ExtensionCount, error) {
	hist, err := r.store.ExtensionHistogram()
	if err != nil {
		return nil, err
	}

	out := make([]models.ExtensionCount, 0, len(hist))
	for ext, cnt := range hist {
		out = append(out, models.ExtensionCount{Ext: ext, Count: cnt})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Ext < out[j].Ext
	})
	return out, nil
}

func (r *Reporter) TopFiles(n int) ([]models.FileRecord, error) {
	return r.store.TopBySize(n)
}

func (r *Reporter) TopImages(n int) ([]models.ImageReportRow, error) {
	return r.store.TopByArea(n)
}

func (r *Reporter) TopDocuments(n int) ([]models.DocumentReportRow, error) {
	return r.store.TopByPages(n)
}

// Overview bundles the standard reports for the presentation surfaces.
func (r *Reporter) Overview() (*models.Overview, error) {
	total, err := r.store.TotalSize()
	if err != nil {
		return nil, err
	}
	exts, err := r.ExtensionsByCount()
	if err != nil {
		return nil, err
	}
	topFiles, err := r.store.TopBySize(topReportSize)
	if err != nil {
		return nil, err
	}
	topImages, err := r.store.TopByArea(topReportSize)
	if err != nil {
		return nil, err
	}
	topDocuments, err := r.store.TopByPages(topReportSize)
	if err != nil {
		return nil, err
	}

	return &models.Overview{
		TotalSizeBytes: total,
		TotalSizeGiB:   float64(total) / (1 << 30),
		Extensions:     exts,
		TopFiles:       topFiles,
		TopImages:      topImages,
		TopDocuments:   topDocuments,
	}, nil
}
