package models

type ExtensionCount struct {
	Ext   string `json:"ext"`
	Count int64  `json:"count"`
}

type ImageReportRow struct {
	File  FileRecord  `json:"file"`
	Image ImageRecord `json:"image"`
	Area  int64       `json:"area"`
}

type DocumentReportRow struct {
	File     FileRecord     `json:"file"`
	Document DocumentRecord `json:"document"`
}

// Overview bundles everything the presentation surfaces show on one page.
type Overview struct {
	TotalSizeBytes int64               `json:"total_size_bytes"`
	TotalSizeGiB   float64             `json:"total_size_gib"`
	Extensions     []ExtensionCount    `json:"extensions"`
	TopFiles       []FileRecord        `json:"top_files"`
	TopImages      []ImageReportRow    `json:"top_images"`
	TopDocuments   []DocumentReportRow `json:"top_documents"`
}

// Failure describes one file the scanner had to skip.
type Failure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// ScanSummary is what a completed scan hands back to the caller. Failures
// holds every skipped file; nothing is dropped silently.
type ScanSummary struct {
	Root           string    `json:"root"`
	FilesCataloged int       `json:"files_cataloged"`
	Images         int       `json:"images"`
	Documents      int       `json:"documents"`
	Failures       []Failure `json:"failures"`
}
