package models

import "time"

// MediaType is the coarse classification of file content, determined by
// sniffing magic bytes rather than trusting the filename extension.
type MediaType int

const (
	MediaOther MediaType = iota
	MediaImage
	MediaPDF
)

func (m MediaType) String() string {
	switch m {
	case MediaImage:
		return "image"
	case MediaPDF:
		return "pdf"
	default:
		return "other"
	}
}

type FileRecord struct {
	ID        int64     `db:"id"`
	Path      string    `db:"path"`
	Ext       string    `db:"ext"`
	Size      int64     `db:"size"`
	ScannedAt time.Time `db:"scanned_at"`
}

type ImageRecord struct {
	FileID int64 `db:"file_id"`
	Width  int64 `db:"width"`
	Height int64 `db:"height"`
}

// Area is the sort key for image reports. Derived, never stored.
func (i ImageRecord) Area() int64 {
	return i.Width * i.Height
}

type DocumentRecord struct {
	FileID int64 `db:"file_id"`
	Pages  int64 `db:"pages"`
}

// MetaKind tags ExtractedMeta so record linking never depends on which
// fields happen to be set.
type MetaKind int

const (
	MetaNone MetaKind = iota
	MetaImage
	MetaDocument
)

// ExtractedMeta is the result of metadata extraction for a single file.
// Kind decides which typed record (if any) gets attached to the file row.
type ExtractedMeta struct {
	Kind   MetaKind
	Width  int64
	Height int64
	Pages  int64
}
