package app

import "fmt"

// ErrorKind classifies why a single file had to be skipped during a scan.
type ErrorKind string

const (
	ErrIO         ErrorKind = "io"
	ErrExtraction ErrorKind = "extraction"
	ErrStore      ErrorKind = "store"
)

// ScanError wraps a per-file failure with its classification. Scan never
// aborts on one of these; it lands in the summary's failures list instead.
type ScanError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s error for %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func ioError(path string, err error) *ScanError {
	return &ScanError{Kind: ErrIO, Path: path, Err: err}
}

func extractionError(path string, err error) *ScanError {
	return &ScanError{Kind: ErrExtraction, Path: path, Err: err}
}

func storeError(path string, err error) *ScanError {
	return &ScanError{Kind: ErrStore, Path: path, Err: err}
}
