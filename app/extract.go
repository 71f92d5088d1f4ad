package app

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/mgorski/filecat/models"
)

// Extractor runs the external inspection tools. One process per file, no
// retries; a bounded timeout keeps a hung inspector from stalling a scan.
type Extractor struct {
	imageCmd []string
	pdfCmd   []string
	timeout  time.Duration
}

func NewExtractor(cfg models.ToolsConfig) *Extractor {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Extractor{
		imageCmd: cfg.ImageInspector,
		pdfCmd:   cfg.PDFInspector,
		timeout:  timeout,
	}
}

// ImageDimensions asks the image inspector for pixel dimensions. The tool
// is expected to print "<width>x<height>" on stdout.
func (e *Extractor) ImageDimensions(ctx context.Context, path string) (int64, int64, error) {
	out, err := e.run(ctx, e.imageCmd, path)
	if err != nil {
		return 0, 0, err
	}

	dims := strings.TrimSpace(out)
	ws, hs, ok := strings.Cut(dims, "x")
	if !ok {
		return 0, 0, fmt.Errorf("unexpected inspector output %q", dims)
	}

	w, err := strconv.ParseInt(strings.TrimSpace(ws), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad width in inspector output %q: %w", dims, err)
	}
	h, err := strconv.ParseInt(strings.TrimSpace(hs), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad height in inspector output %q: %w", dims, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("non-positive dimensions %dx%d", w, h)
	}

	return w, h, nil
}

// PageCount asks the PDF inspector for the page count. The tool prints
// "Key: Value" lines; the line whose key equals "Pages" (case-insensitive,
// trimmed) carries the count. Matching by key instead of line position
// survives inspector versions that reorder or add lines.
func (e *Extractor) PageCount(ctx context.Context, path string) (int64, error) {
	out, err := e.run(ctx, e.pdfCmd, path)
	if err != nil {
		return 0, err
	}

	for _, line := range strings.Split(out, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(key), "Pages") {
			continue
		}

		pages, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad page count in line %q: %w", strings.TrimSpace(line), err)
		}
		if pages <= 0 {
			return 0, fmt.Errorf("non-positive page count %d", pages)
		}
		return pages, nil
	}

	return 0, errors.New("no Pages line in inspector output")
}

func (e *Extractor) run(ctx context.Context, argv []string, path string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("inspector command not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := append(append([]string(nil), argv[1:]...), path)
	cmd := exec.CommandContext(ctx, argv[0], args...)
	// Don't wait on orphaned grandchildren holding the stdout pipe after
	// the timeout kill.
	cmd.WaitDelay = time.Second

	out, err := cmd.Output()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("inspector %s timed out after %s", argv[0], e.timeout)
	}
	if err != nil {
		return "", fmt.Errorf("inspector %s failed: %w", argv[0], err)
	}

	return string(out), nil
}
