package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mgorski/filecat/models"

	_ "modernc.org/sqlite"
)

// Store is the catalog repository. Inserts are append-only; re-scanning the
// same tree adds duplicate file rows on purpose.
type Store struct {
	db *sql.DB
}

func OpenStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	// Pragmas go through the DSN so every pooled connection gets them;
	// db.Exec would configure only one connection and leave concurrent
	// writers without a busy timeout.
	dsn := "file:" + dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", dbPath, err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertEntry writes one file row plus its optional typed row in a single
// transaction, so a file never commits with a half-created image or
// document sibling. Safe for concurrent scan workers.
func (s *Store) InsertEntry(ctx context.Context, f models.FileRecord, meta *models.ExtractedMeta) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
        INSERT INTO files(path, ext, size, scanned_at)
        VALUES (?, ?, ?, ?)
    `, f.Path, f.Ext, f.Size, f.ScannedAt.Unix())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if meta != nil {
		switch meta.Kind {
		case models.MetaImage:
			_, err = tx.ExecContext(ctx, `
                INSERT INTO images(file_id, width, height)
                VALUES (?, ?, ?)
            `, id, meta.Width, meta.Height)
		case models.MetaDocument:
			_, err = tx.ExecContext(ctx, `
                INSERT INTO documents(file_id, pages)
                VALUES (?, ?)
            `, id, meta.Pages)
		}
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit entry for %s: %w", f.Path, err)
	}
	committed = true

	return id, nil
}

func (s *Store) TotalSize() (int64, error) {
	var total int64
	err := s.db.QueryRow(`SELECT COALESCE(SUM(size), 0) FROM files`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) CountFiles() (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ExtensionHistogram counts files per extension, the empty extension
// included, so the counts always partition the whole catalog. Ordering is
// the report engine's job.
func (s *Store) ExtensionHistogram() (map[string]int64, error) {
	rows, err := s.db.Query(`SELECT ext, COUNT(*) FROM files GROUP BY ext`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hist := make(map[string]int64)
	for rows.Next() {
		var ext string
		var cnt int64
		if err := rows.Scan(&ext, &cnt); err != nil {
			return nil, err
		}
		hist[ext] = cnt
	}
	return hist, rows.Err()
}

// TopBySize returns up to n files ordered by size descending. Rowid breaks
// ties, which keeps the order stable across runs (insertion order).
func (s *Store) TopBySize(n int) ([]models.FileRecord, error) {
	rows, err := s.db.Query(`
        SELECT id, path, ext, size, scanned_at
        FROM files
        ORDER BY size DESC, id ASC
        LIMIT ?
    `, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFileRows(rows)
}

func (s *Store) TopByArea(n int) ([]models.ImageReportRow, error) {
	rows, err := s.db.Query(`
        SELECT f.id, f.path, f.ext, f.size, f.scanned_at,
               i.file_id, i.width, i.height,
               i.width * i.height AS area
        FROM images i
        JOIN files f ON f.id = i.file_id
        ORDER BY area DESC, f.id ASC
        LIMIT ?
    `, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ImageReportRow
	for rows.Next() {
		var row models.ImageReportRow
		var scanned int64
		if err := rows.Scan(
			&row.File.ID, &row.File.Path, &row.File.Ext, &row.File.Size, &scanned,
			&row.Image.FileID, &row.Image.Width, &row.Image.Height,
			&row.Area,
		); err != nil {
			return nil, err
		}
		row.File.ScannedAt = time.Unix(scanned, 0)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) TopByPages(n int) ([]models.DocumentReportRow, error) {
	rows, err := s.db.Query(`
        SELECT f.id, f.path, f.ext, f.size, f.scanned_at,
               d.file_id, d.pages
        FROM documents d
        JOIN files f ON f.id = d.file_id
        ORDER BY d.pages DESC, f.id ASC
        LIMIT ?
    `, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DocumentReportRow
	for rows.Next() {
		var row models.DocumentReportRow
		var scanned int64
		if err := rows.Scan(
			&row.File.ID, &row.File.Path, &row.File.Ext, &row.File.Size, &scanned,
			&row.Document.FileID, &row.Document.Pages,
		); err != nil {
			return nil, err
		}
		row.File.ScannedAt = time.Unix(scanned, 0)
		out = append(out, row)
	}
	return out, rows.Err()
}

func scanFileRows(rows *sql.Rows) ([]models.FileRecord, error) {
	var out []models.FileRecord
	for rows.Next() {
		var f models.FileRecord
		var scanned int64
		if err := rows.Scan(&f.ID, &f.Path, &f.Ext, &f.Size, &scanned); err != nil {
			return nil, err
		}
		f.ScannedAt = time.Unix(scanned, 0)
		out = append(out, f)
	}
	return out, rows.Err()
}
