package repositories

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "bvdu-bank/internal/errors"
)

const maxLineSize = 1 << 20

func persistenceError(op, path string, err error) error {
	return fmt.Errorf("failed to %s %s: %w: %w", op, filepath.Base(path), apperrors.ErrPersistence, err)
}

// LoadTable reads every line of path through decode. A missing file is an empty table.
// Loading stops at the first line that does not decode; the rows before it are kept.
func LoadTable[T any](path string, decode func(string) (T, error), logger *slog.Logger) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, persistenceError("open", path, err)
	}
	defer f.Close()

	var rows []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || line == "\r" {
			continue
		}
		row, err := decode(line)
		if err != nil {
			logger.Warn("stopped loading table at malformed line",
				"table", filepath.Base(path),
				"line", lineNo,
				"error", err)
			return rows, nil
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return rows, persistenceError("read", path, err)
	}
	return rows, nil
}

// SaveTable rewrites path with one encoded line per row. The file is written to a
// temporary sibling and renamed into place, so readers see either the old or the new table.
func SaveTable[T any](path string, rows []T, encode func(T) string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return persistenceError("create directory for", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return persistenceError("create temp file for", path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, row := range rows {
		if _, err := w.WriteString(encode(row) + "\n"); err != nil {
			return persistenceError("write", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return persistenceError("write", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return persistenceError("sync", path, err)
	}
	if err := tmp.Close(); err != nil {
		return persistenceError("close", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return persistenceError("replace", path, err)
	}
	committed = true
	return nil
}

// AppendRecord adds a single line to the end of path, creating the file if needed
func AppendRecord(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return persistenceError("open", path, err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return persistenceError("append to", path, err)
	}
	if err := f.Close(); err != nil {
		return persistenceError("close", path, err)
	}
	return nil
}

// Touch creates an empty file if it does not exist yet
func Touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return persistenceError("create", path, err)
	}
	return f.Close()
}
