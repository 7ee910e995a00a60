package tabular

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriter stages a file next to its destination and renames it into
// place on Commit, so readers never observe a half-written export.
type AtomicWriter struct {
	path      string   // Final destination
	temp      *os.File // Staged <dir>/.<name>.tmp.<random>
	committed bool
	closed    bool
}

// NewAtomicWriter creates the staging file in the destination directory.
func NewAtomicWriter(path string) (*AtomicWriter, error) {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if err := temp.Chmod(0644); err != nil {
		_ = temp.Close()
		_ = os.Remove(temp.Name())
		return nil, fmt.Errorf("chmod temp file: %w", err)
	}
	return &AtomicWriter{path: path, temp: temp}, nil
}

// Write appends to the staged file.
func (w *AtomicWriter) Write(p []byte) (int, error) {
	if w.committed {
		return 0, fmt.Errorf("write already committed")
	}
	if w.closed {
		return 0, fmt.Errorf("write already rolled back")
	}
	return w.temp.Write(p)
}

// TempPath returns the path of the staged file.
func (w *AtomicWriter) TempPath() string {
	return w.temp.Name()
}

// Commit flushes the staged file and renames it over the destination.
func (w *AtomicWriter) Commit() error {
	if w.committed {
		return fmt.Errorf("write already committed")
	}
	if w.closed {
		return fmt.Errorf("write already rolled back")
	}

	if err := w.temp.Sync(); err != nil {
		_ = w.Rollback()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := w.temp.Close(); err != nil {
		w.closed = true
		_ = os.Remove(w.temp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	w.closed = true

	if err := os.Rename(w.temp.Name(), w.path); err != nil {
		_ = os.Remove(w.temp.Name())
		return fmt.Errorf("rename into place: %w", err)
	}

	w.committed = true
	return nil
}

// Rollback discards the staged file.
func (w *AtomicWriter) Rollback() error {
	if w.committed {
		return fmt.Errorf("cannot rollback committed write")
	}

	if !w.closed {
		w.closed = true
		if err := w.temp.Close(); err != nil {
			_ = os.Remove(w.temp.Name())
			return fmt.Errorf("rollback: %w", err)
		}
	}

	if err := os.Remove(w.temp.Name()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
