package disk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"BezierBoard/internal/state"
)

// Save writes the encoded document to path. The file is replaced in one step
// so a failed save never leaves a half-written document behind.
func Save(path string, doc state.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	err = WriteFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return fmt.Errorf("save document %s: %w", path, err)
	}
	return nil
}

// Load reads and decodes the document at path. Read failures are returned
// wrapped; malformed content yields a *DecodeError.
func Load(path string) (state.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return state.Document{}, fmt.Errorf("load document: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return state.Document{}, fmt.Errorf("load document %s: %w", path, err)
	}
	return doc, nil
}

// WriteFileAtomic streams write's output into a temporary file next to path
// and renames it over path once everything has been flushed and closed.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = f.Chmod(0o644); err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
