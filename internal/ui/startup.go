package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"BezierBoard/internal/assets"
	"BezierBoard/internal/disk"
	"BezierBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// ErrDialogCancelled is returned when the user closes the file picker
// without choosing anything.
var ErrDialogCancelled = errors.New("file dialog cancelled")

// Source is what a session starts from: a document and its background image.
type Source struct {
	Document state.Document
	Image    *assets.Image
}

// IsDocumentPath reports whether path names a saved document rather than an
// image.
func IsDocumentPath(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// OpenSource loads path. A document (by extension ext) is decoded and its
// source path loaded as the background; a relative source path is taken
// relative to the document. Any other file is loaded as an image and starts a
// new, empty document.
func OpenSource(path, ext string) (Source, error) {
	if !IsDocumentPath(path, ext) {
		img, err := assets.LoadImage(path)
		if err != nil {
			return Source{}, err
		}
		return Source{Document: state.Document{SourcePath: path}, Image: img}, nil
	}

	doc, err := disk.Load(path)
	if err != nil {
		return Source{}, err
	}
	imgPath := doc.SourcePath
	if imgPath != "" && !filepath.IsAbs(imgPath) {
		imgPath = filepath.Join(filepath.Dir(path), imgPath)
	}
	img, err := assets.LoadImage(imgPath)
	if err != nil {
		return Source{}, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	return Source{Document: doc, Image: img}, nil
}

// pickerExtensions lists the extensions the open dialog accepts.
func pickerExtensions(docExt string) []string {
	exts := append([]string(nil), assets.ImageExtensions...)
	return append(exts, docExt)
}

// pickSource shows the open dialog on w and passes the chosen path to done,
// or ErrDialogCancelled.
func pickSource(w fyne.Window, docExt string, done func(path string, err error)) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			done("", fmt.Errorf("file dialog: %w", err))
			return
		}
		if r == nil {
			done("", ErrDialogCancelled)
			return
		}
		path := r.URI().Path()
		r.Close()
		done(path, nil)
	}, w)
	d.SetFilter(storage.NewExtensionFileFilter(pickerExtensions(docExt)))
	d.Show()
}

// pickDestination asks for a folder and then a file name, prefilled from
// suggested, and passes the joined path to done. Nothing happens when either
// step is cancelled. The destination itself is never opened here, so an
// existing file stays intact until the command replaces it.
func pickDestination(w fyne.Window, suggested string, done func(path string), fail func(error)) {
	d := dialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			fail(fmt.Errorf("file dialog: %w", err))
			return
		}
		if dir == nil {
			return
		}
		name := widget.NewEntry()
		name.SetText(filepath.Base(suggested))
		items := []*widget.FormItem{widget.NewFormItem("File name", name)}
		dialog.ShowForm("Save as", "Save", "Cancel", items, func(ok bool) {
			if !ok {
				return
			}
			path, err := destinationPath(dir.Path(), name.Text, filepath.Ext(suggested))
			if err != nil {
				fail(err)
				return
			}
			done(path)
		}, w)
	}, w)
	if dir, err := storage.ListerForURI(storage.NewFileURI(filepath.Dir(suggested))); err == nil {
		d.SetLocation(dir)
	}
	d.Show()
}

// destinationPath joins dir and a typed file name, appending ext when the name
// has no extension of its own.
func destinationPath(dir, name, ext string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "" || name == "." || name == "..":
		return "", errors.New("file name is empty")
	case strings.ContainsAny(name, `/\`):
		return "", fmt.Errorf("file name %q must not contain a path separator", name)
	}
	if filepath.Ext(name) == "" {
		name += ext
	}
	return filepath.Join(dir, name), nil
}
