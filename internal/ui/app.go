package ui

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"BezierBoard/internal/assets"
	"BezierBoard/internal/config"
	"BezierBoard/internal/disk"
	"BezierBoard/internal/net"
	"BezierBoard/internal/render"
	"BezierBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

const windowTitle = "Bezier tool"

// Options configures RunApp.
type Options struct {
	Config config.Config
	Log    *zap.Logger
	// Path is opened directly instead of asking with the file picker.
	Path string
}

type board struct {
	app fyne.App
	win fyne.Window
	cfg config.Config
	log *zap.Logger

	share *net.Server
	err   error
}

// RunApp opens the main window and blocks until it is closed. The returned
// error is the startup failure that ended the session early, if any.
func RunApp(opts Options) error {
	a := app.New()
	w := a.NewWindow(windowTitle)
	w.Resize(fyne.NewSize(opts.Config.Window.Width, opts.Config.Window.Height))
	w.SetContent(widget.NewLabel("Choose an image to annotate"))

	b := &board{app: a, win: w, cfg: opts.Config, log: opts.Log.Named("ui")}
	a.Lifecycle().SetOnStarted(func() {
		if opts.Path != "" {
			b.open(opts.Path)
		} else {
			b.pick()
		}
	})
	a.Lifecycle().SetOnStopped(b.stopSharing)

	w.ShowAndRun()
	return b.err
}

func (b *board) pick() {
	pickSource(b.win, b.cfg.Document.Extension, func(path string, err error) {
		if err != nil {
			b.fail(err)
			return
		}
		b.open(path)
	})
}

// open starts a session from path. An unreadable document sends the user
// back to the picker; any other failure ends the application.
func (b *board) open(path string) {
	if !IsDocumentPath(path, b.cfg.Document.Extension) && !assets.IsImagePath(path) {
		b.log.Warn("unrecognised extension, decoding anyway", zap.String("path", path))
	}
	src, err := OpenSource(path, b.cfg.Document.Extension)
	var decodeErr *disk.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		b.log.Warn("document unreadable", zap.String("path", path), zap.Error(err))
		d := dialog.NewError(err, b.win)
		d.SetOnClosed(b.pick)
		d.Show()
	case err != nil:
		b.fail(err)
	default:
		b.start(src)
	}
}

func (b *board) fail(err error) {
	b.err = err
	b.log.Error("startup failed", zap.Error(err))
	d := dialog.NewError(err, b.win)
	d.SetOnClosed(b.app.Quit)
	d.Show()
}

func (b *board) start(src Source) {
	session := state.NewSession(src.Document)
	log := b.log.With(zap.String("session", session.ID))
	log.Info("session started",
		zap.String("source", session.SourcePath()),
		zap.String("format", src.Image.Format),
		zap.Int("curves", session.Curves().Len()))

	style := render.Style{CurveWidth: b.cfg.Canvas.CurveWidth, BoundsWidth: b.cfg.Canvas.BoundsWidth}
	vector := NewCurveCanvas(session, render.NewCache(style), b.cfg.Canvas.FlattenTolerance)
	overlay := NewOverlay(src.Image.Image, vector)
	sidebar := NewSidebar(session)
	sidebar.Hide()
	status := widget.NewLabel("Ready")

	ctrl := NewController(session, statusReporter{win: b.win, status: status}, log)
	ctrl.Extension = b.cfg.Document.Extension
	ctrl.Background = src.Image.Image
	ctrl.Size = vector.layoutSize
	ctrl.Style = style

	changed := func() {
		vector.Invalidate()
		sidebar.Refresh()
		b.publish(session, log)
	}
	session.OnNewCurve = func(c state.Curve) {
		log.Debug("curve added", zap.Stringer("from", c.From), zap.Stringer("to", c.To), zap.Stringer("control", c.Control))
		changed()
	}
	session.OnClear = changed

	var content *fyne.Container
	bar := NewCommandBar(func(cmd Command) {
		log.Debug("command", zap.Stringer("command", cmd))
		switch cmd {
		case CmdSave:
			b.saveAs(ctrl.SuggestPath(ctrl.Extension), ctrl.Save)
		case CmdClear:
			ctrl.Clear()
		case CmdExport:
			b.saveAs(ctrl.SuggestPath(".svg"), ctrl.Export)
		case CmdExportPDF:
			b.saveAs(ctrl.SuggestPath(".pdf"), ctrl.ExportPDF)
		case CmdExportPNG:
			b.saveAs(ctrl.SuggestPath(".png"), ctrl.ExportPNG)
		case CmdToggleSidebar:
			if sidebar.Visible() {
				sidebar.Hide()
			} else {
				sidebar.Show()
			}
			content.Refresh()
		}
	})
	content = container.NewBorder(bar, status, nil, sidebar, overlay)
	b.win.SetContent(content)
	b.win.SetTitle(windowTitle + " - " + filepath.Base(session.SourcePath()))

	b.startSharing(session, log)
}

// saveAs asks for a destination and runs write on it. write reports its own
// outcome.
func (b *board) saveAs(suggested string, write func(path string) error) {
	pickDestination(b.win, suggested, func(path string) { write(path) }, func(err error) {
		dialog.ShowError(err, b.win)
	})
}

func (b *board) startSharing(session *state.Session, log *zap.Logger) {
	if !b.cfg.Share.Enabled {
		return
	}
	log = log.Named("share")
	srv, err := net.Start(b.cfg.Share, session.ID, net.NewHub(log), log)
	if err != nil {
		log.Error("share unavailable", zap.Error(err))
		dialog.ShowError(err, b.win)
		return
	}
	b.share = srv
	b.publish(session, log)
}

func (b *board) publish(session *state.Session, log *zap.Logger) {
	if b.share == nil {
		return
	}
	if err := b.share.Hub.Publish(session.Snapshot()); err != nil {
		log.Error("publish snapshot", zap.Error(err))
	}
}

func (b *board) stopSharing() {
	if b.share == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := b.share.Close(ctx); err != nil {
		b.log.Warn("stop sharing", zap.Error(err))
	}
}

// statusReporter shows errors as dialogs and successes in the status bar.
type statusReporter struct {
	win    fyne.Window
	status *widget.Label
}

func (r statusReporter) ShowError(err error) { dialog.ShowError(err, r.win) }

func (r statusReporter) ShowInfo(title, message string) {
	r.status.SetText(title + ": " + message)
}
