package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Command is a discrete action emitted by the command bar.
type Command int

const (
	CmdSave Command = iota + 1
	CmdClear
	CmdExport
	CmdExportPDF
	CmdExportPNG
	CmdToggleSidebar
)

func (c Command) String() string {
	switch c {
	case CmdSave:
		return "save"
	case CmdClear:
		return "clear"
	case CmdExport:
		return "export"
	case CmdExportPDF:
		return "export-pdf"
	case CmdExportPNG:
		return "export-png"
	case CmdToggleSidebar:
		return "toggle-sidebar"
	default:
		return "unknown"
	}
}

// NewCommandBar returns a toolbar whose buttons pass their command to
// dispatch.
func NewCommandBar(dispatch func(Command)) *widget.Toolbar {
	action := func(cmd Command, icon fyne.Resource) widget.ToolbarItem {
		return widget.NewToolbarAction(icon, func() { dispatch(cmd) })
	}
	return widget.NewToolbar(
		action(CmdSave, theme.DocumentSaveIcon()),
		action(CmdClear, theme.ContentClearIcon()),
		widget.NewToolbarSeparator(),
		action(CmdExport, theme.UploadIcon()),
		action(CmdExportPDF, theme.DocumentPrintIcon()),
		action(CmdExportPNG, theme.FileImageIcon()),
		widget.NewToolbarSpacer(),
		action(CmdToggleSidebar, theme.ListIcon()),
	)
}
