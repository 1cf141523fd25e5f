// The GTK3 spoke of the hello world addon, built as a plugin so that the addon binary
// itself does not need GTK:
//
//	go build -buildmode=plugin -o gui.so ./gui
package main

import (
	// this is the addon package name - here it refers to the parent directory
	"github.com/grandchild/hello_world"

	"errors"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/sirupsen/logrus"
)

const gladeFile = "gui/hello_world.glade"

var window *SpokeWindow

type (
	// EventHandler defines a function to be called when a certain event, identified by
	// a string key, is emitted from the GTK GUI.
	EventHandler map[string]interface{}
	// SpokeWindow shows the spoke in a window of its own: a text box for the lines, a
	// check button for the reverse flag and a status line below them.
	SpokeWindow struct {
		spoke        *hello_world.Spoke
		translator   *hello_world.Translator
		builder      *gtk.Builder
		win          *gtk.Window
		textBuffer   *gtk.TextBuffer
		reverseCheck *gtk.CheckButton
		statusLabel  *gtk.Label
		refreshing   bool
		applied      bool
	}
)

// guiEventHandler returns an EventHandler that handles events from the GTK3 elements in
// the .glade GUI-definition file.
func guiEventHandler(w *SpokeWindow) EventHandler {
	return EventHandler{
		"on_apply_clicked":   func() { w.apply() },
		"on_cancel_clicked":  func() { gtk.MainQuit() },
		"on_text_changed":    func() { w.edited() },
		"on_reverse_toggled": func() { w.edited() },
		"on_main_destroy":    func() { gtk.MainQuit() },
	}
}

// NewSpokeWindow creates the spoke window for the given spoke. The window is stored in
// the global variable "window", and can then be run with "RunSpokeWindow()".
func NewSpokeWindow(spoke *hello_world.Spoke, translator *hello_world.Translator) error {
	err := gtk.InitCheck(nil)
	if err != nil {
		return err
	}
	glade, err := hello_world.GetResource(gladeFile)
	if err != nil {
		return err
	}
	builder, err := gtk.BuilderNewFromString(glade)
	if err != nil {
		return err
	}
	w := &SpokeWindow{
		spoke:        spoke,
		translator:   translator,
		builder:      builder,
		win:          builderObject[*gtk.Window](builder, "spoke-window"),
		textBuffer:   builderObject[*gtk.TextBuffer](builder, "text-buffer"),
		reverseCheck: builderObject[*gtk.CheckButton](builder, "reverse-check"),
		statusLabel:  builderObject[*gtk.Label](builder, "status-label"),
	}
	if w.win == nil || w.textBuffer == nil || w.reverseCheck == nil || w.statusLabel == nil {
		return errors.New("incomplete GUI definition in " + gladeFile)
	}
	builder.ConnectSignals(guiEventHandler(w))

	w.win.SetTitle(translator.Get("tui_spoke_title"))
	setLabel(builder, "title-label", spoke.Title())
	w.reverseCheck.SetLabel(translator.Get("reverse_label"))
	setLabel(builder, "button-apply", translator.Get("button_apply"))
	setLabel(builder, "button-cancel", translator.Get("button_cancel"))
	w.refresh()
	window = w
	return nil
}

// RunSpokeWindow presents the window and starts the main event loop. When it returns
// the spoke is done, and the result tells whether the values were applied.
func RunSpokeWindow() bool {
	window.win.ShowAll()
	gtk.Main()
	return window.applied
}

// RefreshSpokeWindow reloads the values from the spoke's backend. It may be called from
// any goroutine, the reload happens on the GTK main loop.
func RefreshSpokeWindow() {
	glib.IdleAdd(func() bool {
		if err := window.spoke.Refresh(); err != nil {
			logrus.WithError(err).Warn("Unable to refresh the spoke")
		}
		window.refresh()
		return false
	})
}

// refresh fills the GUI elements with the values of the spoke.
func (w *SpokeWindow) refresh() {
	w.refreshing = true
	defer func() { w.refreshing = false }()
	w.textBuffer.SetText(w.spoke.Text())
	w.reverseCheck.SetActive(w.spoke.Reverse())
	w.statusLabel.SetText(w.spoke.Status())
}

// edited copies the GUI element values into the spoke whenever the user changes them.
func (w *SpokeWindow) edited() {
	if w.refreshing {
		return
	}
	start, end := w.textBuffer.GetBounds()
	text, err := w.textBuffer.GetText(start, end, true)
	if err != nil {
		logrus.WithError(err).Warn("Unable to read the text buffer")
		return
	}
	w.spoke.SetText(text)
	w.spoke.SetReverse(w.reverseCheck.GetActive())
	w.statusLabel.SetText(w.spoke.Status())
}

// apply stores the values and closes the window, or shows an error dialog if the
// backend refused them.
func (w *SpokeWindow) apply() {
	w.edited()
	if err := w.spoke.Apply(); err != nil {
		logrus.WithError(err).Error("Unable to apply the spoke")
		dialog := gtk.MessageDialogNew(
			w.win, gtk.DIALOG_MODAL, gtk.MESSAGE_ERROR, gtk.BUTTONS_CLOSE, "%s",
			w.translator.GetWith("err_apply_failed", hello_world.StringMap{"error": err.Error()}),
		)
		dialog.Run()
		dialog.Destroy()
		return
	}
	w.applied = true
	gtk.MainQuit()
}

func main() {}
