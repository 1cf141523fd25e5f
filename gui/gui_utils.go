package main

import (
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/sirupsen/logrus"
)

// builderObject returns the object with the given id from the glade definition, or the
// zero value (nil for the gtk widget pointers) if it is missing or of another type.
func builderObject[T glib.IObject](builder *gtk.Builder, id string) T {
	var zero T
	obj, err := builder.GetObject(id)
	if err != nil {
		logrus.WithError(err).WithField("id", id).Warn("Missing GUI object")
		return zero
	}
	typed, ok := obj.(T)
	if !ok {
		logrus.WithField("id", id).Warnf("GUI object has unexpected type %T", obj)
		return zero
	}
	return typed
}

// setLabel sets the text of a label or button, with mnemonic underscores.
func setLabel(builder *gtk.Builder, id, text string) {
	switch w := builderObject[glib.IObject](builder, id).(type) {
	case *gtk.Label:
		w.SetTextWithMnemonic(text)
	case *gtk.Button:
		w.SetUseUnderline(true)
		w.SetLabel(text)
	}
}
