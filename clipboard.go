package main

import (
	"log/slog"

	"github.com/milk9111/foxtrot/ecs/system"
	"golang.design/x/clipboard"
)

type systemClipboard struct{}

// newClipboard returns nil when the platform clipboard is unavailable; the
// debug snapshot then goes to the log instead.
func newClipboard() system.Clipboard {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable", "err", err)
		return nil
	}
	return systemClipboard{}
}

func (systemClipboard) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
