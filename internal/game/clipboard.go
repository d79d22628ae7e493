//go:build !js && (windows || cgo)

package game

import (
	"golang.design/x/clipboard"
)

var clipboardReady bool

func initClipboard() error {
	err := clipboard.Init()
	clipboardReady = err == nil
	return err
}

// clipboardWriteImage puts PNG bytes on the clipboard. It reports false
// when no clipboard is available.
func clipboardWriteImage(png []byte) bool {
	if !clipboardReady {
		return false
	}
	clipboard.Write(clipboard.FmtImage, png)
	return true
}
