// golang.design/x/clipboard needs cgo everywhere but windows.

//go:build js || (!windows && !cgo)

package game

import (
	"errors"
)

func initClipboard() error {
	return errors.New("clipboard is disabled in this build")
}

func clipboardWriteImage(png []byte) bool {
	return false
}
