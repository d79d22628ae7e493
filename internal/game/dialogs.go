package game

import (
	"errors"
	"image/color"

	"github.com/ncruces/zenity"
)

// Every dialog returns a zero value and a nil error when the user cancels.

func selectAudioFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return filename, err
}

func selectSavePath(title, suggested string) (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title(title),
		zenity.Filename(suggested),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return filename, err
}

func selectColor(title string, current color.Color) (color.Color, error) {
	c, err := zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(current),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, nil
	}
	return c, err
}
