package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

const dialogTitle = "Bounce"

// selectConfigFile asks the user for a TOML file. A cancelled dialog
// returns an empty path and no error.
func selectConfigFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Config File"),
		zenity.FileFilters{{
			Name:     "TOML",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

// showError reports err in a native dialog. Failing to show it is ignored:
// the error is already logged and printed in the HUD.
func showError(err error) {
	_ = zenity.Error(err.Error(), zenity.Title(dialogTitle))
}
