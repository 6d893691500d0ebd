// Package screens holds one controller per app screen. Controllers own
// their local state, call the service layer and talk to the user through UI.
package screens

import (
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/validators"
)

// UI is what a front end must provide to the screens.
type UI interface {
	Alert(title, message string)
	Confirm(title, message string) bool
}

const (
	TitleError      = "Error"
	TitleSuccess    = "Éxito"
	TitleIncomplete = "Campos incompletos"
	MsgIncomplete   = "Por favor llena todos los campos."
)

var ErrIncomplete = httperr.ErrValidation(validators.CodeMissingFields, MsgIncomplete)

// alertErr shows err with its display message, or fallback.
func alertErr(ui UI, title string, err error, fallback string) {
	ui.Alert(title, httperr.Message(err, fallback))
}

