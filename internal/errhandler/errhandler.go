package errhandler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/service"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err comes from the operator aborting a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// HandleError reports an operation failure on the console. It never exits;
// the caller decides whether the session continues.
func HandleError(err error) {
	if err == nil {
		return
	}

	switch {
	case IsInterrupt(err):
		pterm.Warning.Println("Operation Cancelled")
	case errors.Is(err, service.ErrCancelled):
		pterm.Info.Println("Cancelled.")
	default:
		pterm.Error.Println(Capitalize(err.Error()))
	}
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
