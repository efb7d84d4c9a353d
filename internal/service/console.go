package service

import "github.com/hance08/teller/internal/model"

// Prompter collects operator input. Input re-prompts in place until validate accepts
// the answer, so a bad entry never aborts the surrounding operation.
type Prompter interface {
	Input(title string, validate func(string) error) (string, error)
	Secret(title string) (string, error)
	Choose(title string, options []string) (string, error)
	Confirm(title string, defaultValue bool) (bool, error)
}

// Presenter renders progress and results for the operator.
type Presenter interface {
	ShowAccount(acc *model.Account)
	ShowAccountList(accounts []*model.Account)
	Info(msg string)
	Warning(msg string)
	Success(msg string)
}

type Console interface {
	Prompter
	Presenter
}
