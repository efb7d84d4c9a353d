package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/model"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedConsole answers prompts from queues and records everything shown.
type scriptedConsole struct {
	answers  []string
	confirms []bool

	prompts  []string
	rejected []string
	infos    []string
	warnings []string
	success  []string
	shown    []model.Account
	listed   [][]*model.Account
}

func newConsole(answers ...string) *scriptedConsole {
	return &scriptedConsole{answers: answers}
}

func (c *scriptedConsole) withConfirms(confirms ...bool) *scriptedConsole {
	c.confirms = confirms
	return c
}

func (c *scriptedConsole) next() (string, error) {
	if len(c.answers) == 0 {
		return "", errScriptExhausted
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	return a, nil
}

func (c *scriptedConsole) Input(title string, validate func(string) error) (string, error) {
	c.prompts = append(c.prompts, title)
	for {
		a, err := c.next()
		if err != nil {
			return "", err
		}
		if validate != nil {
			if verr := validate(a); verr != nil {
				c.rejected = append(c.rejected, a)
				continue
			}
		}
		return a, nil
	}
}

func (c *scriptedConsole) Secret(title string) (string, error) {
	c.prompts = append(c.prompts, title)
	return c.next()
}

// Choose returns the first option containing the scripted answer.
func (c *scriptedConsole) Choose(title string, options []string) (string, error) {
	c.prompts = append(c.prompts, title)
	a, err := c.next()
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if strings.Contains(o, a) {
			return o, nil
		}
	}
	return "", fmt.Errorf("no option matches %q", a)
}

func (c *scriptedConsole) Confirm(title string, defaultValue bool) (bool, error) {
	c.prompts = append(c.prompts, title)
	if len(c.confirms) == 0 {
		return false, errScriptExhausted
	}
	v := c.confirms[0]
	c.confirms = c.confirms[1:]
	return v, nil
}

func (c *scriptedConsole) ShowAccount(acc *model.Account) {
	c.shown = append(c.shown, *acc)
}

func (c *scriptedConsole) ShowAccountList(accounts []*model.Account) {
	c.listed = append(c.listed, accounts)
}

func (c *scriptedConsole) Info(msg string)    { c.infos = append(c.infos, msg) }
func (c *scriptedConsole) Warning(msg string) { c.warnings = append(c.warnings, msg) }
func (c *scriptedConsole) Success(msg string) { c.success = append(c.success, msg) }
