package service

import (
	"errors"
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
	"go.uber.org/zap"
)

// Transactor is implemented by backends that can group writes atomically.
type Transactor interface {
	ExecTx(fn func(store.Repository) error) error
}

// step is one storage write plus the write that reverses it.
type step struct {
	name string
	do   func(store.Repository) error
	undo func(store.Repository) error
}

// commit applies steps all-or-nothing. A transactional backend gets one transaction;
// otherwise completed steps are reversed when a later one fails.
func (l *Ledger) commit(steps ...step) error {
	if tx, ok := l.repo.(Transactor); ok {
		err := tx.ExecTx(func(repo store.Repository) error {
			for _, s := range steps {
				if err := s.do(repo); err != nil {
					return fmt.Errorf("%s: %w", s.name, err)
				}
			}
			return nil
		})
		if err != nil {
			l.log.Error("storage transaction rolled back", zap.Error(err))
			return persistenceError(err)
		}
		return nil
	}

	for i, s := range steps {
		if err := s.do(l.repo); err != nil {
			l.log.Error("storage write failed", zap.String("step", s.name), zap.Error(err))
			for j := i - 1; j >= 0; j-- {
				if steps[j].undo == nil {
					continue
				}
				if undoErr := steps[j].undo(l.repo); undoErr != nil {
					l.log.Error("compensating write failed",
						zap.String("step", steps[j].name), zap.Error(undoErr))
				} else {
					l.log.Warn("compensating write applied", zap.String("step", steps[j].name))
				}
			}
			return persistenceError(fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return nil
}

// record writes an audit line. A failed write never fails the operation; it is logged.
func (l *Ledger) record(action string) {
	if err := l.trail.Record(action); err != nil {
		l.log.Warn("audit entry not written", zap.String("action", action), zap.Error(err))
	}
}

func (l *Ledger) money(cents int64) string {
	return utils.FormatMoney(l.settings.Currency, cents)
}

func (l *Ledger) loadAccount(number int64) (*model.Account, error) {
	acc, err := l.repo.LoadAccount(number)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			l.log.Error("failed to load account", zap.Int64("account", number), zap.Error(err))
		}
		return nil, err
	}
	return acc, nil
}

// loadActive loads an account that may take part in money movement.
func (l *Ledger) loadActive(number int64) (*model.Account, error) {
	acc, err := l.loadAccount(number)
	if err != nil {
		return nil, err
	}
	if !acc.IsActive() {
		return nil, fmt.Errorf("account %d: %w", number, ErrAccountClosed)
	}
	return acc, nil
}

// authenticate gives the operator a bounded number of PIN attempts.
func (l *Ledger) authenticate(acc *model.Account, title string) error {
	attempts := l.settings.PINAttempts

	for i := 0; i < attempts; i++ {
		pin, err := l.console.Secret(title)
		if err != nil {
			return err
		}

		if pin == acc.PIN {
			return nil
		}

		l.console.Warning(fmt.Sprintf("Wrong PIN! %d tries left.", attempts-1-i))
	}

	l.console.Warning("Max attempts exceeded.")

	l.log.Info("authentication failed", zap.Int64("account", acc.Number), zap.Int("attempts", attempts))
	return fmt.Errorf("account %d: %w", acc.Number, ErrAuthenticationFailed)
}

// askAmount prompts until the entry parses and satisfies rule.
func (l *Ledger) askAmount(title string, rule func(int64) error) (int64, error) {
	input, err := l.console.Input(title, validation.AmountValidator(rule))
	if err != nil {
		return 0, err
	}
	return utils.ParseToCents(input)
}

func (l *Ledger) positiveAmount(cents int64) error {
	if cents <= 0 {
		return fmt.Errorf("%w: amount must be greater than %s", ErrAmountOutOfRange, l.money(0))
	}
	return nil
}
