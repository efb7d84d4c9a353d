package service

import (
	"fmt"

	"github.com/hance08/teller/internal/audit"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/utils"
	"go.uber.org/zap"
)

// Deposit credits an active account after PIN authentication.
func (ts *TransactionService) Deposit(number int64) (*model.Account, error) {
	acc, err := ts.loadActive(number)
	if err != nil {
		return nil, err
	}

	if err := ts.authenticate(acc, "Enter PIN:"); err != nil {
		return nil, err
	}
	ts.console.ShowAccount(acc)

	amount, err := ts.askAmount(fmt.Sprintf("Deposit amount (Max %s):", ts.money(ts.settings.MaxDeposit)), ts.depositRule)
	if err != nil {
		return nil, err
	}

	if acc.Balance > constants.MaxAmountCents-amount {
		return nil, fmt.Errorf("account %d: %w: balance would exceed %s",
			acc.Number, ErrAmountOutOfRange, ts.money(constants.MaxAmountCents))
	}

	acc.Balance += amount
	if err := ts.save(acc); err != nil {
		return nil, err
	}

	ts.console.ShowAccount(acc)
	ts.console.Success("Deposit successful!")
	ts.record(audit.Deposit(acc.Number, ts.settings.Currency, amount))

	return acc, nil
}

// Withdraw debits an active account after PIN authentication. Overdrafts are refused.
func (ts *TransactionService) Withdraw(number int64) (*model.Account, error) {
	acc, err := ts.loadActive(number)
	if err != nil {
		return nil, err
	}

	if err := ts.authenticate(acc, "Enter PIN:"); err != nil {
		return nil, err
	}
	ts.console.ShowAccount(acc)
	ts.console.Info(fmt.Sprintf("Available balance: %s", ts.money(acc.Balance)))

	amount, err := ts.askAmount("Withdraw amount:", ts.withdrawRule(acc.Balance))
	if err != nil {
		return nil, err
	}

	acc.Balance -= amount
	if err := ts.save(acc); err != nil {
		return nil, err
	}

	ts.console.ShowAccount(acc)
	ts.console.Success("Withdrawal successful!")
	ts.record(audit.Withdrawal(acc.Number, ts.settings.Currency, amount))

	return acc, nil
}

// Transfer moves amount from sender to receiver and charges the sender the type-based fee.
// Only the sender authenticates. Both records are written, or neither is reported as written.
func (ts *TransactionService) Transfer(sender, receiver int64) (*Receipt, error) {
	if sender == receiver {
		return nil, ErrSameAccount
	}

	from, err := ts.loadAccount(sender)
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	to, err := ts.loadAccount(receiver)
	if err != nil {
		return nil, fmt.Errorf("receiver: %w", err)
	}
	if !from.IsActive() {
		return nil, fmt.Errorf("sender account %d: %w", sender, ErrAccountClosed)
	}
	if !to.IsActive() {
		return nil, fmt.Errorf("receiver account %d: %w", receiver, ErrAccountClosed)
	}

	if err := ts.authenticate(from, "Enter sender PIN:"); err != nil {
		return nil, err
	}
	ts.console.ShowAccount(from)

	var amount, fee int64
	for {
		amount, err = ts.askAmount("Enter transfer amount:", ts.positiveAmount)
		if err != nil {
			return nil, err
		}

		rate := ts.settings.FeeRate(from.Type, to.Type)
		fee = ts.settings.Fee(from.Type, to.Type, amount)
		if rate.IsZero() {
			ts.console.Info("No remittance fee applied.")
		} else {
			ts.console.Info(fmt.Sprintf("Remittance fee (%s): %s", utils.FormatRate(rate), ts.money(fee)))
		}

		if amount <= from.Balance && fee <= from.Balance-amount {
			break
		}

		ts.console.Warning(fmt.Sprintf("Insufficient funds! Need: %s (including fee)", ts.money(amount+fee)))
		ts.console.Info(fmt.Sprintf("Available: %s", ts.money(from.Balance)))

		retry, err := ts.console.Confirm("Try different amount?", false)
		if err != nil {
			return nil, err
		}
		if !retry {
			return nil, fmt.Errorf("sender account %d: %w", sender, ErrInsufficientFunds)
		}
	}

	if to.Balance > constants.MaxAmountCents-amount {
		return nil, fmt.Errorf("receiver account %d: %w: balance would exceed %s",
			receiver, ErrAmountOutOfRange, ts.money(constants.MaxAmountCents))
	}

	before := *from
	from.Balance -= amount + fee
	to.Balance += amount

	err = ts.commit(
		step{
			name: "save sender",
			do:   func(r store.Repository) error { return r.SaveAccount(from) },
			undo: func(r store.Repository) error { return r.SaveAccount(&before) },
		},
		step{
			name: "save receiver",
			do:   func(r store.Repository) error { return r.SaveAccount(to) },
		},
	)
	if err != nil {
		return nil, err
	}

	ts.console.Info("Sender account")
	ts.console.ShowAccount(from)
	ts.console.Info("Receiver account")
	ts.console.ShowAccount(to)
	ts.console.Success("Remittance successful!")
	ts.record(audit.Remittance(sender, receiver, ts.settings.Currency, amount, fee))

	return &Receipt{Sender: from, Receiver: to, Amount: amount, Fee: fee}, nil
}

func (ts *TransactionService) save(acc *model.Account) error {
	if err := ts.repo.SaveAccount(acc); err != nil {
		ts.log.Error("failed to save account", zap.Int64("account", acc.Number), zap.Error(err))
		return persistenceError(err)
	}
	return nil
}
