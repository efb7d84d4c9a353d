package service

import (
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"github.com/shopspring/decimal"
)

// depositRule accepts amounts in (0, MaxDeposit].
func (ts *TransactionService) depositRule(cents int64) error {
	if err := ts.positiveAmount(cents); err != nil {
		return err
	}
	if cents > ts.settings.MaxDeposit {
		return fmt.Errorf("%w: amount exceeds maximum limit of %s", ErrAmountOutOfRange, ts.money(ts.settings.MaxDeposit))
	}
	return nil
}

// withdrawRule accepts amounts in (0, balance].
func (ts *TransactionService) withdrawRule(balance int64) func(int64) error {
	return func(cents int64) error {
		if err := ts.positiveAmount(cents); err != nil {
			return err
		}
		if cents > balance {
			return fmt.Errorf("%w: available %s", ErrInsufficientFunds, ts.money(balance))
		}
		return nil
	}
}

// FeeRate returns the remittance fee rate for a sender/receiver type pair.
func (s Settings) FeeRate(from, to model.Type) decimal.Decimal {
	switch {
	case from == model.TypeSavings && to == model.TypeCurrent:
		return s.SavingsToCurrent
	case from == model.TypeCurrent && to == model.TypeSavings:
		return s.CurrentToSavings
	default:
		return decimal.Zero
	}
}

// Fee returns the fee in cents charged to the sender for moving amount.
func (s Settings) Fee(from, to model.Type, amount int64) int64 {
	return utils.PercentOf(amount, s.FeeRate(from, to))
}
