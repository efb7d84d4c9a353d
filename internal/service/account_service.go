package service

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/audit"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/validation"
	"go.uber.org/zap"
)

type AccountService struct {
	*Ledger
}

func NewAccountService(l *Ledger) *AccountService {
	return &AccountService{Ledger: l}
}

// NewAccount holds the operator-supplied fields of an account being opened.
type NewAccount struct {
	Name     string
	IDNumber string
	Type     model.Type
	PIN      string
}

func (in NewAccount) Validate() error {
	if err := validation.ValidateAccountName(in.Name); err != nil {
		return err
	}
	if err := validation.ValidateIDNumber(in.IDNumber); err != nil {
		return err
	}
	if err := validation.ValidateAccountType(string(in.Type)); err != nil {
		return err
	}
	return validation.ValidatePIN(in.PIN)
}

// CreateAccount prompts for every field, re-asking until each one is valid, then opens the account.
func (as *AccountService) CreateAccount() (*model.Account, error) {
	name, err := as.console.Input(fmt.Sprintf("Account name (max %d chars):", constants.MaxNameLen),
		validation.ValidateAccountName)
	if err != nil {
		return nil, err
	}

	idNumber, err := as.console.Input(
		fmt.Sprintf("ID number (min %d chars, max %d chars):", constants.MinIDNumberLen, constants.MaxIDNumberLen),
		validation.ValidateIDNumber)
	if err != nil {
		return nil, err
	}

	accType, err := as.console.Choose("Account type:", []string{string(model.TypeSavings), string(model.TypeCurrent)})
	if err != nil {
		return nil, err
	}

	pin, err := as.console.Input(fmt.Sprintf("Enter %d-digit PIN:", constants.PINLen), validation.ValidatePIN)
	if err != nil {
		return nil, err
	}

	return as.OpenAccount(NewAccount{
		Name:     name,
		IDNumber: idNumber,
		Type:     model.Type(accType),
		PIN:      pin,
	})
}

// OpenAccount assigns an unused number, persists the record and registers it in the index.
func (as *AccountService) OpenAccount(in NewAccount) (*model.Account, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.IDNumber = strings.TrimSpace(in.IDNumber)

	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	number, err := as.nextAccountNumber()
	if err != nil {
		return nil, err
	}

	acc := &model.Account{
		Number:   number,
		Name:     in.Name,
		PIN:      in.PIN,
		Balance:  0,
		Status:   model.StatusActive,
		Type:     in.Type,
		IDNumber: in.IDNumber,
	}

	err = as.commit(
		step{
			name: "save record",
			do:   func(r store.Repository) error { return r.SaveAccount(acc) },
			undo: func(r store.Repository) error { return r.RemoveAccount(acc.Number) },
		},
		step{
			name: "append index",
			do:   func(r store.Repository) error { return r.AppendNumber(acc.Number) },
		},
	)
	if err != nil {
		return nil, err
	}

	as.console.ShowAccount(acc)
	as.console.Success("Account created successfully!")
	as.record(audit.CreateAccount(acc.Number))
	as.log.Info("account created", zap.Int64("account", acc.Number))

	return acc, nil
}

// nextAccountNumber draws a random candidate and bumps it until no live account uses it.
func (as *AccountService) nextAccountNumber() (int64, error) {
	numbers, err := as.repo.Numbers(0)
	if err != nil {
		return 0, persistenceError(err)
	}

	used := make(map[int64]bool, len(numbers))
	for _, n := range numbers {
		used[n] = true
	}

	candidate := as.numbers()
	for used[candidate] {
		as.log.Debug("account number collision", zap.Int64("candidate", candidate))
		candidate++
		if candidate > constants.MaxAccountNumber {
			candidate = constants.MinAccountNumber
		}
	}
	return candidate, nil
}

// DeleteAccount verifies the ID suffix and PIN, then removes the record and its index entry.
func (as *AccountService) DeleteAccount(number int64) error {
	acc, err := as.loadAccount(number)
	if err != nil {
		return err
	}

	suffix, err := as.console.Input(fmt.Sprintf("Last %d characters of ID:", constants.IDSuffixLen), nil)
	if err != nil {
		return err
	}
	if !matchIDSuffix(acc.IDNumber, strings.TrimSpace(suffix)) {
		return fmt.Errorf("account %d: %w", number, ErrIdentityMismatch)
	}

	if err := as.authenticate(acc, "Enter PIN:"); err != nil {
		return err
	}

	as.console.ShowAccount(acc)
	if acc.Balance > 0 {
		as.console.Warning(fmt.Sprintf("Balance is %s", as.money(acc.Balance)))
	}

	confirm, err := as.console.Confirm("Confirm delete?", false)
	if err != nil {
		return err
	}
	if !confirm {
		return ErrCancelled
	}

	err = as.commit(
		step{
			name: "remove record",
			do:   func(r store.Repository) error { return r.RemoveAccount(acc.Number) },
			undo: func(r store.Repository) error { return r.SaveAccount(acc) },
		},
		step{
			name: "rebuild index",
			do:   func(r store.Repository) error { return r.RemoveNumber(acc.Number) },
		},
	)
	if err != nil {
		return err
	}

	as.console.Success("Account deleted successfully!")
	as.record(audit.DeleteAccount(acc.Number))
	as.log.Info("account deleted", zap.Int64("account", acc.Number))

	return nil
}

// matchIDSuffix compares the last four characters of the stored ID with the operator's entry.
func matchIDSuffix(idNumber, suffix string) bool {
	id := []rune(idNumber)
	if len(id) < constants.IDSuffixLen {
		return false
	}
	return string(id[len(id)-constants.IDSuffixLen:]) == suffix
}
