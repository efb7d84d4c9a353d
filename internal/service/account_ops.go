package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/hance08/teller/internal/audit"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/validation"
	"go.uber.org/zap"
)

const DirectEntryOption = "Enter account number directly"

// ListAccounts loads up to limit indexed accounts in index order; limit <= 0 lists all.
// Index entries whose record is missing or unreadable are skipped.
func (as *AccountService) ListAccounts(limit int) ([]*model.Account, error) {
	numbers, err := as.repo.Numbers(limit)
	if err != nil {
		return nil, err
	}

	accounts := make([]*model.Account, 0, len(numbers))
	for _, n := range numbers {
		acc, err := as.repo.LoadAccount(n)
		if err != nil {
			as.log.Warn("indexed account not listed", zap.Int64("account", n), zap.Error(err))
			continue
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// SelectAccount shows up to the selection cap of accounts and returns the operator's choice,
// or a number typed in directly.
func (as *AccountService) SelectAccount(title string) (int64, error) {
	accounts, err := as.ListAccounts(as.settings.SelectionCap)
	if err != nil {
		return 0, err
	}
	if len(accounts) == 0 {
		return 0, ErrNoAccounts
	}

	as.console.ShowAccountList(accounts)

	options := make([]string, 0, len(accounts)+1)
	for i, acc := range accounts {
		options = append(options, fmt.Sprintf("%2d. %d  %s", i+1, acc.Number, acc.Name))
	}
	options = append(options, DirectEntryOption)

	choice, err := as.console.Choose(title, options)
	if err != nil {
		return 0, err
	}

	if choice == DirectEntryOption {
		input, err := as.console.Input("Enter account number:", validation.ValidateAccountNumber)
		if err != nil {
			return 0, err
		}
		return validation.ParseAccountNumber(input)
	}

	for i, opt := range options[:len(accounts)] {
		if opt == choice {
			return accounts[i].Number, nil
		}
	}
	return 0, errors.New("invalid selection")
}

type SessionInfo struct {
	Time          time.Time
	TotalAccounts int
}

func (as *AccountService) SessionInfo() (SessionInfo, error) {
	count, err := as.repo.Count()
	if err != nil {
		return SessionInfo{}, err
	}
	return SessionInfo{Time: time.Now(), TotalAccounts: count}, nil
}

// Exit records the end of the operator session.
func (as *AccountService) Exit() {
	as.record(audit.ActionExit)
	as.log.Info("session ended")
}
