package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/hance08/teller/internal/audit"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Settings are the business limits the ledger enforces. Amounts are in cents.
type Settings struct {
	Currency         string
	MaxDeposit       int64
	PINAttempts      int
	SelectionCap     int
	SavingsToCurrent decimal.Decimal
	CurrentToSavings decimal.Decimal
}

func NewSettings(cfg *config.Config) (Settings, error) {
	s2c, err := config.ParseRate(cfg.Fees.SavingsToCurrent)
	if err != nil {
		return Settings{}, fmt.Errorf("fees.savings_to_current: %w", err)
	}
	c2s, err := config.ParseRate(cfg.Fees.CurrentToSavings)
	if err != nil {
		return Settings{}, fmt.Errorf("fees.current_to_savings: %w", err)
	}

	return Settings{
		Currency:         cfg.Defaults.Currency,
		MaxDeposit:       cfg.Limits.MaxDeposit * constants.CentsPerUnit,
		PINAttempts:      cfg.Limits.PINAttempts,
		SelectionCap:     cfg.Limits.SelectionCap,
		SavingsToCurrent: s2c,
		CurrentToSavings: c2s,
	}, nil
}

// Ledger is the context every operation runs against: storage, audit trail,
// operator console and diagnostics. There is no package-level state.
type Ledger struct {
	repo     store.Repository
	trail    *audit.Trail
	console  Console
	log      *zap.Logger
	settings Settings
	numbers  func() int64
}

func NewLedger(repo store.Repository, trail *audit.Trail, console Console, log *zap.Logger, settings Settings) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{
		repo:     repo,
		trail:    trail,
		console:  console,
		log:      log,
		settings: settings,
		numbers:  randomAccountNumber,
	}
}

// WithNumberSource replaces the account number generator, for tests.
func (l *Ledger) WithNumberSource(fn func() int64) *Ledger {
	l.numbers = fn
	return l
}

func (l *Ledger) Settings() Settings {
	return l.settings
}

type Service struct {
	Ledger      *Ledger
	Account     *AccountService
	Transaction *TransactionService
}

func NewService(l *Ledger) *Service {
	return &Service{
		Ledger:      l,
		Account:     NewAccountService(l),
		Transaction: NewTransactionService(l),
	}
}

// randomAccountNumber picks a digit count from 7..9 uniformly, then a number of that length.
func randomAccountNumber() int64 {
	digits := constants.MinAccountDigits + rand.IntN(constants.MaxAccountDigits-constants.MinAccountDigits+1)

	floor := int64(1)
	for i := 1; i < digits; i++ {
		floor *= 10
	}
	return floor + rand.Int64N(9*floor)
}
