package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrAuthenticationFailed = errors.New("max PIN attempts exceeded")
	ErrAccountClosed        = errors.New("account closed")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrAmountOutOfRange     = errors.New("amount out of range")
	ErrSameAccount          = errors.New("sender and receiver must be different")
	ErrIdentityMismatch     = errors.New("ID verification failed")
	ErrNoAccounts           = errors.New("no accounts available")
	ErrCancelled            = errors.New("cancelled")
	ErrPersistence          = errors.New("failed to update storage")
)

func persistenceError(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
