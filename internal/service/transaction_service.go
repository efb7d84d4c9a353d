package service

import (
	"github.com/hance08/teller/internal/model"
)

type TransactionService struct {
	*Ledger
}

func NewTransactionService(l *Ledger) *TransactionService {
	return &TransactionService{Ledger: l}
}

// Receipt describes a completed remittance. Fee is taken from the sender and credited nowhere.
type Receipt struct {
	Sender   *model.Account
	Receiver *model.Account
	Amount   int64
	Fee      int64
}
