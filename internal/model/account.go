package model

type Status int

const (
	StatusActive Status = 0
	StatusClosed Status = 1
)

func (s Status) String() string {
	if s == StatusClosed {
		return "Closed"
	}
	return "Active"
}

type Type string

const (
	TypeSavings Type = "Savings"
	TypeCurrent Type = "Current"
)

// Account is the full persisted state of one ledger account.
// Balance is held in cents.
type Account struct {
	Number   int64
	Name     string
	PIN      string
	Balance  int64
	Status   Status
	Type     Type
	IDNumber string
}

func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}
