package store

import "github.com/hance08/teller/internal/model"

// RecordStore persists the full state of single accounts keyed by account number.
// It has no notion of enumeration; see AccountIndex.
type RecordStore interface {
	// SaveAccount overwrites every field stored for acc.Number.
	SaveAccount(acc *model.Account) error
	// LoadAccount returns ErrAccountNotFound when no record exists.
	LoadAccount(number int64) (*model.Account, error)
	RemoveAccount(number int64) error
}

// AccountIndex is the ordered registry of live account numbers.
type AccountIndex interface {
	AppendNumber(number int64) error
	// Numbers returns up to limit entries in insertion order; limit <= 0 means all.
	// A missing index yields an empty slice.
	Numbers(limit int) ([]int64, error)
	// RemoveNumber rebuilds the index without number, replacing it all-or-nothing.
	RemoveNumber(number int64) error
	Count() (int, error)
}

// Repository bundles both halves of a storage backend.
type Repository interface {
	RecordStore
	AccountIndex
	Close() error
}
