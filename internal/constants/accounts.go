package constants

const (
	CentsPerUnit = 100
	// MaxAmountCents bounds every amount and balance. Sums of two bounded
	// values stay far inside int64.
	MaxAmountCents = 100_000_000_000_000
)

const (
	MaxNameLen     = 49
	MinIDNumberLen = 4
	MaxIDNumberLen = 19
	PINLen         = 4
	IDSuffixLen    = 4
)

// Account numbers are 7 to 9 decimal digits.
const (
	MinAccountDigits = 7
	MaxAccountDigits = 9
	MinAccountNumber = 1000000
	MaxAccountNumber = 999999999
)

const (
	DefaultCurrency      = "RM"
	DefaultMaxDeposit    = 50000
	DefaultPINAttempts   = 3
	DefaultSelectionCap  = 100
	DefaultSavingsToCurr = "0.02"
	DefaultCurrToSavings = "0.03"
)
