package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
)

// ValidateAccountName checks the display name length (1 to 49 characters).
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}

	if utf8.RuneCountInString(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateIDNumber checks the identity string length (4 to 19 characters).
func ValidateIDNumber(id string) error {
	id = strings.TrimSpace(id)
	n := utf8.RuneCountInString(id)

	if n < constants.MinIDNumberLen {
		return fmt.Errorf("ID number must be at least %d characters", constants.MinIDNumberLen)
	}
	if n > constants.MaxIDNumberLen {
		return fmt.Errorf("ID number too long (max %d characters)", constants.MaxIDNumberLen)
	}
	return nil
}

// ValidateAccountType accepts exactly "Savings" or "Current".
func ValidateAccountType(accType string) error {
	switch model.Type(accType) {
	case model.TypeSavings, model.TypeCurrent:
		return nil
	default:
		return fmt.Errorf("invalid type '%s' (must be '%s' or '%s')", accType, model.TypeSavings, model.TypeCurrent)
	}
}

// ValidatePIN requires exactly four ASCII digits.
func ValidatePIN(pin string) error {
	if len(pin) != constants.PINLen {
		return fmt.Errorf("PIN must be exactly %d digits", constants.PINLen)
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return fmt.Errorf("PIN must be exactly %d digits", constants.PINLen)
		}
	}
	return nil
}

// ValidateAccountNumber parses direct account-number entry.
func ValidateAccountNumber(input string) error {
	_, err := ParseAccountNumber(input)
	return err
}

func ParseAccountNumber(input string) (int64, error) {
	input = strings.TrimSpace(input)
	num, err := strconv.ParseInt(input, 10, 64)
	if err != nil || num <= 0 {
		return 0, fmt.Errorf("invalid account number: %s", input)
	}
	return num, nil
}

// AmountValidator adapts a cents rule into a string validator usable by prompts.
func AmountValidator(rule func(cents int64) error) func(string) error {
	return func(input string) error {
		cents, err := utils.ParseToCents(input)
		if err != nil {
			return err
		}
		if rule == nil {
			return nil
		}
		return rule(cents)
	}
}
