package audit

import (
	"fmt"

	"github.com/hance08/teller/internal/utils"
)

const ActionExit = "exit system"

func CreateAccount(number int64) string {
	return fmt.Sprintf("create account - Account: %d", number)
}

func DeleteAccount(number int64) string {
	return fmt.Sprintf("delete account - Account: %d", number)
}

func Deposit(number int64, currency string, amount int64) string {
	return fmt.Sprintf("deposit - Account: %d, Amount: %s", number, utils.FormatMoney(currency, amount))
}

func Withdrawal(number int64, currency string, amount int64) string {
	return fmt.Sprintf("withdrawal - Account: %d, Amount: %s", number, utils.FormatMoney(currency, amount))
}

func Remittance(sender, receiver int64, currency string, amount, fee int64) string {
	return fmt.Sprintf("remittance - From: %d to %d, Amount: %s, Fee: %s",
		sender, receiver, utils.FormatMoney(currency, amount), utils.FormatMoney(currency, fee))
}
