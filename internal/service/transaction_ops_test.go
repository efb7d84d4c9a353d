package service

import (
	"path/filepath"
	"testing"

	"github.com/hance08/teller/internal/audit"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit(t *testing.T) {
	console := newConsole("1234", "0", "-5", "50000.01", "abc", "150.25")
	f := newFixture(t, console)
	f.seed(1111111, model.TypeSavings, 1000)

	acc, err := f.svc.Transaction.Deposit(1111111)
	require.NoError(t, err)
	assert.Equal(t, int64(16025), acc.Balance)
	assert.Equal(t, int64(16025), f.load(1111111).Balance)
	assert.Equal(t, []string{"0", "-5", "50000.01", "abc"}, console.rejected)
	assert.Equal(t, []string{"[Sun Oct 18 10:00:00 2026] deposit - Account: 1111111, Amount: RM150.25"}, f.auditLines())
}

func TestDepositAcceptsCeiling(t *testing.T) {
	f := newFixture(t, newConsole("1234", "50000"))
	f.seed(1111111, model.TypeSavings, 0)

	acc, err := f.svc.Transaction.Deposit(1111111)
	require.NoError(t, err)
	assert.Equal(t, int64(5000000), acc.Balance)
}

func TestDepositClosedAccount(t *testing.T) {
	console := newConsole()
	f := newFixture(t, console)
	acc := f.seed(1111111, model.TypeSavings, 0)
	acc.Status = model.StatusClosed
	require.NoError(t, f.repo.SaveAccount(acc))

	_, err := f.svc.Transaction.Deposit(1111111)
	assert.ErrorIs(t, err, ErrAccountClosed)
	assert.Empty(t, console.prompts)
}

func TestDepositMissingAccount(t *testing.T) {
	f := newFixture(t, newConsole())
	_, err := f.svc.Transaction.Deposit(1234567)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestDepositThreeWrongPINs(t *testing.T) {
	console := newConsole("0000", "9999", "4321")
	f := newFixture(t, console)
	before := f.seed(1111111, model.TypeSavings, 1000)

	_, err := f.svc.Transaction.Deposit(1111111)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, before, f.load(1111111))
	assert.Len(t, console.warnings, 4)
	assert.Equal(t, "Max attempts exceeded.", console.warnings[3])
	assert.Empty(t, f.auditLines())
}

func TestDepositSecondPINAttemptSucceeds(t *testing.T) {
	f := newFixture(t, newConsole("0000", "1234", "10"))
	f.seed(1111111, model.TypeSavings, 0)

	acc, err := f.svc.Transaction.Deposit(1111111)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), acc.Balance)
}

func TestDepositSaveFailureNotAudited(t *testing.T) {
	base, err := store.NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)
	repo := &failingRepo{Repository: base, failSave: map[int64]bool{}}
	f := newFixtureWithRepo(t, repo, newConsole("1234", "10"))
	f.seed(1111111, model.TypeSavings, 0)
	repo.failSave[1111111] = true

	_, err = f.svc.Transaction.Deposit(1111111)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, int64(0), f.load(1111111).Balance)
	assert.Empty(t, f.auditLines())
}

func TestWithdraw(t *testing.T) {
	console := newConsole("1234", "0", "100.01", "100")
	f := newFixture(t, console)
	f.seed(1111111, model.TypeSavings, 10000)

	acc, err := f.svc.Transaction.Withdraw(1111111)
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.Balance)
	assert.Equal(t, []string{"0", "100.01"}, console.rejected)
	assert.Contains(t, console.infos, "Available balance: RM100.00")
	assert.Equal(t, []string{"[Sun Oct 18 10:00:00 2026] withdrawal - Account: 1111111, Amount: RM100.00"}, f.auditLines())
}

func TestWithdrawClosedAccount(t *testing.T) {
	f := newFixture(t, newConsole())
	acc := f.seed(1111111, model.TypeSavings, 100)
	acc.Status = model.StatusClosed
	require.NoError(t, f.repo.SaveAccount(acc))

	_, err := f.svc.Transaction.Withdraw(1111111)
	assert.ErrorIs(t, err, ErrAccountClosed)
}

func TestWithdrawThreeWrongPINs(t *testing.T) {
	f := newFixture(t, newConsole("1", "2", "3"))
	before := f.seed(1111111, model.TypeCurrent, 100)

	_, err := f.svc.Transaction.Withdraw(1111111)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, before, f.load(1111111))
}

func TestBalanceNeverNegativeAcrossSequence(t *testing.T) {
	answers := []string{
		"1234", "500",
		"1234", "600", "200",
		"1234", "300",
		"1234", "0.01",
	}
	f := newFixture(t, newConsole(answers...))
	f.seed(1111111, model.TypeSavings, 0)

	_, err := f.svc.Transaction.Deposit(1111111)
	require.NoError(t, err)
	_, err = f.svc.Transaction.Withdraw(1111111)
	require.NoError(t, err)
	_, err = f.svc.Transaction.Withdraw(1111111)
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.load(1111111).Balance)

	// nothing left, so no amount is acceptable
	_, err = f.svc.Transaction.Withdraw(1111111)
	assert.ErrorIs(t, err, errScriptExhausted)
	assert.GreaterOrEqual(t, f.load(1111111).Balance, int64(0))
}

func TestTransferSavingsToCurrentChargesTwoPercent(t *testing.T) {
	console := newConsole("1234", "1000")
	f := newFixture(t, console)
	f.seed(1111111, model.TypeSavings, 200000)
	f.seed(2222222, model.TypeCurrent, 5000)

	receipt, err := f.svc.Transaction.Transfer(1111111, 2222222)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), receipt.Fee)

	assert.Equal(t, int64(200000-102000), f.load(1111111).Balance)
	assert.Equal(t, int64(5000+100000), f.load(2222222).Balance)
	assert.Contains(t, console.infos, "Remittance fee (2%): RM20.00")
	assert.Equal(t, []string{
		"[Sun Oct 18 10:00:00 2026] remittance - From: 1111111 to 2222222, Amount: RM1000.00, Fee: RM20.00",
	}, f.auditLines())
}

func TestTransferCurrentToSavingsChargesThreePercent(t *testing.T) {
	f := newFixture(t, newConsole("1234", "1000"))
	f.seed(1111111, model.TypeCurrent, 200000)
	f.seed(2222222, model.TypeSavings, 0)

	receipt, err := f.svc.Transaction.Transfer(1111111, 2222222)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), receipt.Fee)
	assert.Equal(t, int64(200000-103000), f.load(1111111).Balance)
	assert.Equal(t, int64(100000), f.load(2222222).Balance)
}

func TestTransferSameTypeIsFree(t *testing.T) {
	console := newConsole("1234", "500")
	f := newFixture(t, console)
	f.seed(1111111, model.TypeSavings, 50000)
	f.seed(2222222, model.TypeSavings, 0)

	receipt, err := f.svc.Transaction.Transfer(1111111, 2222222)
	require.NoError(t, err)
	assert.Zero(t, receipt.Fee)
	assert.Equal(t, int64(0), f.load(1111111).Balance)
	assert.Equal(t, int64(50000), f.load(2222222).Balance)
	assert.Contains(t, console.infos, "No remittance fee applied.")
}

func TestTransferToSelfRejectedBeforeLookup(t *testing.T) {
	console := newConsole()
	f := newFixture(t, console)

	// the account does not even exist: the self-transfer check comes first
	_, err := f.svc.Transaction.Transfer(1111111, 1111111)
	assert.ErrorIs(t, err, ErrSameAccount)
	assert.Empty(t, console.prompts)
}

func TestTransferMissingEndpoints(t *testing.T) {
	f := newFixture(t, newConsole())
	f.seed(1111111, model.TypeSavings, 100)

	_, err := f.svc.Transaction.Transfer(9999999, 1111111)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
	assert.ErrorContains(t, err, "sender")

	_, err = f.svc.Transaction.Transfer(1111111, 9999999)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
	assert.ErrorContains(t, err, "receiver")
}

func TestTransferClosedEndpoints(t *testing.T) {
	f := newFixture(t, newConsole())
	open := f.seed(1111111, model.TypeSavings, 100)
	closed := f.seed(2222222, model.TypeSavings, 100)
	closed.Status = model.StatusClosed
	require.NoError(t, f.repo.SaveAccount(closed))

	_, err := f.svc.Transaction.Transfer(open.Number, closed.Number)
	assert.ErrorIs(t, err, ErrAccountClosed)
	_, err = f.svc.Transaction.Transfer(closed.Number, open.Number)
	assert.ErrorIs(t, err, ErrAccountClosed)
}

func TestTransferInsufficientFundsRetry(t *testing.T) {
	console := newConsole("1234", "100", "50").withConfirms(true)
	f := newFixture(t, console)
	f.seed(1111111, model.TypeSavings, 10000)
	f.seed(2222222, model.TypeCurrent, 0)

	receipt, err := f.svc.Transaction.Transfer(1111111, 2222222)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), receipt.Amount)
	assert.Equal(t, int64(100), receipt.Fee)
	assert.Contains(t, console.warnings, "Insufficient funds! Need: RM102.00 (including fee)")
	assert.Equal(t, int64(10000-5100), f.load(1111111).Balance)
}

func TestTransferInsufficientFundsAbort(t *testing.T) {
	f := newFixture(t, newConsole("1234", "100").withConfirms(false))
	sender := f.seed(1111111, model.TypeSavings, 10000)
	receiver := f.seed(2222222, model.TypeCurrent, 0)

	_, err := f.svc.Transaction.Transfer(1111111, 2222222)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, sender, f.load(1111111))
	assert.Equal(t, receiver, f.load(2222222))
	assert.Empty(t, f.auditLines())
}

func TestTransferThreeWrongPINs(t *testing.T) {
	f := newFixture(t, newConsole("1", "2", "3"))
	sender := f.seed(1111111, model.TypeSavings, 10000)
	receiver := f.seed(2222222, model.TypeCurrent, 0)

	_, err := f.svc.Transaction.Transfer(1111111, 2222222)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, sender, f.load(1111111))
	assert.Equal(t, receiver, f.load(2222222))
}

func TestTransferReceiverSaveFailureRestoresSender(t *testing.T) {
	base, err := store.NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)
	repo := &failingRepo{Repository: base, failSave: map[int64]bool{}}
	f := newFixtureWithRepo(t, repo, newConsole("1234", "10"))
	sender := f.seed(1111111, model.TypeSavings, 10000)
	receiver := f.seed(2222222, model.TypeSavings, 0)
	repo.failSave[2222222] = true

	_, err = f.svc.Transaction.Transfer(1111111, 2222222)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, sender, f.load(1111111))
	assert.Equal(t, receiver, f.load(2222222))
	assert.Empty(t, f.auditLines())
}

func TestTransferOnSQLiteIsAtomic(t *testing.T) {
	sqlite, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "teller.db"), osDirFS(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	f := newFixtureWithRepo(t, sqlite, newConsole("1234", "1000"))
	f.seed(1111111, model.TypeSavings, 200000)
	f.seed(2222222, model.TypeCurrent, 0)

	_, err = f.svc.Transaction.Transfer(1111111, 2222222)
	require.NoError(t, err)
	assert.Equal(t, int64(98000), f.load(1111111).Balance)
	assert.Equal(t, int64(100000), f.load(2222222).Balance)
}

func TestAuditFailureDoesNotFailOperation(t *testing.T) {
	base, err := store.NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)

	settings, err := NewSettings(config.NewDefault())
	require.NoError(t, err)
	svc := NewService(NewLedger(base, audit.NewTrail(brokenSink{}), newConsole("1234", "10"), nil, settings))

	acc := &model.Account{Number: 1111111, Name: "A", PIN: "1234", Type: model.TypeSavings, IDNumber: "A0001"}
	require.NoError(t, base.SaveAccount(acc))
	require.NoError(t, base.AppendNumber(acc.Number))

	got, err := svc.Transaction.Deposit(1111111)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.Balance)
}

func TestFeeSchedule(t *testing.T) {
	settings, err := NewSettings(config.NewDefault())
	require.NoError(t, err)

	assert.Equal(t, int64(2000), settings.Fee(model.TypeSavings, model.TypeCurrent, 100000))
	assert.Equal(t, int64(3000), settings.Fee(model.TypeCurrent, model.TypeSavings, 100000))
	assert.Equal(t, int64(0), settings.Fee(model.TypeSavings, model.TypeSavings, 100000))
	assert.Equal(t, int64(0), settings.Fee(model.TypeCurrent, model.TypeCurrent, 100000))
}

func TestWithdrawRejectsAmountBeyondRange(t *testing.T) {
	console := newConsole("1234", "184467440737095521.16", "92233720368547758.08", "10")
	f := newFixture(t, console)
	f.seed(1111111, model.TypeSavings, 1000)

	acc, err := f.svc.Transaction.Withdraw(1111111)
	require.NoError(t, err)
	assert.Equal(t, []string{"184467440737095521.16", "92233720368547758.08"}, console.rejected)
	assert.Equal(t, int64(0), acc.Balance)
	assert.Equal(t, []string{"[Sun Oct 18 10:00:00 2026] withdrawal - Account: 1111111, Amount: RM10.00"}, f.auditLines())
}

func TestDepositRejectsAmountBeyondRange(t *testing.T) {
	console := newConsole("1234", "184467440737095521.16", "1000000000000", "50000.01", "50000")
	f := newFixture(t, console)
	f.seed(1111111, model.TypeSavings, 0)

	acc, err := f.svc.Transaction.Deposit(1111111)
	require.NoError(t, err)
	assert.Equal(t, []string{"184467440737095521.16", "1000000000000", "50000.01"}, console.rejected)
	assert.Equal(t, int64(5000000), acc.Balance)
}

func TestDepositRefusesBalanceBeyondCeiling(t *testing.T) {
	f := newFixture(t, newConsole("1234", "1"))
	before := f.seed(1111111, model.TypeSavings, constants.MaxAmountCents)

	_, err := f.svc.Transaction.Deposit(1111111)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
	assert.Equal(t, before, f.load(1111111))
	assert.Empty(t, f.auditLines())
}

func TestTransferRejectsAmountBeyondRange(t *testing.T) {
	console := newConsole("1234", "92233720368547750.00", "5")
	f := newFixture(t, console)
	f.seed(1111111, model.TypeSavings, 1000)
	f.seed(2222222, model.TypeCurrent, 0)

	receipt, err := f.svc.Transaction.Transfer(1111111, 2222222)
	require.NoError(t, err)
	assert.Equal(t, []string{"92233720368547750.00"}, console.rejected)
	assert.Equal(t, int64(10), receipt.Fee)
	assert.Equal(t, int64(1000-510), f.load(1111111).Balance)
	assert.Equal(t, int64(500), f.load(2222222).Balance)
}

func TestTransferLargestAmountStillNeedsFunds(t *testing.T) {
	f := newFixture(t, newConsole("1234", "1000000000000").withConfirms(false))
	sender := f.seed(1111111, model.TypeSavings, constants.MaxAmountCents)
	receiver := f.seed(2222222, model.TypeCurrent, 0)

	// the amount alone is covered, the 2% fee on top is not
	_, err := f.svc.Transaction.Transfer(1111111, 2222222)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, sender, f.load(1111111))
	assert.Equal(t, receiver, f.load(2222222))
	assert.Empty(t, f.auditLines())
}

func TestTransferRefusesReceiverBalanceBeyondCeiling(t *testing.T) {
	f := newFixture(t, newConsole("1234", "1"))
	sender := f.seed(1111111, model.TypeSavings, 10000)
	receiver := f.seed(2222222, model.TypeSavings, constants.MaxAmountCents)

	_, err := f.svc.Transaction.Transfer(1111111, 2222222)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
	assert.Equal(t, sender, f.load(1111111))
	assert.Equal(t, receiver, f.load(2222222))
	assert.Empty(t, f.auditLines())
}
