package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hance08/teller/internal/audit"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/store"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t       *testing.T
	repo    store.Repository
	console *scriptedConsole
	svc     *Service
	logPath string
}

func newFixture(t *testing.T, console *scriptedConsole) *fixture {
	t.Helper()
	repo, err := store.NewFileStore(filepath.Join(t.TempDir(), "database"), nil)
	require.NoError(t, err)
	return newFixtureWithRepo(t, repo, console)
}

func newFixtureWithRepo(t *testing.T, repo store.Repository, console *scriptedConsole) *fixture {
	t.Helper()

	settings, err := NewSettings(config.NewDefault())
	require.NoError(t, err)

	logPath := filepath.Join(t.TempDir(), "transaction.log")
	trail := audit.NewTrail(audit.NewFileSink(logPath)).WithClock(func() time.Time {
		return time.Date(2026, 10, 18, 10, 0, 0, 0, time.Local)
	})

	return &fixture{
		t:       t,
		repo:    repo,
		console: console,
		svc:     NewService(NewLedger(repo, trail, console, nil, settings)),
		logPath: logPath,
	}
}

// seed stores an account and registers it in the index, bypassing the engine.
func (f *fixture) seed(number int64, accType model.Type, balance int64) *model.Account {
	f.t.Helper()
	acc := &model.Account{
		Number:   number,
		Name:     "Holder",
		PIN:      "1234",
		Balance:  balance,
		Status:   model.StatusActive,
		Type:     accType,
		IDNumber: "ID-99-5678",
	}
	require.NoError(f.t, f.repo.SaveAccount(acc))
	require.NoError(f.t, f.repo.AppendNumber(number))
	return acc
}

func (f *fixture) load(number int64) *model.Account {
	f.t.Helper()
	acc, err := f.repo.LoadAccount(number)
	require.NoError(f.t, err)
	return acc
}

func (f *fixture) auditLines() []string {
	f.t.Helper()
	data, err := os.ReadFile(f.logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(f.t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// failingRepo wraps a repository and fails selected writes.
type failingRepo struct {
	store.Repository
	failSave   map[int64]bool
	failAppend bool
	failRemove bool
}

var errDiskFull = errors.New("disk full")

func (r *failingRepo) SaveAccount(acc *model.Account) error {
	if r.failSave[acc.Number] {
		return errDiskFull
	}
	return r.Repository.SaveAccount(acc)
}

func (r *failingRepo) AppendNumber(number int64) error {
	if r.failAppend {
		return errDiskFull
	}
	return r.Repository.AppendNumber(number)
}

func (r *failingRepo) RemoveNumber(number int64) error {
	if r.failRemove {
		return errDiskFull
	}
	return r.Repository.RemoveNumber(number)
}

// brokenSink fails every audit write.
type brokenSink struct{}

func (brokenSink) WriteEntry(time.Time, string) error { return errDiskFull }
