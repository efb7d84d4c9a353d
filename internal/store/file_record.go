package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"go.uber.org/zap"
)

// Record file labels, written in this order.
const (
	labelNumber   = "Account No"
	labelName     = "Account Name"
	labelPIN      = "PIN"
	labelBalance  = "Balance"
	labelStatus   = "Status"
	labelType     = "Account Type"
	labelIDNumber = "ID Number"
)

// FileStore keeps one "<number>.txt" record per account plus index.txt in a single directory.
type FileStore struct {
	dir string
	log *zap.Logger
}

func NewFileStore(dir string, log *zap.Logger) (*FileStore, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dir, err)
	}

	s := &FileStore{dir: dir, log: log}
	if err := s.recoverIndex(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(s.indexPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("can not create index file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("can not create index file: %w", err)
	}

	return s, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) recordPath(number int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(number, 10)+constants.RecordFileExt)
}

func (s *FileStore) SaveAccount(acc *model.Account) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d\n", labelNumber, acc.Number)
	fmt.Fprintf(&b, "%s: %s\n", labelName, acc.Name)
	fmt.Fprintf(&b, "%s: %s\n", labelPIN, acc.PIN)
	fmt.Fprintf(&b, "%s: %s\n", labelBalance, utils.FormatFromCents(acc.Balance))
	fmt.Fprintf(&b, "%s: %d\n", labelStatus, int(acc.Status))
	fmt.Fprintf(&b, "%s: %s\n", labelType, acc.Type)
	fmt.Fprintf(&b, "%s: %s\n", labelIDNumber, acc.IDNumber)

	if err := writeFileAtomic(s.recordPath(acc.Number), []byte(b.String())); err != nil {
		return fmt.Errorf("failed to save account %d: %w", acc.Number, err)
	}
	return nil
}

func (s *FileStore) LoadAccount(number int64) (*model.Account, error) {
	f, err := os.Open(s.recordPath(number))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("account %d: %w", number, ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to open account %d: %w", number, err)
	}
	defer func() {
		_ = f.Close()
	}()

	fields := make(map[string]string, 7)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account %d: %w", number, err)
	}

	acc, err := parseRecord(fields)
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", number, err)
	}
	return acc, nil
}

func parseRecord(fields map[string]string) (*model.Account, error) {
	for _, label := range []string{labelNumber, labelName, labelPIN, labelBalance, labelStatus, labelType, labelIDNumber} {
		if _, ok := fields[label]; !ok {
			return nil, fmt.Errorf("%w: missing '%s'", ErrCorruptRecord, label)
		}
	}

	number, err := strconv.ParseInt(fields[labelNumber], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad account number", ErrCorruptRecord)
	}

	balance, err := utils.ParseToCents(fields[labelBalance])
	if err != nil || balance < 0 {
		return nil, fmt.Errorf("%w: bad balance", ErrCorruptRecord)
	}

	status, err := strconv.Atoi(fields[labelStatus])
	if err != nil || (status != int(model.StatusActive) && status != int(model.StatusClosed)) {
		return nil, fmt.Errorf("%w: bad status", ErrCorruptRecord)
	}

	return &model.Account{
		Number:   number,
		Name:     fields[labelName],
		PIN:      fields[labelPIN],
		Balance:  balance,
		Status:   model.Status(status),
		Type:     model.Type(fields[labelType]),
		IDNumber: fields[labelIDNumber],
	}, nil
}

func (s *FileStore) RemoveAccount(number int64) error {
	if err := os.Remove(s.recordPath(number)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("account %d: %w", number, ErrAccountNotFound)
		}
		return fmt.Errorf("failed to remove account %d: %w", number, err)
	}
	return nil
}

// writeFileAtomic writes data to a sibling temp file, syncs it and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
