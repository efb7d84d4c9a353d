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
	"go.uber.org/zap"
)

func (s *FileStore) indexPath() string {
	return filepath.Join(s.dir, constants.IndexFileName)
}

func (s *FileStore) indexTempPath() string {
	return filepath.Join(s.dir, constants.IndexTempName)
}

// recoverIndex settles a rebuild that was interrupted. A temp file without an index
// means the old index was already dropped, so the temp copy is complete and is promoted.
// A temp file next to an index is a partial write and is discarded.
func (s *FileStore) recoverIndex() error {
	if _, err := os.Stat(s.indexTempPath()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to inspect index temp file: %w", err)
	}

	_, err := os.Stat(s.indexPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.log.Warn("promoting leftover index rebuild", zap.String("path", s.indexTempPath()))
		if err := os.Rename(s.indexTempPath(), s.indexPath()); err != nil {
			return fmt.Errorf("failed to recover index: %w", err)
		}
	case err == nil:
		s.log.Warn("discarding partial index rebuild", zap.String("path", s.indexTempPath()))
		if err := os.Remove(s.indexTempPath()); err != nil {
			return fmt.Errorf("failed to discard index temp file: %w", err)
		}
	default:
		return fmt.Errorf("failed to inspect index file: %w", err)
	}
	return nil
}

func (s *FileStore) AppendNumber(number int64) error {
	f, err := os.OpenFile(s.indexPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}

	if _, err := fmt.Fprintf(f, "%d\n", number); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append to index: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to append to index: %w", err)
	}
	return nil
}

func (s *FileStore) Numbers(limit int) ([]int64, error) {
	f, err := os.Open(s.indexPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []int64{}, nil
		}
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	numbers := []int64{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if limit > 0 && len(numbers) >= limit {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad index entry '%s'", ErrCorruptRecord, line)
		}
		numbers = append(numbers, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	return numbers, nil
}

func (s *FileStore) Count() (int, error) {
	numbers, err := s.Numbers(0)
	if err != nil {
		return 0, err
	}
	return len(numbers), nil
}

// RemoveNumber writes every other entry to temp.txt and renames it over index.txt.
// Until the rename, index.txt is untouched; after it, the new index is complete.
func (s *FileStore) RemoveNumber(number int64) error {
	numbers, err := s.Numbers(0)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, n := range numbers {
		if n != number {
			fmt.Fprintf(&b, "%d\n", n)
		}
	}

	f, err := os.OpenFile(s.indexTempPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to create index temp file: %w", err)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		_ = os.Remove(s.indexTempPath())
		return fmt.Errorf("failed to write index temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(s.indexTempPath())
		return fmt.Errorf("failed to sync index temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(s.indexTempPath())
		return fmt.Errorf("failed to close index temp file: %w", err)
	}

	if err := os.Rename(s.indexTempPath(), s.indexPath()); err != nil {
		_ = os.Remove(s.indexTempPath())
		return fmt.Errorf("failed to replace index: %w", err)
	}

	return nil
}
