package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	_ "github.com/mattn/go-sqlite3"
)

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// SQLiteStore keeps records, the index and the audit trail in one database file.
type SQLiteStore struct {
	db DBTX
}

func NewSQLiteStore(dbPath string, migrationsFS fs.FS) (*SQLiteStore, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0700); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// ExecTx runs fn against a transaction-scoped store and commits only if fn succeeds.
func (s *SQLiteStore) ExecTx(fn func(Repository) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("store is already in a transaction")
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	txStore := &SQLiteStore{db: tx}

	err = fn(txStore)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

func (s *SQLiteStore) SaveAccount(acc *model.Account) error {
	_, err := s.db.Exec(`
		INSERT INTO accounts (number, name, pin, balance, status, account_type, id_number)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(number) DO UPDATE SET
			name = excluded.name,
			pin = excluded.pin,
			balance = excluded.balance,
			status = excluded.status,
			account_type = excluded.account_type,
			id_number = excluded.id_number
	`, acc.Number, acc.Name, acc.PIN, acc.Balance, int(acc.Status), string(acc.Type), acc.IDNumber)
	if err != nil {
		return fmt.Errorf("failed to save account %d: %w", acc.Number, err)
	}
	return nil
}

func (s *SQLiteStore) LoadAccount(number int64) (*model.Account, error) {
	row := s.db.QueryRow(`
		SELECT number, name, pin, balance, status, account_type, id_number
		FROM accounts
		WHERE number = ?
	`, number)

	acc := &model.Account{}
	var status int
	var accType string

	err := row.Scan(&acc.Number, &acc.Name, &acc.PIN, &acc.Balance, &status, &accType, &acc.IDNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %d: %w", number, ErrAccountNotFound)
		}
		return nil, fmt.Errorf("failed to query account %d: %w", number, err)
	}

	acc.Status = model.Status(status)
	acc.Type = model.Type(accType)
	return acc, nil
}

func (s *SQLiteStore) RemoveAccount(number int64) error {
	result, err := s.db.Exec(`DELETE FROM accounts WHERE number = ?`, number)
	if err != nil {
		return fmt.Errorf("failed to remove account %d: %w", number, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("account %d: %w", number, ErrAccountNotFound)
	}
	return nil
}

func (s *SQLiteStore) AppendNumber(number int64) error {
	if _, err := s.db.Exec(`INSERT INTO account_index (number) VALUES (?)`, number); err != nil {
		return fmt.Errorf("failed to append to index: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Numbers(limit int) ([]int64, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}

	rows, err := s.db.Query(`SELECT number FROM account_index ORDER BY seq LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	numbers := []int64{}
	for rows.Next() {
		var n int64
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan index entry: %w", err)
		}
		numbers = append(numbers, n)
	}

	return numbers, rows.Err()
}

// RemoveNumber is a single DELETE; relative order of the remaining rows is kept by seq.
func (s *SQLiteStore) RemoveNumber(number int64) error {
	if _, err := s.db.Exec(`DELETE FROM account_index WHERE number = ?`, number); err != nil {
		return fmt.Errorf("failed to update index: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM account_index`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count index: %w", err)
	}
	return count, nil
}

// WriteEntry appends one audit line; it lets the audit trail use the database as its sink.
func (s *SQLiteStore) WriteEntry(at time.Time, action string) error {
	_, err := s.db.Exec(`INSERT INTO audit_log (logged_at, action) VALUES (?, ?)`,
		at.Format(constants.AuditTimeFormat), action)
	if err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}
