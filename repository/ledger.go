package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/niyordanova/Split-Tracker/model"
)

// LedgerRepoMysql stores one ledger per user in the ledgers table. The
// per-owner row set is the atomic unit: Load reads it whole in insertion
// order, Save replaces it whole in one transaction.
type LedgerRepoMysql struct {
	db *sql.DB
}

func NewLedgerRepoMysql(user, password, dbname string) *LedgerRepoMysql {
	connectionString := fmt.Sprintf("%s:%s@/%s", user, password, dbname)
	repo := &LedgerRepoMysql{}
	var err error
	repo.db, err = sql.Open("mysql", connectionString)
	if err != nil {
		log.Fatal(err)
	}

	repo.db.SetConnMaxLifetime(time.Minute * 5)
	repo.db.SetMaxOpenConns(10)
	repo.db.SetMaxIdleConns(10)
	repo.db.SetConnMaxIdleTime(time.Minute * 3)

	return repo
}

func (l *LedgerRepoMysql) Load(userID string) ([]model.LedgerEntry, error) {
	statement := `SELECT friend_username, friend_user_id, expense_added_by,
					total_splitted_amount, amount_from_friend, calculated_money
					FROM ledgers WHERE owner_id = ? ORDER BY position`
	rows, err := l.db.Query(statement, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.LedgerEntry{}
	for rows.Next() {
		var entry model.LedgerEntry
		err := rows.Scan(&entry.FriendUsername, &entry.FriendUserID, &entry.ExpenseAddedBy,
			&entry.TotalSplittedAmount, &entry.AmountFromFriend, &entry.CalculatedMoney)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	rows.Close()

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// A ledger always holds at least its self-entry, so no rows means
	// no ledger at all.
	if len(entries) == 0 {
		return nil, ErrNotFound
	}

	return entries, nil
}

func (l *LedgerRepoMysql) Save(userID string, entries []model.LedgerEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	conn, err := l.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM ledgers WHERE owner_id = ?", userID); err != nil {
		return err
	}

	statement := `INSERT INTO ledgers(owner_id, position, friend_username, friend_user_id,
					expense_added_by, total_splitted_amount, amount_from_friend, calculated_money)
					VALUES(?, ?, ?, ?, ?, ?, ?, ?)`
	for i, entry := range entries {
		_, err := tx.Exec(statement, userID, i, entry.FriendUsername, entry.FriendUserID,
			entry.ExpenseAddedBy, entry.TotalSplittedAmount, entry.AmountFromFriend, entry.CalculatedMoney)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// EnsureExists creates the ledger with the owner's own details as the first
// entry. The owner appears as their own first "friend".
func (l *LedgerRepoMysql) EnsureExists(userID, username, fullName string) error {
	exists, err := l.Exists(userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	statement := `INSERT INTO ledgers(owner_id, position, friend_username, friend_user_id,
					expense_added_by, total_splitted_amount, amount_from_friend, calculated_money)
					VALUES(?, 0, ?, ?, ?, 0, 0, 0)`
	_, err = l.db.Exec(statement, userID, username, userID, username)
	return err
}

func (l *LedgerRepoMysql) UpsertRow(userID string, entry model.LedgerEntry) error {
	statement := "SELECT COUNT(*) FROM ledgers WHERE owner_id = ? AND friend_user_id = ?"
	var count int
	if err := l.db.QueryRow(statement, userID, entry.FriendUserID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	statement = `INSERT INTO ledgers(owner_id, position, friend_username, friend_user_id,
					expense_added_by, total_splitted_amount, amount_from_friend, calculated_money)
					SELECT ?, COALESCE(MAX(position), -1) + 1, ?, ?, ?, ?, ?, ?
					FROM ledgers WHERE owner_id = ?`
	_, err := l.db.Exec(statement, userID, entry.FriendUsername, entry.FriendUserID,
		entry.ExpenseAddedBy, entry.TotalSplittedAmount, entry.AmountFromFriend,
		entry.CalculatedMoney, userID)
	return err
}

func (l *LedgerRepoMysql) Exists(userID string) (bool, error) {
	statement := "SELECT COUNT(*) FROM ledgers WHERE owner_id = ?"
	var count int
	if err := l.db.QueryRow(statement, userID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
