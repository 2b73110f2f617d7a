package service

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"

	"github.com/niyordanova/Split-Tracker/contract"
	"github.com/niyordanova/Split-Tracker/model"
	"github.com/niyordanova/Split-Tracker/repository"
)

var (
	// ErrNoConnections is returned when the payer has no ledger at all.
	ErrNoConnections = errors.New("you haven't added any friends yet")
	// ErrFriendNotFound is returned when the ledger has no row for the friend.
	ErrFriendNotFound = errors.New("friend not found in the user's connections")
)

// Ledger keeps a pair of users' mutual balance rows consistent across their
// two independently stored ledgers. The cross-ledger update is best-effort:
// when the friend's side is missing, the payer's side stays updated and the
// mirror write is skipped with a logged warning.
type Ledger struct {
	ledgers contract.LedgerRepo
	users   contract.UserRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLedger(ledgers contract.LedgerRepo, users contract.UserRepo) *Ledger {
	return &Ledger{
		ledgers: ledgers,
		users:   users,
		locks:   map[string]*sync.Mutex{},
	}
}

func (s *Ledger) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// lockPair serializes writers per user. Locks are taken in sorted order so
// two concurrent updates on the same pair cannot deadlock.
func (s *Ledger) lockPair(userOne, userTwo string) func() {
	ids := []string{userOne, userTwo}
	sort.Strings(ids)
	if ids[0] == ids[1] {
		l := s.userLock(ids[0])
		l.Lock()
		return l.Unlock
	}
	first, second := s.userLock(ids[0]), s.userLock(ids[1])
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}

// AddExpense splits rawAmount evenly between the friends and propagates each
// share into both sides of the pair. A share that cannot be applied (bad
// amount, missing mirror ledger) is skipped, not an error.
func (s *Ledger) AddExpense(payerUserID string, rawAmount interface{}, friendUserIDs []string) error {
	exists, err := s.ledgers.Exists(payerUserID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNoConnections
	}

	for _, friendUserID := range friendUserIDs {
		amount, err := toFloat(rawAmount)
		if err != nil {
			log.Printf("expense amount %v is not a valid number, skipping split for %s", rawAmount, friendUserID)
			continue
		}
		share := amount / float64(len(friendUserIDs))
		if err := s.updateFriendExpense(payerUserID, friendUserID, share); err != nil {
			log.Printf("error updating balance of %s and %s: %v", payerUserID, friendUserID, err)
		}
	}

	return nil
}

// updateFriendExpense adds amount to the payer's row for the friend, then
// mirrors the new totals into amountFromFriend on both sides:
//
//	payer.row[friend].totalSplittedAmount += amount
//	friend.row[payer].amountFromFriend = -payer.row[friend].totalSplittedAmount
//	payer.row[friend].amountFromFriend = -friend.row[payer].totalSplittedAmount
//
// There is no rollback: if the friend's ledger or row is missing after the
// payer's write, the update stays one-sided.
func (s *Ledger) updateFriendExpense(userID, friendUserID string, amount float64) error {
	unlock := s.lockPair(userID, friendUserID)
	defer unlock()

	entries, err := s.ledgers.Load(userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil
		}
		return err
	}

	idx := findEntry(entries, friendUserID)
	if idx < 0 {
		return nil
	}

	entries[idx].TotalSplittedAmount += amount
	updatedTotal := entries[idx].TotalSplittedAmount
	if err := s.ledgers.Save(userID, entries); err != nil {
		return err
	}

	friendEntries, err := s.ledgers.Load(friendUserID)
	if err != nil {
		if err == repository.ErrNotFound {
			log.Printf("partial update: %s has no ledger, mirror of %s's balance skipped", friendUserID, userID)
			return nil
		}
		return err
	}

	friendIdx := findEntry(friendEntries, userID)
	if friendIdx < 0 {
		log.Printf("partial update: %s has no row for %s, mirror skipped", friendUserID, userID)
		return nil
	}

	friendEntries[friendIdx].AmountFromFriend = -updatedTotal
	if err := s.ledgers.Save(friendUserID, friendEntries); err != nil {
		return err
	}

	// The friend's own contributions mirror back onto the payer's row.
	friendTotal := friendEntries[friendIdx].TotalSplittedAmount

	entries, err = s.ledgers.Load(userID)
	if err != nil {
		return err
	}
	idx = findEntry(entries, friendUserID)
	if idx < 0 {
		return nil
	}
	entries[idx].AmountFromFriend = -friendTotal
	return s.ledgers.Save(userID, entries)
}

// Settle zeroes the balance fields of the one row for the friend, in the
// caller's ledger only. The friend's mirror row keeps its values.
func (s *Ledger) Settle(userID, friendUserID string) error {
	unlock := s.lockPair(userID, userID)
	defer unlock()

	entries, err := s.ledgers.Load(userID)
	if err != nil {
		return err
	}

	idx := findEntry(entries, friendUserID)
	if idx < 0 {
		return ErrFriendNotFound
	}

	entries[idx].TotalSplittedAmount = 0
	entries[idx].AmountFromFriend = 0
	entries[idx].CalculatedMoney = 0

	return s.ledgers.Save(userID, entries)
}

// FriendBalances joins the user's ledger rows with the friends' profile
// fields from the user directory.
func (s *Ledger) FriendBalances(userID string) ([]model.FriendBalance, error) {
	entries, err := s.ledgers.Load(userID)
	if err != nil {
		return nil, err
	}

	balances := make([]model.FriendBalance, 0, len(entries))
	for _, entry := range entries {
		balance := model.FriendBalance{
			FriendUsername:      entry.FriendUsername,
			FriendUserID:        entry.FriendUserID,
			ExpenseAddedBy:      entry.ExpenseAddedBy,
			TotalSplittedAmount: entry.TotalSplittedAmount,
			AmountFromFriend:    entry.AmountFromFriend,
		}
		if customer, err := s.users.FindByUserID(entry.FriendUserID); err == nil {
			balance.Email = customer.Email
			balance.FullName = customer.FullName
			balance.MobileNo = customer.MobileNo
		}
		balances = append(balances, balance)
	}

	return balances, nil
}

func findEntry(entries []model.LedgerEntry, friendUserID string) int {
	for i := range entries {
		if entries[i].FriendUserID == friendUserID {
			return i
		}
	}
	return -1
}

func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	case fmt.Stringer:
		return strconv.ParseFloat(v.String(), 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to float", value)
	}
}
