package contract

import "github.com/niyordanova/Split-Tracker/model"

type UserRepo interface {
	Create(customer *model.CustomerInDB) error
	FindByUsername(username string) (*model.CustomerInDB, error)
	FindByUserID(userID string) (*model.CustomerInDB, error)
	FindAll() ([]model.CustomerInDB, error)
	UsernameExists(username string) (bool, error)
	MobileNoExists(mobileNo string) (bool, error)
}

// LedgerRepo gives keyed access to a user's full set of ledger rows. A ledger
// is loaded and saved as a whole; Save replaces the row set atomically.
type LedgerRepo interface {
	Load(userID string) ([]model.LedgerEntry, error)
	Save(userID string, entries []model.LedgerEntry) error
	// EnsureExists creates the ledger with its self-entry sentinel row.
	// No-op when the ledger already exists.
	EnsureExists(userID, username, fullName string) error
	// UpsertRow inserts the row unless one with the same friendUserId is
	// already present; it never updates in place.
	UpsertRow(userID string, entry model.LedgerEntry) error
	Exists(userID string) (bool, error)
}

type FriendRequestRepo interface {
	Add(requesterUserID, requestedUserID string) error
	Exists(requesterUserID, requestedUserID string) (bool, error)
	Delete(requesterUserID, requestedUserID string) error
	FindForUser(userID string) ([]model.FriendRequest, error)
}

type ExpenseRepo interface {
	SavePersonal(expense *model.PersonalExpense) error
	SaveHistory(history *model.ExpenseHistory) error
}
