package model

// LedgerEntry is one row in a user's ledger: the balance state with exactly
// one friend. TotalSplittedAmount accumulates what the owner has paid on the
// friend's behalf; AmountFromFriend mirrors the negated total from the
// friend's own ledger. CalculatedMoney is stored but never computed.
type LedgerEntry struct {
	FriendUsername      string  `json:"friendUsername"`
	FriendUserID        string  `json:"friendUserId"`
	ExpenseAddedBy      string  `json:"expenseAddedBy"`
	TotalSplittedAmount float64 `json:"TotalSplittedAmount"`
	AmountFromFriend    float64 `json:"amountFromFriend"`
	CalculatedMoney     float64 `json:"CalculatedMoney"`
}

// FriendBalance is a ledger row joined with the friend's profile fields.
type FriendBalance struct {
	FriendUsername      string  `json:"friendUsername"`
	FriendUserID        string  `json:"friendUserId"`
	ExpenseAddedBy      string  `json:"expenseAddedBy"`
	TotalSplittedAmount float64 `json:"TotalSplittedAmount"`
	AmountFromFriend    float64 `json:"amountFromFriend"`
	Email               string  `json:"email"`
	FullName            string  `json:"fullName"`
	MobileNo            string  `json:"mobileNo"`
}

type AddFriend struct {
	UserID              string  `json:"userId" validate:"required"`
	FriendUserID        string  `json:"friendUserId" validate:"required"`
	FriendUsername      string  `json:"friendUsername" validate:"required"`
	FullName            string  `json:"fullName"`
	MobileNo            string  `json:"mobileNo" validate:"required"`
	TotalSplittedAmount float64 `json:"TotalSplittedAmount"`
	AmountFromFriend    float64 `json:"amountFromFriend"`
	CalculatedMoney     float64 `json:"CalculatedMoney"`
}

type Settle struct {
	UserID       string `json:"userId"`
	FriendUserID string `json:"friendUserId"`
}
