package model

// SplitExpense is the add-expense payload. The amount arrives as whatever
// the client sent (number or string) and is coerced later; a bad value skips
// the split instead of failing the request.
type SplitExpense struct {
	UserID  string      `json:"userId"`
	Amount  interface{} `json:"TotalSplittedAmount"`
	Friends []string    `json:"FriendsBetweenSplitting"`
}

type PersonalExpense struct {
	Username    string  `json:"username" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	ExpenseName string  `json:"expenseName"`
}

type ExpenseHistory struct {
	SavingUser  string   `json:"userId"`
	Amount      float64  `json:"TotalSplittedAmount"`
	Description string   `json:"desc"`
	Friends     []string `json:"FriendsBetweenSplitting"`
}
