package rest

import (
	"github.com/niyordanova/Split-Tracker/model"
	"golang.org/x/crypto/bcrypt"
)

// AddData seeds a few demo customers with mutual ledgers and one split,
// for local runs against an empty database.
func (a *App) AddData() {
	pass1, _ := bcrypt.GenerateFromPassword([]byte("love"), bcrypt.DefaultCost)
	pass2, _ := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)

	customers := []model.CustomerInDB{
		{UserID: "Hrisi123456", Username: "Hrisi", HashedPassword: string(pass1),
			Email: "hrisi@mail.com", MobileNo: "0888123456", FullName: "Hristina Malinova"},
		{UserID: "Peter234567", Username: "Peter", HashedPassword: string(pass2),
			Email: "peter@mail.com", MobileNo: "0888234567", FullName: "Peter Petrov"},
		{UserID: "George345678", Username: "George", HashedPassword: string(pass2),
			Email: "george@mail.com", MobileNo: "0888345678", FullName: "George Georgiev"},
		{UserID: "Lily456789", Username: "Lily", HashedPassword: string(pass2),
			Email: "lily@mail.com", MobileNo: "0888456789", FullName: "Lily Ivanova"},
	}
	for i := range customers {
		_ = a.Users.Create(&customers[i])
		_ = a.Ledgers.EnsureExists(customers[i].UserID, customers[i].Username, customers[i].FullName)
	}

	// Hrisi+Peter, Hrisi+George
	_ = a.connectUsers("Hrisi123456", "Peter234567")
	_ = a.connectUsers("Hrisi123456", "George345678")

	// Lily --> Hrisi (pending)
	_ = a.Requests.Add("Lily456789", "Hrisi123456")

	// Hrisi paid 60 for dinner, split with Peter and George
	_ = a.Ledger.AddExpense("Hrisi123456", 60.0, []string{"Peter234567", "George345678"})
	_ = a.Expenses.SaveHistory(&model.ExpenseHistory{
		SavingUser:  "Hrisi123456",
		Amount:      60.0,
		Description: "Dinner",
		Friends:     []string{"Peter234567", "George345678"},
	})
}
