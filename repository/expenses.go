package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/niyordanova/Split-Tracker/model"
)

type ExpenseRepoMysql struct {
	db *sql.DB
}

func NewExpenseRepoMysql(user, password, dbname string) *ExpenseRepoMysql {
	connectionString := fmt.Sprintf("%s:%s@/%s", user, password, dbname)
	repo := &ExpenseRepoMysql{}
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

func (e *ExpenseRepoMysql) SavePersonal(expense *model.PersonalExpense) error {
	statement := "INSERT INTO personal_expenses(username, expense_date, expense_name, amount) VALUES(?, ?, ?, ?)"
	_, err := e.db.Exec(statement, expense.Username, time.Now().Format("2006-01-02 15:04:05"),
		expense.ExpenseName, expense.Amount)
	return err
}

// SaveHistory records one split: a shared id and one row per friend the
// amount was split between.
func (e *ExpenseRepoMysql) SaveHistory(history *model.ExpenseHistory) error {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	conn, err := e.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	date := time.Now().Format("2006-01-02 15:04:05")

	statement := `INSERT INTO expense_history(id, saving_user, expense_amount,
					expense_description, expense_date, friend_user_id)
					VALUES(?, ?, ?, ?, ?, ?)`
	for _, friend := range history.Friends {
		_, err := tx.Exec(statement, id, history.SavingUser, history.Amount,
			history.Description, date, friend)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
