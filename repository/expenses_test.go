package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/niyordanova/Split-Tracker/model"
	"github.com/stretchr/testify/assert"
)

func TestExpenseRepoMysql_SavePersonal(t *testing.T) {
	db, mock := NewMock()
	repo := &ExpenseRepoMysql{db}

	mock.ExpectExec("INSERT INTO personal_expenses").
		WithArgs("anna", sqlmock.AnyArg(), "Groceries", 24.5).
		WillReturnResult(sqlmock.NewResult(1, 1))

	expense := &model.PersonalExpense{Username: "anna", Amount: 24.5, ExpenseName: "Groceries"}
	assert.NoError(t, repo.SavePersonal(expense))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepoMysql_SaveHistory(t *testing.T) {
	t.Run("one row per friend, same id", func(t *testing.T) {
		db, mock := NewMock()
		repo := &ExpenseRepoMysql{db}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO expense_history").
			WithArgs(sqlmock.AnyArg(), "anna1", 60.0, "Dinner", sqlmock.AnyArg(), "boris1").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO expense_history").
			WithArgs(sqlmock.AnyArg(), "anna1", 60.0, "Dinner", sqlmock.AnyArg(), "ceco1").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		history := &model.ExpenseHistory{
			SavingUser:  "anna1",
			Amount:      60,
			Description: "Dinner",
			Friends:     []string{"boris1", "ceco1"},
		}
		assert.NoError(t, repo.SaveHistory(history))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock := NewMock()
		repo := &ExpenseRepoMysql{db}

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO expense_history").WillReturnError(errors.New("error"))
		mock.ExpectRollback()

		history := &model.ExpenseHistory{SavingUser: "anna1", Amount: 60, Friends: []string{"boris1"}}
		assert.Error(t, repo.SaveHistory(history))
	})
}
