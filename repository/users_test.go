package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/niyordanova/Split-Tracker/model"
	"github.com/stretchr/testify/assert"
)

var customerColumns = []string{"user_id", "username", "hashed_password", "email", "mobile_no", "full_name"}

func TestUserRepoMysql_FindByUsername(t *testing.T) {
	t.Run("customer exists", func(t *testing.T) {
		db, mock := NewMock()
		repo := &UserRepoMysql{db}

		rows := sqlmock.NewRows(customerColumns).
			AddRow("anna1", "anna", "$2a$10$hash", "anna@mail.com", "0888123456", "Anna Petrova")
		mock.ExpectQuery("SELECT user_id, username, hashed_password").WithArgs("anna").WillReturnRows(rows)

		customer, err := repo.FindByUsername("anna")
		assert.NoError(t, err)
		assert.NotNil(t, customer)
		assert.Equal(t, "anna1", customer.UserID)
		assert.Equal(t, "Anna Petrova", customer.FullName)
	})

	t.Run("customer missing", func(t *testing.T) {
		db, mock := NewMock()
		repo := &UserRepoMysql{db}

		mock.ExpectQuery("SELECT user_id, username, hashed_password").WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(customerColumns))

		customer, err := repo.FindByUsername("ghost")
		assert.Equal(t, ErrNotFound, err)
		assert.Nil(t, customer)
	})
}

func TestUserRepoMysql_FindByUserID(t *testing.T) {
	db, mock := NewMock()
	repo := &UserRepoMysql{db}

	rows := sqlmock.NewRows(customerColumns).
		AddRow("anna1", "anna", "$2a$10$hash", "anna@mail.com", "0888123456", "Anna Petrova")
	mock.ExpectQuery("SELECT user_id, username, hashed_password").WithArgs("anna1").WillReturnRows(rows)

	customer, err := repo.FindByUserID("anna1")
	assert.NoError(t, err)
	assert.Equal(t, "anna", customer.Username)
}

func TestUserRepoMysql_Create(t *testing.T) {
	db, mock := NewMock()
	mock.ExpectExec("INSERT INTO customers").
		WithArgs("anna1", "anna", "$2a$10$hash", "anna@mail.com", "0888123456", "Anna Petrova").
		WillReturnResult(sqlmock.NewResult(1, 1))

	db2, mock2 := NewMock()
	mock2.ExpectExec("INSERT INTO customers").WillReturnError(errors.New("error"))

	customer := &model.CustomerInDB{
		UserID:         "anna1",
		Username:       "anna",
		HashedPassword: "$2a$10$hash",
		Email:          "anna@mail.com",
		MobileNo:       "0888123456",
		FullName:       "Anna Petrova",
	}

	repo := &UserRepoMysql{db}
	assert.NoError(t, repo.Create(customer))

	repo2 := &UserRepoMysql{db2}
	assert.Error(t, repo2.Create(customer))
}

func TestUserRepoMysql_FindAll(t *testing.T) {
	db, mock := NewMock()
	repo := &UserRepoMysql{db}

	rows := sqlmock.NewRows([]string{"user_id", "username", "email", "mobile_no", "full_name"}).
		AddRow("anna1", "anna", "anna@mail.com", "0888123456", "Anna Petrova").
		AddRow("boris1", "boris", "boris@mail.com", "0888234567", "Boris Borisov")
	mock.ExpectQuery("SELECT user_id, username, email").WillReturnRows(rows)

	customers, err := repo.FindAll()
	assert.NoError(t, err)
	assert.Len(t, customers, 2)
	assert.Equal(t, "boris1", customers[1].UserID)
}

func TestUserRepoMysql_UsernameExists(t *testing.T) {
	db, mock := NewMock()
	repo := &UserRepoMysql{db}

	mock.ExpectQuery("SELECT COUNT").WithArgs("anna").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.UsernameExists("anna")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepoMysql_MobileNoExists(t *testing.T) {
	db, mock := NewMock()
	repo := &UserRepoMysql{db}

	mock.ExpectQuery("SELECT COUNT").WithArgs("0888999999").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.MobileNoExists("0888999999")
	assert.NoError(t, err)
	assert.False(t, exists)
}
