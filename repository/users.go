package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/niyordanova/Split-Tracker/model"
)

// ErrNotFound is returned when the referenced user or ledger does not exist.
var ErrNotFound = errors.New("not found")

type UserRepoMysql struct {
	db *sql.DB
}

func NewUserRepoMysql(user, password, dbname string) *UserRepoMysql {
	connectionString := fmt.Sprintf("%s:%s@/%s", user, password, dbname)
	repo := &UserRepoMysql{}
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

func (u *UserRepoMysql) Create(customer *model.CustomerInDB) error {
	statement := "INSERT INTO customers(user_id, username, hashed_password, email, mobile_no, full_name) VALUES(?, ?, ?, ?, ?, ?)"
	_, err := u.db.Exec(statement, customer.UserID, customer.Username, customer.HashedPassword,
		customer.Email, customer.MobileNo, customer.FullName)
	return err
}

func (u *UserRepoMysql) FindByUsername(username string) (*model.CustomerInDB, error) {
	statement := "SELECT user_id, username, hashed_password, email, mobile_no, full_name FROM customers WHERE username = ?"
	customer := &model.CustomerInDB{}
	err := u.db.QueryRow(statement, username).Scan(&customer.UserID, &customer.Username,
		&customer.HashedPassword, &customer.Email, &customer.MobileNo, &customer.FullName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (u *UserRepoMysql) FindByUserID(userID string) (*model.CustomerInDB, error) {
	statement := "SELECT user_id, username, hashed_password, email, mobile_no, full_name FROM customers WHERE user_id = ?"
	customer := &model.CustomerInDB{}
	err := u.db.QueryRow(statement, userID).Scan(&customer.UserID, &customer.Username,
		&customer.HashedPassword, &customer.Email, &customer.MobileNo, &customer.FullName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (u *UserRepoMysql) FindAll() ([]model.CustomerInDB, error) {
	statement := "SELECT user_id, username, email, mobile_no, full_name FROM customers"
	rows, err := u.db.Query(statement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.CustomerInDB{}
	for rows.Next() {
		var customer model.CustomerInDB
		err := rows.Scan(&customer.UserID, &customer.Username, &customer.Email,
			&customer.MobileNo, &customer.FullName)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	rows.Close()

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func (u *UserRepoMysql) UsernameExists(username string) (bool, error) {
	statement := "SELECT COUNT(*) FROM customers WHERE username = ?"
	var count int
	if err := u.db.QueryRow(statement, username).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (u *UserRepoMysql) MobileNoExists(mobileNo string) (bool, error) {
	statement := "SELECT COUNT(*) FROM customers WHERE mobile_no = ?"
	var count int
	if err := u.db.QueryRow(statement, mobileNo).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
