package repository

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/niyordanova/Split-Tracker/model"
)

type FriendRequestRepoMysql struct {
	db *sql.DB
}

func NewFriendRequestRepoMysql(user, password, dbname string) *FriendRequestRepoMysql {
	connectionString := fmt.Sprintf("%s:%s@/%s", user, password, dbname)
	repo := &FriendRequestRepoMysql{}
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

func (f *FriendRequestRepoMysql) Add(requesterUserID, requestedUserID string) error {
	statement := "INSERT INTO pending_requests(requester_user_id, requested_user_id) VALUES(?, ?)"
	_, err := f.db.Exec(statement, requesterUserID, requestedUserID)
	return err
}

func (f *FriendRequestRepoMysql) Exists(requesterUserID, requestedUserID string) (bool, error) {
	statement := "SELECT COUNT(*) FROM pending_requests WHERE requester_user_id = ? AND requested_user_id = ?"
	var count int
	if err := f.db.QueryRow(statement, requesterUserID, requestedUserID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (f *FriendRequestRepoMysql) Delete(requesterUserID, requestedUserID string) error {
	statement := "DELETE FROM pending_requests WHERE requester_user_id = ? AND requested_user_id = ?"
	_, err := f.db.Exec(statement, requesterUserID, requestedUserID)
	return err
}

// FindForUser returns every pending request the user is part of, on either side.
func (f *FriendRequestRepoMysql) FindForUser(userID string) ([]model.FriendRequest, error) {
	statement := `SELECT requester_user_id, requested_user_id FROM pending_requests
					WHERE requester_user_id = ? OR requested_user_id = ?`
	rows, err := f.db.Query(statement, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []model.FriendRequest{}
	for rows.Next() {
		var request model.FriendRequest
		err := rows.Scan(&request.RequesterUserID, &request.RequestedUserID)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	rows.Close()

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
