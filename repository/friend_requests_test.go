package repository

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/niyordanova/Split-Tracker/model"
	"github.com/stretchr/testify/assert"
)

func TestFriendRequestRepoMysql_Add(t *testing.T) {
	db, mock := NewMock()
	statement := "INSERT INTO pending_requests"
	mock.ExpectExec(statement).WithArgs("anna1", "boris1").WillReturnResult(sqlmock.NewResult(1, 1))

	db2, mock2 := NewMock()
	mock2.ExpectExec(statement).WithArgs("anna1", "boris1").WillReturnError(errors.New("error"))

	type fields struct {
		db *sql.DB
	}
	tests := []struct {
		name    string
		fields  fields
		wantErr bool
	}{
		{
			name:    "success",
			fields:  struct{ db *sql.DB }{db: db},
			wantErr: false,
		},
		{
			name:    "fail",
			fields:  struct{ db *sql.DB }{db: db2},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &FriendRequestRepoMysql{
				db: tt.fields.db,
			}
			if err := f.Add("anna1", "boris1"); (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFriendRequestRepoMysql_Exists(t *testing.T) {
	db, mock := NewMock()
	repo := &FriendRequestRepoMysql{db}

	mock.ExpectQuery("SELECT COUNT").WithArgs("anna1", "boris1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists("anna1", "boris1")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestFriendRequestRepoMysql_Delete(t *testing.T) {
	db, mock := NewMock()
	repo := &FriendRequestRepoMysql{db}

	mock.ExpectExec("DELETE FROM pending_requests").WithArgs("anna1", "boris1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete("anna1", "boris1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendRequestRepoMysql_FindForUser(t *testing.T) {
	db, mock := NewMock()
	statement := "SELECT requester_user_id, requested_user_id FROM pending_requests"
	rows := sqlmock.NewRows([]string{"requester_user_id", "requested_user_id"}).
		AddRow("anna1", "boris1").
		AddRow("ceco1", "anna1")
	mock.ExpectQuery(statement).WithArgs("anna1", "anna1").WillReturnRows(rows)

	repo := &FriendRequestRepoMysql{db}
	got, err := repo.FindForUser("anna1")
	assert.NoError(t, err)

	want := []model.FriendRequest{
		{RequesterUserID: "anna1", RequestedUserID: "boris1"},
		{RequesterUserID: "ceco1", RequestedUserID: "anna1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindForUser() got = %v, want %v", got, want)
	}
}
