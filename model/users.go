package model

import "github.com/dgrijalva/jwt-go"

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Customer struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	MobileNo string `json:"mobileNo" validate:"required,min=5,max=15"`
	FullName string `json:"fullName" validate:"required,min=3,max=64"`
}

type CustomerInDB struct {
	UserID         string `json:"userId"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	Email          string `json:"email"`
	MobileNo       string `json:"mobileNo"`
	FullName       string `json:"fullName"`
}

type CustomerData struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	MobileNo string `json:"mobileNo"`
	FullName string `json:"fullName"`
}

// CustomerWithStatus is a directory entry annotated with the friendship
// status relative to the caller: added_friend, pending_request,
// requested_friend or not_friend.
type CustomerWithStatus struct {
	CustomerData
	FriendshipStatus string `json:"friendshipStatus"`
}

type UserToken struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.StandardClaims
}
