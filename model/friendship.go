package model

type FriendRequest struct {
	RequesterUserID string `json:"requesterUserId"`
	RequestedUserID string `json:"requestedUserId"`
}
