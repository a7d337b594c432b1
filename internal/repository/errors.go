package repository

import "errors"

// Not-found sentinels returned by the repositories. Callers match them with
// errors.Is instead of comparing message strings.
var (
	ErrBuildingNotFound = errors.New("building not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrResidentNotFound = errors.New("resident not found")
	ErrRequestNotFound  = errors.New("maintenance request not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrTokenNotFound    = errors.New("refresh token not found or revoked")
)
