package service

import "errors"

// Domain rule sentinels. These are the single authority for the
// occupancy/capacity invariants; handlers map them to HTTP statuses with
// errors.Is rather than re-deriving the checks.
var (
	// ErrBuildingFull is returned when creating a room would exceed the
	// building's total_rooms ceiling.
	ErrBuildingFull = errors.New("building has reached its maximum room capacity")

	// ErrRoomFull is returned when assigning a resident to a room that
	// already holds capacity residents.
	ErrRoomFull = errors.New("room is at full capacity")

	// ErrRoomNotOccupied is returned when filing a maintenance request
	// against a room with no residents.
	ErrRoomNotOccupied = errors.New("cannot create maintenance request for unoccupied room")

	// ErrNotHoused is returned by the my-room lookup when the caller's
	// resident record has no room assigned.
	ErrNotHoused = errors.New("resident is not assigned to a room")

	ErrUsernameTaken  = errors.New("username already exists")
	ErrEmailTaken     = errors.New("email already registered")
	ErrInvalidRole    = errors.New("unknown role")
	ErrInvalidStatus  = errors.New("unknown maintenance status")
	ErrEmailConflict  = errors.New("email already used by another resident")
	ErrBadCredentials = errors.New("invalid credentials")
)
