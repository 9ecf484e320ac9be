package model

import "errors"

// Common errors used across the application
var (
	// Player lookup errors
	ErrPlayerNotFound = errors.New("player not found")

	// Player creation errors
	ErrNameTaken    = errors.New("player name already taken")
	ErrNameRequired = errors.New("player name is required")
	ErrNameTooLong  = errors.New("player name is too long")
	ErrNameReserved = errors.New("player name conflicts with the id format")

	// Identifier errors
	ErrInvalidPlayerKey = errors.New("invalid player identifier")

	// Session record errors
	ErrInvalidSessionRecord = errors.New("session record fields must be non-negative")
)
