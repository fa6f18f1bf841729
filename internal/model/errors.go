package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Input errors
	ErrInvalidGame    = errors.New("invalid game: must be c4 or toot")
	ErrInvalidOutcome = errors.New("invalid outcome tag")
	ErrInvalidLimit   = errors.New("leaderboard size must be positive")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
)
