package models

import "errors"

// Sentinel errors shared across the service boundary. Handlers translate
// them into HTTP statuses with errors.Is, so services wrap them with
// context instead of returning them bare.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrNoFavorites   = errors.New("no favorites saved")
	ErrNoSuggestions = errors.New("no suggestions available")
)
