package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Entry errors
	ErrEntryExists   = errors.New("journal entry with this id already exists")
	ErrEmptyEntry    = errors.New("journal entry needs an accomplishment")
	ErrInvalidMood   = errors.New("unknown mood value")
	ErrEntryNotFound = errors.New("journal entry not found")

	// Affirmation errors
	ErrEmptyAffirmation    = errors.New("affirmation text is empty")
	ErrAffirmationNotFound = errors.New("affirmation not found")

	// Catalog errors
	ErrUnknownAchievement = errors.New("unknown achievement id")
)
