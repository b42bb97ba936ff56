package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one of these so callers can
// branch on the category with errors.Is without enumerating specific errors.
var (
	// ErrValidation: caller-supplied input violates a field constraint
	ErrValidation = errors.New("validation failed")
	// ErrConflict: operation would violate a referential-integrity or
	// state-machine rule
	ErrConflict = errors.New("conflict")
	// ErrNotFound: referenced identifier does not resolve to an entity
	ErrNotFound = errors.New("not found")
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound   = fmt.Errorf("player %w", ErrNotFound)
	ErrPlayerNameEmpty  = fmt.Errorf("%w: player name is required", ErrValidation)
	ErrPlayerNameTaken  = fmt.Errorf("%w: a player with that name already exists", ErrConflict)
	ErrPlayerInSessions = fmt.Errorf("%w: player is referenced by sessions", ErrConflict)

	// Game errors
	ErrGameNotFound       = fmt.Errorf("game %w", ErrNotFound)
	ErrGameTitleEmpty     = fmt.Errorf("%w: game title is required", ErrValidation)
	ErrPlayerRangeInvalid = fmt.Errorf("%w: min players cannot exceed max players", ErrValidation)
	ErrPlayerCountInvalid = fmt.Errorf("%w: player counts must be positive", ErrValidation)
	ErrDurationInvalid    = fmt.Errorf("%w: duration must be positive or unset", ErrValidation)
	ErrUnknownWeight      = fmt.Errorf("%w: unknown weight", ErrValidation)
	ErrUnknownVibe        = fmt.Errorf("%w: unknown vibe", ErrValidation)
	ErrGameInSessions     = fmt.Errorf("%w: game is referenced by sessions", ErrConflict)

	// Session errors
	ErrSessionNotFound      = fmt.Errorf("session %w", ErrNotFound)
	ErrDateTimeRequired     = fmt.Errorf("%w: date and time are required", ErrValidation)
	ErrDateTimeInvalid      = fmt.Errorf("%w: malformed date or time", ErrValidation)
	ErrTooFewPlayers        = fmt.Errorf("%w: a session needs at least two players", ErrValidation)
	ErrNoWinners            = fmt.Errorf("%w: select at least one winner", ErrValidation)
	ErrWinnerNotParticipant = fmt.Errorf("%w: winner is not a session participant", ErrValidation)
	ErrSessionCompleted     = fmt.Errorf("%w: results already recorded", ErrConflict)
)
