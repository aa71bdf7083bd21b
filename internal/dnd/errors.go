package dnd

import "errors"

// Validation failures are recoverable: they are returned to the caller
// with a specific reason and never mutate the character.
var (
	ErrNameRequired    = errors.New("character name must not be empty")
	ErrNameTooLong     = errors.New("character name must be 50 characters or fewer")
	ErrUnknownStat     = errors.New("unknown stat")
	ErrScoreOutOfRange = errors.New("stat score out of range")
	ErrUnknownClass    = errors.New("unknown class")
	ErrUnknownSkill    = errors.New("unknown skill")
	ErrMissingStat     = errors.New("missing required stat")

	// ErrInvalidCheckName is returned when a roll target is neither a
	// skill nor a stat.
	ErrInvalidCheckName = errors.New("not a skill or stat")
)
