package domain

import "errors"

// Audio controller sentinel errors
var (
	// ErrNoPlayer means no supported player binary was found on PATH.
	// This is a permanent per-run condition, surfaced for display.
	ErrNoPlayer = errors.New("no audio player found")

	// ErrNotApplicable means the operation has no effect in the
	// controller's mode (Off, or transport control in Spotify mode).
	ErrNotApplicable = errors.New("not applicable in this mode")
)
