package notify

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown sound: %s",
	}

	errBeep = &apperr.Error{
		Message: "unable to sound the beeper",
	}
)
