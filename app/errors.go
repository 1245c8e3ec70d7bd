package app

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	errTimerExists = &apperr.Error{
		Message: "a countdown is already saved: resume it with 'countdown resume' or discard it with 'countdown cancel'",
	}

	errParseCmd = &apperr.Error{
		Message: "unable to parse the completion command",
	}

	errNoStatus = &apperr.Error{
		Message: "countdown is running but its status is unavailable",
	}
)
