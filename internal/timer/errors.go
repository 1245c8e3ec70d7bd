package timer

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	errInvalidSnapshot = &apperr.Error{
		Message: "unable to decode the saved timer",
	}

	errInvalidRange = &apperr.Error{
		Message: "the countdown must end after it starts (start: %s, end: %s)",
	}
)
