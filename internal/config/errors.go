package config

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "countdown duration must be between %v and %v, got %v",
	}

	errInvalidTickInterval = &apperr.Error{
		Message: "tick interval must be between %v and %v, got %v",
	}

	errInvalidDriver = &apperr.Error{
		Message: "storage driver must be one of %s, got %q",
	}

	errInvalidPattern = &apperr.Error{
		Message: "vibration pattern must have at most %d non-negative entries",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of debug, info, warn, or error, got %q",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid countdown duration: %s",
	}

	errInvalidUntil = &apperr.Error{
		Message: "unable to understand the end time %q",
	}

	errEndInPast = &apperr.Error{
		Message: "the end time %s has already passed",
	}
)

var errPrompt = &apperr.Error{
	Message: "duration prompt failed",
}
