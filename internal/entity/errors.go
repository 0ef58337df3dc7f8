package entity

import "errors"

// Domain errors
var (
	// Session errors
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidSessionStatus = errors.New("wrong action for current session status")
	ErrGenerationInFlight   = errors.New("a generation request is already in flight for this session")
	ErrNoOpinion            = errors.New("opinion not available")

	// Step precondition errors (validation errors: recoverable, no state change)
	ErrEmptyInput        = errors.New("initial question text is empty")
	ErrScenarioRequired  = errors.New("a scenario must be selected or a custom scenario provided")
	ErrAnswerRequired    = errors.New("an option must be selected or a custom answer provided")
	ErrConfirmRequired   = errors.New("explicit confirmation is required")
	ErrUnknownLegalPath  = errors.New("unknown legal path key")
	ErrPathNotApplicable = errors.New("no path selection is pending for this session")

	// Contact errors
	ErrMissingContact = errors.New("name and at least one of phone or line are required")
	ErrInvalidPhone   = errors.New("invalid Taiwanese phone number")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")
)
